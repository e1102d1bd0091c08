// CLAUDE:SUMMARY Topic cluster registry — static catalog of pillar + declared tool/article slugs, read-only at runtime.
// Package cluster holds the topical cluster registry and the health scorer
// the admin console reads.
//
// A TopicCluster declares intent: which tool and article slugs belong to a
// pillar page. The declared slugs are the denominator the scorer measures
// live state against; they do not imply the underlying pages exist yet.
package cluster

// TopicCluster is one registered topical cluster.
type TopicCluster struct {
	ID                string   `json:"id"`
	PillarSlug        string   `json:"pillar_slug"`
	PillarTitle       string   `json:"pillar_title"`
	PillarDescription string   `json:"pillar_description"`
	EngineID          string   `json:"engine_id"`
	PrimaryKeyword    string   `json:"primary_keyword"`
	ToolSlugs         []string `json:"tool_slugs"`
	ArticleSlugs      []string `json:"article_slugs"`
}

// registry is the static in-process cluster catalog, built once at package
// init and read-only at runtime.
var registry = []TopicCluster{
	{
		ID:                "youtube-creator-tools",
		PillarSlug:        "youtube-creator-tools",
		PillarTitle:       "Free YouTube Creator Tools",
		PillarDescription: "Analyzers, generators and resizers for YouTube creators.",
		EngineID:          "image-analysis",
		PrimaryKeyword:    "youtube creator tools",
		ToolSlugs: []string{
			"youtube-thumbnail-analyzer",
			"youtube-banner-analyzer",
			"youtube-profile-picture-analyzer",
			"youtube-ai-caption-generator",
			"youtube-thumbnail-resizer",
		},
		ArticleSlugs: []string{
			"youtube-thumbnail-best-practices",
			"youtube-ctr-guide",
			"youtube-banner-dimensions",
			"youtube-channel-branding",
		},
	},
	{
		ID:                "instagram-growth-tools",
		PillarSlug:        "instagram-growth-tools",
		PillarTitle:       "Free Instagram Growth Tools",
		PillarDescription: "Caption generators, bio tools and image resizers for Instagram.",
		EngineID:          "ai-writer",
		PrimaryKeyword:    "instagram growth tools",
		ToolSlugs: []string{
			"instagram-ai-caption-generator",
			"instagram-ai-bio-generator",
			"instagram-ai-hashtags-generator",
			"instagram-post-resizer",
		},
		ArticleSlugs: []string{
			"instagram-caption-ideas",
			"instagram-bio-examples",
			"instagram-hashtag-strategy",
		},
	},
	{
		ID:                "tiktok-creator-tools",
		PillarSlug:        "tiktok-creator-tools",
		PillarTitle:       "Free TikTok Creator Tools",
		PillarDescription: "Caption and bio generators built for TikTok.",
		EngineID:          "ai-writer",
		PrimaryKeyword:    "tiktok creator tools",
		ToolSlugs: []string{
			"tiktok-ai-caption-generator",
			"tiktok-ai-bio-generator",
		},
		ArticleSlugs: []string{
			"tiktok-caption-hooks",
			"tiktok-bio-ideas",
		},
	},
	{
		ID:                "creator-tools",
		PillarSlug:        "creator-tools",
		PillarTitle:       "Free Creator Tools",
		PillarDescription: "The full catalog of free tools for content creators.",
		EngineID:          "image-analysis",
		PrimaryKeyword:    "free creator tools",
		ToolSlugs: []string{
			"linkedin-ai-caption-generator",
			"linkedin-ai-bio-generator",
			"linkedin-banner-resizer",
		},
		ArticleSlugs: []string{
			"linkedin-post-guide",
		},
	},
}

// Get returns the cluster with the given id, or nil if unknown.
func Get(id string) *TopicCluster {
	for i := range registry {
		if registry[i].ID == id {
			return &registry[i]
		}
	}
	return nil
}

// All returns every registered cluster in declaration order.
func All() []TopicCluster {
	out := make([]TopicCluster, len(registry))
	copy(out, registry)
	return out
}

// ByPillarSlug returns the cluster whose pillar slug matches, or nil.
func ByPillarSlug(slug string) *TopicCluster {
	for i := range registry {
		if registry[i].PillarSlug == slug {
			return &registry[i]
		}
	}
	return nil
}
