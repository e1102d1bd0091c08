// CLAUDE:SUMMARY Seed blueprint catalog — production generation recipes for the free-tool grid (analyzers, generators, resizers).
package engine

var platformClusters = map[string]string{
	"youtube":   "youtube-creator-tools",
	"instagram": "instagram-growth-tools",
	"tiktok":    "tiktok-creator-tools",
}

// clusterForPlatform maps a combo's platform value to its topic cluster,
// falling back to the generic creator cluster. Every resolver must have a
// default branch: an unresolvable combo is a validation error upstream.
func clusterForPlatform(combo Combo) string {
	if v, ok := combo["platform"]; ok {
		if c, ok := platformClusters[v.ID]; ok {
			return c
		}
	}
	return "creator-tools"
}

var platformDim = Dimension{
	ID:    "platform",
	Label: "Platform",
	Values: []DimensionValue{
		{ID: "youtube", Label: "YouTube", Variations: []string{"yt"}},
		{ID: "instagram", Label: "Instagram", Variations: []string{"ig", "insta"}},
		{ID: "tiktok", Label: "TikTok", Variations: []string{"tt"}},
		{ID: "linkedin", Label: "LinkedIn", Variations: []string{"li"}},
	},
}

// Catalog returns the production blueprints, in the order they are
// registered at startup.
func Catalog() []*Blueprint {
	return []*Blueprint{
		{
			ID:                 "thumbnail-analyzer",
			EngineID:           "image-analysis",
			Name:               "Visual Asset Analyzer Grid",
			Description:        "AI analysis pages for every platform/asset combination.",
			Segment:            "creators",
			SlugPattern:        SlugPattern{Template: "{platform}-{asset}-analyzer"},
			TitlePattern:       "{platform_label} {asset_label} Analyzer",
			KeywordPattern:     "{platform} {asset} analyzer",
			DescriptionPattern: "Free AI-powered analysis for your {platform_label} {asset_label}. Get instant feedback on clarity, contrast and click-appeal.",
			Dimensions: []Dimension{
				platformDim,
				{
					ID:    "asset",
					Label: "Asset",
					Values: []DimensionValue{
						{ID: "thumbnail", Label: "Thumbnail", Variations: []string{"thumb"}},
						{ID: "banner", Label: "Banner"},
						{ID: "profile-picture", Label: "Profile Picture", Variations: []string{"pfp", "avatar"}},
					},
				},
			},
			ClusterResolver: clusterForPlatform,
			LinkRules: LinkRules{
				SiblingsPerTool: 3,
				ArticlesPerTool: 2,
				DefaultCTAs:     []string{"analyze-another", "upgrade-pro"},
			},
			Defaults: Defaults{
				Priority:     5,
				SearchIntent: "transactional",
			},
			InputType:  "image",
			OutputType: "report",
		},
		{
			ID:          "caption-generator",
			EngineID:    "ai-writer",
			Name:        "Caption Generator Grid",
			Description: "AI copy generators per platform and content type.",
			Segment:     "creators",
			// Transform exercises a join the token template cannot express:
			// the literal "ai-" prefix sits between two dimension parts.
			SlugPattern: SlugPattern{
				Transform: func(parts map[string]string) string {
					return parts["platform"] + "-ai-" + parts["content"] + "-generator"
				},
			},
			TitlePattern:       "{platform_label} AI {content_label} Generator",
			KeywordPattern:     "{platform} {content} generator",
			DescriptionPattern: "Generate a {platform_label} {content_label} in seconds with AI. Free, no signup required.",
			Dimensions: []Dimension{
				platformDim,
				{
					ID:    "content",
					Label: "Content Type",
					Values: []DimensionValue{
						{ID: "caption", Label: "Caption"},
						{ID: "bio", Label: "Bio"},
						{ID: "hashtags", Label: "Hashtag Set", Variations: []string{"tags"}},
					},
				},
			},
			ClusterResolver: clusterForPlatform,
			LinkRules: LinkRules{
				SiblingsPerTool: 3,
				ArticlesPerTool: 2,
				DefaultCTAs:     []string{"generate-again", "upgrade-pro"},
			},
			Defaults: Defaults{
				Priority:     7,
				SearchIntent: "transactional",
			},
			InputType:  "text",
			OutputType: "text",
		},
		{
			ID:                 "image-resizer",
			EngineID:           "image-resize",
			Name:               "Image Resizer Grid",
			Description:        "Exact-dimension resize pages per platform and asset.",
			Segment:            "creators",
			SlugPattern:        SlugPattern{Template: "{platform}-{asset}-resizer"},
			TitlePattern:       "{platform_label} {asset_label} Resizer",
			KeywordPattern:     "resize {asset} for {platform}",
			DescriptionPattern: "Resize any image to the exact {platform_label} {asset_label} dimensions. Free and instant.",
			Dimensions: []Dimension{
				platformDim,
				{
					ID:    "asset",
					Label: "Asset",
					Values: []DimensionValue{
						{ID: "thumbnail", Label: "Thumbnail"},
						{ID: "banner", Label: "Banner"},
						{ID: "post", Label: "Post Image"},
					},
				},
			},
			ClusterResolver: clusterForPlatform,
			LinkRules: LinkRules{
				SiblingsPerTool: 3,
				ArticlesPerTool: 1,
				DefaultCTAs:     []string{"resize-another"},
			},
			Defaults: Defaults{
				Priority:     3,
				SearchIntent: "transactional",
			},
			InputType:  "image",
			OutputType: "image",
		},
	}
}
