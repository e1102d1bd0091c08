// CLAUDE:SUMMARY Pure URL classification — kind precedence chain, expected link targets, status derivation.
package seoreg

import "strings"

// systemPaths is the fixed allowlist of framework-owned URLs.
var systemPaths = map[string]bool{
	"/":            true,
	"/login":       true,
	"/signup":      true,
	"/pricing":     true,
	"/sitemap.xml": true,
	"/robots.txt":  true,
}

// SiteIndex is the lookup state one classification pass runs against. All
// sets are keyed by slug; PillarSlugs holds the registered cluster pillars.
type SiteIndex struct {
	ToolSlugs    map[string]bool
	ArticleSlugs map[string]bool
	ProductSlugs map[string]bool
	PillarSlugs  map[string]bool
}

// Classify resolves a URL path to exactly one kind. Precedence matters:
// the first matching rule wins, and anything unclaimed falls through to
// legacy.
func Classify(path string, idx SiteIndex) UrlKind {
	path = strings.TrimSuffix(strings.TrimSpace(path), "/")
	if path == "" {
		path = "/"
	}

	if systemPaths[path] || strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/api/") {
		return KindSystem
	}

	// A /tools/ URL that is neither a registered pillar nor a known CMS
	// tool is an orphan from the pre-CMS site.
	if slug, ok := strings.CutPrefix(path, "/tools/"); ok {
		if !idx.PillarSlugs[slug] && !idx.ToolSlugs[slug] {
			return KindLegacy
		}
		if idx.ToolSlugs[slug] {
			return KindTool
		}
	}

	for _, prefix := range []string{"/mbb/", "/blog/", "/answers/"} {
		if slug, ok := strings.CutPrefix(path, prefix); ok && idx.ArticleSlugs[slug] {
			return KindArticle
		}
	}

	if slug, ok := strings.CutPrefix(path, "/tools/"); ok && idx.PillarSlugs[slug] {
		return KindPillar
	}

	if slug, ok := strings.CutPrefix(path, "/products/"); ok && idx.ProductSlugs[slug] {
		return KindProduct
	}

	return KindLegacy
}

// ClusterShape is the subset of cluster metadata expected-link targets
// are derived from.
type ClusterShape struct {
	ToolCount    int
	ArticleCount int
}

// ExpectedLinks returns the internal-link target for a URL of the given
// kind, or nil when no target applies. Tool targets need a resolved
// cluster; a tool without one has no defined target.
func ExpectedLinks(kind UrlKind, cluster *ClusterShape) *int {
	switch kind {
	case KindTool:
		if cluster == nil {
			return nil
		}
		siblings := cluster.ToolCount - 1
		if siblings > 3 {
			siblings = 3
		}
		if siblings < 0 {
			siblings = 0
		}
		articles := cluster.ArticleCount
		if articles > 2 {
			articles = 2
		}
		return intPtr(siblings + articles)
	case KindPillar:
		if cluster == nil {
			return nil
		}
		return intPtr(cluster.ToolCount)
	case KindArticle:
		return intPtr(2)
	case KindProduct:
		return intPtr(3)
	default:
		// system and legacy pages carry no link target
		return nil
	}
}

// StatusInputs feed the status derivation for one non-system URL.
type StatusInputs struct {
	IsLegacy           bool
	HealthScore        *int
	ActualLinks        int
	ExpectedLinks      *int
	ManualReviewPassed bool
}

// computeStatus derives the editorial verdict. Legacy short-circuits;
// link deficits outrank review state.
func computeStatus(in StatusInputs) UrlStatus {
	if in.IsLegacy {
		return StatusLegacy
	}
	if in.ExpectedLinks != nil && in.ActualLinks < *in.ExpectedLinks {
		return StatusNeedsLinks
	}
	if in.HealthScore != nil && *in.HealthScore < 60 {
		return StatusNeedsReview
	}
	if !in.ManualReviewPassed {
		return StatusNeedsReview
	}
	return StatusReady
}

func intPtr(n int) *int { return &n }
