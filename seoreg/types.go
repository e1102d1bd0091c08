// CLAUDE:SUMMARY URL kinds, statuses, and the enriched registry row shape.
package seoreg

// UrlKind identifies what a site URL points at. Every URL resolves to
// exactly one kind.
type UrlKind string

const (
	KindSystem  UrlKind = "system"
	KindTool    UrlKind = "cms-tool"
	KindArticle UrlKind = "cms-article"
	KindPillar  UrlKind = "cms-pillar"
	KindProduct UrlKind = "cms-product"
	KindLegacy  UrlKind = "legacy"
)

// UrlStatus is the per-URL editorial verdict shown in the admin registry.
type UrlStatus string

const (
	StatusReady       UrlStatus = "Ready"
	StatusNeedsLinks  UrlStatus = "Needs Links"
	StatusNeedsReview UrlStatus = "Needs Review"
	StatusLegacy      UrlStatus = "Legacy"
	StatusSystem      UrlStatus = "System"
)

// EnrichedRow is one classified URL, derived per request by joining the
// URL registry, the CMS, and the latest SEO snapshot.
type EnrichedRow struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Kind          UrlKind   `json:"kind"`
	Status        UrlStatus `json:"status"`
	IsIndexed     bool      `json:"isIndexed"`
	CMSID         string    `json:"cmsId,omitempty"`
	CMSType       string    `json:"cmsType,omitempty"`
	ClusterSlug   string    `json:"clusterSlug,omitempty"`
	Engine        string    `json:"engine,omitempty"`
	LinksInbound  int       `json:"linksInbound"`
	LinksOutbound int       `json:"linksOutbound"`
	ExpectedLinks *int      `json:"expectedLinks"`
	SEOScore      *int      `json:"seoScore"`
}

// Summary aggregates one enrichment pass.
type Summary struct {
	Total    int               `json:"total"`
	ByKind   map[UrlKind]int   `json:"byKind"`
	ByStatus map[UrlStatus]int `json:"byStatus"`
}
