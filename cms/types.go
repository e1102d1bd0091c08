// CLAUDE:SUMMARY Public aliases for the store types so callers never import internal/store.
package cms

import "github.com/dimilowe/VCMStore-sub005/cms/internal/store"

// Object is one persisted CMS record.
type Object = store.Object

// ArticleStatus is the publish state of one article slug.
type ArticleStatus = store.ArticleStatus

// Object types.
const (
	TypeTool    = "tool"
	TypeArticle = "article"
	TypePillar  = "pillar"
	TypeProduct = "product"
)

// Object publish statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
