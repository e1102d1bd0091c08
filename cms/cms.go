// CLAUDE:SUMMARY CMS service facade — draft creation for the engine, bulk import, listings, rollout flags.
//
// Package cms owns the persisted content objects of the platform: tool
// pages, articles, pillar pages and product pages. Every object is keyed
// by its public slug; the slug carries a UNIQUE constraint so concurrent
// creators cannot double-write a page.
//
// Flows:
//
//  1. The combinatorial engine calls CreateDraft for every shell it
//     expands. Existing slugs are skipped upstream via ExistingSlugs; the
//     unique constraint is the safety net for races.
//  2. Operators push content through BulkImport: each item is validated,
//     its HTML sanitized, a plain-text rendition derived, and the object
//     created or updated. One bad item never aborts the batch.
//  3. The cluster health scorer reads rollout state back through
//     IsToolIndexed and CountPublishedArticles.
//
// Usage:
//
//	svc, err := cms.New(db, logger)
//	report, err := svc.BulkImport(ctx, items)
package cms

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/dimilowe/VCMStore-sub005/cms/internal/store"
	"github.com/dimilowe/VCMStore-sub005/idgen"
)

// Service coordinates CMS object persistence and content processing.
type Service struct {
	store  *store.Store
	logger *slog.Logger
	newID  idgen.Generator
}

// New opens the CMS service on the given database, applying its schema.
func New(db *sql.DB, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	st, err := store.Open(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:  st,
		logger: logger,
		newID:  idgen.Prefixed("cms_", idgen.Default),
	}, nil
}

// Get retrieves one object by slug, or nil if absent.
func (s *Service) Get(ctx context.Context, slug string) (*Object, error) {
	return s.store.GetBySlug(ctx, slug)
}

// List returns objects filtered by type and status. Empty filters match all.
func (s *Service) List(ctx context.Context, objType, status string, limit int) ([]*Object, error) {
	return s.store.List(ctx, objType, status, limit)
}

// SetIndexed flips the rollout flag on a slug. Only indexed tools count
// toward cluster health.
func (s *Service) SetIndexed(ctx context.Context, slug string, indexed bool) error {
	if err := s.store.SetIndexed(ctx, slug, indexed); err != nil {
		return err
	}
	s.logger.Info("cms: indexed flag changed", "slug", slug, "indexed", indexed)
	return nil
}

// Count returns the total number of persisted objects.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// ArticleStatuses reports the publish state of each article slug.
func (s *Service) ArticleStatuses(ctx context.Context, slugs []string) ([]ArticleStatus, error) {
	return s.store.ArticleStatuses(ctx, slugs)
}

// IsToolIndexed reports whether the tool at slug is live. Missing tools
// are not indexed.
func (s *Service) IsToolIndexed(ctx context.Context, slug string) (bool, error) {
	return s.store.IsIndexed(ctx, slug)
}

// CountPublishedArticles counts published objects among the given slugs.
func (s *Service) CountPublishedArticles(ctx context.Context, slugs []string) (int, error) {
	return s.store.CountPublished(ctx, slugs)
}
