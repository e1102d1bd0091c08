// CLAUDE:SUMMARY Enrichment pass — joins URL registry, CMS state, clusters and snapshots into classified rows.
//
// Package seoreg owns the global URL registry: the set of every known
// site URL plus the per-request classification that turns it into the
// admin console's enriched report.
//
// Flows:
//
//  1. Sync registers the canonical URL of every CMS object so the
//     registry tracks the content base without manual entry.
//  2. RecordSnapshot appends crawl measurements (internal link counts,
//     overall score) keyed by slug; only the latest per slug is read.
//  3. Enriched joins everything read-only: each URL is classified into
//     one kind, matched with its CMS object and cluster, given an
//     expected-link target, and assigned a status.
//
// Usage:
//
//	svc, err := seoreg.New(db, cmsSvc, logger)
//	rows, summary, err := svc.Enriched(ctx)
package seoreg

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/dimilowe/VCMStore-sub005/cluster"
	"github.com/dimilowe/VCMStore-sub005/cms"
	"github.com/dimilowe/VCMStore-sub005/idgen"
	"github.com/dimilowe/VCMStore-sub005/seoreg/internal/store"
)

// CMSReader is the slice of the CMS the registry reads.
type CMSReader interface {
	List(ctx context.Context, objType, status string, limit int) ([]*cms.Object, error)
}

// Service runs registry maintenance and the enrichment pass.
type Service struct {
	store  *store.Store
	cms    CMSReader
	logger *slog.Logger
	newID  idgen.Generator
}

// New opens the registry service on the given database, applying its schema.
func New(db *sql.DB, cmsReader CMSReader, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	st, err := store.Open(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		store:  st,
		cms:    cmsReader,
		logger: logger,
		newID:  idgen.Prefixed("url_", idgen.Default),
	}, nil
}

// Register adds one URL path to the registry. Already-known paths are a
// no-op.
func (s *Service) Register(ctx context.Context, path string) error {
	return s.store.UpsertURL(ctx, s.newID(), path)
}

// Sync registers the canonical URL of every CMS object. Safe to run
// repeatedly.
func (s *Service) Sync(ctx context.Context) (int, error) {
	objects, err := s.cms.List(ctx, "", "", 0)
	if err != nil {
		return 0, err
	}
	for _, o := range objects {
		if err := s.store.UpsertURL(ctx, s.newID(), canonicalPath(o)); err != nil {
			return 0, err
		}
	}
	s.logger.Info("seoreg: registry synced", "objects", len(objects))
	return len(objects), nil
}

// RecordSnapshot appends one crawl measurement for a slug.
func (s *Service) RecordSnapshot(ctx context.Context, slug string, linksIn, linksOut, score int) error {
	return s.store.RecordSnapshot(ctx, store.Snapshot{
		ID:           s.newID(),
		Slug:         slug,
		LinksIn:      linksIn,
		LinksOut:     linksOut,
		OverallScore: score,
	})
}

// Enriched classifies every registered URL and returns the rows plus an
// aggregate summary. Read-only; safe to run repeatedly and concurrently.
func (s *Service) Enriched(ctx context.Context) ([]EnrichedRow, Summary, error) {
	urls, err := s.store.ListURLs(ctx)
	if err != nil {
		return nil, Summary{}, err
	}
	objects, err := s.cms.List(ctx, "", "", 0)
	if err != nil {
		return nil, Summary{}, err
	}
	snapshots, err := s.store.LatestSnapshots(ctx)
	if err != nil {
		return nil, Summary{}, err
	}

	idx := SiteIndex{
		ToolSlugs:    make(map[string]bool),
		ArticleSlugs: make(map[string]bool),
		ProductSlugs: make(map[string]bool),
		PillarSlugs:  make(map[string]bool),
	}
	bySlug := make(map[string]*cms.Object, len(objects))
	for _, o := range objects {
		bySlug[o.Slug] = o
		switch o.Type {
		case cms.TypeTool:
			idx.ToolSlugs[o.Slug] = true
		case cms.TypeArticle:
			idx.ArticleSlugs[o.Slug] = true
		case cms.TypeProduct:
			idx.ProductSlugs[o.Slug] = true
		}
	}
	for _, c := range cluster.All() {
		idx.PillarSlugs[c.PillarSlug] = true
	}

	summary := Summary{
		ByKind:   make(map[UrlKind]int),
		ByStatus: make(map[UrlStatus]int),
	}
	rows := make([]EnrichedRow, 0, len(urls))
	for _, u := range urls {
		row := s.enrichOne(u.ID, u.URL, idx, bySlug, snapshots)
		summary.Total++
		summary.ByKind[row.Kind]++
		summary.ByStatus[row.Status]++
		rows = append(rows, row)
	}
	return rows, summary, nil
}

func (s *Service) enrichOne(id, path string, idx SiteIndex, bySlug map[string]*cms.Object, snapshots map[string]store.Snapshot) EnrichedRow {
	kind := Classify(path, idx)
	slug := slugFromPath(path)

	row := EnrichedRow{ID: id, URL: path, Kind: kind}

	obj := bySlug[slug]
	var shape *ClusterShape
	if obj != nil {
		row.CMSID = obj.ID
		row.CMSType = obj.Type
		row.ClusterSlug = obj.ClusterSlug
		row.Engine = obj.EngineID
		row.IsIndexed = obj.IsIndexed
		row.SEOScore = intPtr(obj.ContentHealth)
		if c := cluster.Get(obj.ClusterSlug); c != nil {
			shape = &ClusterShape{ToolCount: len(c.ToolSlugs), ArticleCount: len(c.ArticleSlugs)}
		}
	}
	if kind == KindPillar && shape == nil {
		if c := cluster.ByPillarSlug(slug); c != nil {
			shape = &ClusterShape{ToolCount: len(c.ToolSlugs), ArticleCount: len(c.ArticleSlugs)}
		}
	}

	if snap, ok := snapshots[slug]; ok {
		row.LinksInbound = snap.LinksIn
		row.LinksOutbound = snap.LinksOut
		row.SEOScore = intPtr(snap.OverallScore)
	}

	row.ExpectedLinks = ExpectedLinks(kind, shape)

	if kind == KindSystem {
		row.Status = StatusSystem
		return row
	}
	row.Status = computeStatus(StatusInputs{
		IsLegacy:           kind == KindLegacy,
		HealthScore:        row.SEOScore,
		ActualLinks:        row.LinksOutbound,
		ExpectedLinks:      row.ExpectedLinks,
		ManualReviewPassed: obj != nil && obj.IsIndexed,
	})
	return row
}

// canonicalPath maps a CMS object to its public URL.
func canonicalPath(o *cms.Object) string {
	switch o.Type {
	case cms.TypeArticle:
		return "/mbb/" + o.Slug
	case cms.TypeProduct:
		return "/products/" + o.Slug
	default:
		// tools and pillars both live under /tools/
		return "/tools/" + o.Slug
	}
}

func slugFromPath(path string) string {
	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
