// CLAUDE:SUMMARY URL registry persistence — known site URLs and latest-per-slug SEO snapshots.
package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Store wraps the registry tables.
type Store struct {
	DB *sql.DB
}

// Open applies the schema and returns a Store.
func Open(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// GlobalURL is one known site URL (a path, e.g. "/tools/x").
type GlobalURL struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	DiscoveredAt int64  `json:"discovered_at"`
}

// Snapshot is one SEO crawl measurement for a slug.
type Snapshot struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	LinksIn      int    `json:"internal_links_in"`
	LinksOut     int    `json:"internal_links_out"`
	OverallScore int    `json:"overall_score"`
	CapturedAt   int64  `json:"captured_at"`
}

// UpsertURL registers a URL if it is not already known. Re-registering is
// a no-op so crawls can feed the table repeatedly.
func (s *Store) UpsertURL(ctx context.Context, id, url string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO global_urls (id, url, discovered_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO NOTHING`,
		id, strings.TrimSpace(url), time.Now().UnixMilli())
	return err
}

// ListURLs returns every known URL ordered by path.
func (s *Store) ListURLs(ctx context.Context) ([]GlobalURL, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, url, discovered_at FROM global_urls ORDER BY url`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []GlobalURL
	for rows.Next() {
		var u GlobalURL
		if err := rows.Scan(&u.ID, &u.URL, &u.DiscoveredAt); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// RecordSnapshot appends one crawl measurement.
func (s *Store) RecordSnapshot(ctx context.Context, snap Snapshot) error {
	if snap.CapturedAt == 0 {
		snap.CapturedAt = time.Now().UnixMilli()
	}
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO seo_snapshots (id, slug, internal_links_in, internal_links_out, overall_score, captured_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Slug, snap.LinksIn, snap.LinksOut, snap.OverallScore, snap.CapturedAt)
	return err
}

// LatestSnapshots returns the most recent snapshot per slug. Rows are
// read in capture order, rowid breaking timestamp ties, so later
// measurements overwrite earlier ones.
func (s *Store) LatestSnapshots(ctx context.Context) (map[string]Snapshot, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, slug, internal_links_in, internal_links_out, overall_score, captured_at
		FROM seo_snapshots ORDER BY captured_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := make(map[string]Snapshot)
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Slug, &snap.LinksIn, &snap.LinksOut, &snap.OverallScore, &snap.CapturedAt); err != nil {
			return nil, err
		}
		latest[snap.Slug] = snap
	}
	return latest, rows.Err()
}
