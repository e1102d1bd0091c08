// CLAUDE:SUMMARY SQLite schema for the URL registry and SEO crawl snapshots.
package store

// Schema creates the registry tables. Statements are idempotent so the
// schema can be applied on every open.
const Schema = `
CREATE TABLE IF NOT EXISTS global_urls (
	id            TEXT PRIMARY KEY,
	url           TEXT NOT NULL UNIQUE,
	discovered_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS seo_snapshots (
	id                 TEXT PRIMARY KEY,
	slug               TEXT NOT NULL,
	internal_links_in  INTEGER NOT NULL DEFAULT 0,
	internal_links_out INTEGER NOT NULL DEFAULT 0,
	overall_score      INTEGER NOT NULL DEFAULT 0,
	captured_at        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_seo_snapshots_slug ON seo_snapshots(slug, captured_at);
`
