// CLAUDE:SUMMARY SQLite schema for CMS objects — slug-unique page records with cluster, link rules and rollout flags.
package store

// Schema creates the cms_objects table. Idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS cms_objects (
	id             TEXT PRIMARY KEY,
	slug           TEXT NOT NULL UNIQUE,
	type           TEXT NOT NULL,
	title          TEXT NOT NULL,
	keyword        TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	body_html      TEXT NOT NULL DEFAULT '',
	body_text      TEXT NOT NULL DEFAULT '',
	word_count     INTEGER NOT NULL DEFAULT 0,
	content_health INTEGER NOT NULL DEFAULT 0,
	status         TEXT NOT NULL DEFAULT 'draft',
	cluster_slug   TEXT NOT NULL DEFAULT '',
	engine_id      TEXT NOT NULL DEFAULT '',
	priority       INTEGER NOT NULL DEFAULT 0,
	is_indexed     INTEGER NOT NULL DEFAULT 0,
	in_directory   INTEGER NOT NULL DEFAULT 0,
	search_intent  TEXT NOT NULL DEFAULT '',
	link_rules     TEXT NOT NULL DEFAULT '{}',
	created_at     INTEGER NOT NULL,
	updated_at     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cms_objects_type ON cms_objects(type);
CREATE INDEX IF NOT EXISTS idx_cms_objects_cluster ON cms_objects(cluster_slug);
CREATE INDEX IF NOT EXISTS idx_cms_objects_status ON cms_objects(status);
`
