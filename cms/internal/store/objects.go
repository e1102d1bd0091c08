// CLAUDE:SUMMARY CRUD for CMS objects — slug-keyed upsert, batch existence, article statuses, rollout flag.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDuplicateSlug is returned by Insert when the slug is already taken.
var ErrDuplicateSlug = errors.New("store: duplicate slug")

// Object is one persisted CMS record (tool page, article, pillar, product).
type Object struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Type          string `json:"type"` // "tool", "article", "pillar", "product"
	Title         string `json:"title"`
	Keyword       string `json:"keyword"`
	Description   string `json:"description"`
	BodyHTML      string `json:"body_html,omitempty"`
	BodyText      string `json:"body_text,omitempty"`
	WordCount     int    `json:"word_count"`
	ContentHealth int    `json:"content_health"`
	Status        string `json:"status"` // "draft", "published"
	ClusterSlug   string `json:"cluster_slug"`
	EngineID      string `json:"engine_id"`
	Priority      int    `json:"priority"`
	IsIndexed     bool   `json:"is_indexed"`
	InDirectory   bool   `json:"in_directory"`
	SearchIntent  string `json:"search_intent"`
	LinkRulesJSON string `json:"link_rules"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

const objectCols = `id, slug, type, title, keyword, description, body_html, body_text,
	word_count, content_health, status, cluster_slug, engine_id, priority,
	is_indexed, in_directory, search_intent, link_rules, created_at, updated_at`

// Insert inserts a new object. A slug collision maps to ErrDuplicateSlug so
// callers can treat concurrent creates as a skip.
func (s *Store) Insert(ctx context.Context, o *Object) error {
	now := time.Now().UnixMilli()
	if o.CreatedAt == 0 {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	if o.LinkRulesJSON == "" {
		o.LinkRulesJSON = "{}"
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO cms_objects (`+objectCols+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.Slug, o.Type, o.Title, o.Keyword, o.Description, o.BodyHTML, o.BodyText,
		o.WordCount, o.ContentHealth, o.Status, o.ClusterSlug, o.EngineID, o.Priority,
		boolInt(o.IsIndexed), boolInt(o.InDirectory), o.SearchIntent, o.LinkRulesJSON,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint") {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, o.Slug)
	}
	return err
}

// Update rewrites an existing object's content fields, keyed by slug.
func (s *Store) Update(ctx context.Context, o *Object) error {
	o.UpdatedAt = time.Now().UnixMilli()
	_, err := s.DB.ExecContext(ctx, `
		UPDATE cms_objects SET
			type=?, title=?, keyword=?, description=?, body_html=?, body_text=?,
			word_count=?, content_health=?, status=?, cluster_slug=?, engine_id=?,
			priority=?, is_indexed=?, in_directory=?, search_intent=?, link_rules=?,
			updated_at=?
		WHERE slug=?`,
		o.Type, o.Title, o.Keyword, o.Description, o.BodyHTML, o.BodyText,
		o.WordCount, o.ContentHealth, o.Status, o.ClusterSlug, o.EngineID,
		o.Priority, boolInt(o.IsIndexed), boolInt(o.InDirectory), o.SearchIntent,
		o.LinkRulesJSON, o.UpdatedAt, o.Slug,
	)
	return err
}

// GetBySlug retrieves an object by slug, or nil if absent.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*Object, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+objectCols+` FROM cms_objects WHERE slug = ?`, slug)
	o, err := scanObject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// HasSlug reports whether a slug is already persisted.
func (s *Store) HasSlug(ctx context.Context, slug string) (bool, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cms_objects WHERE slug = ?`, slug).Scan(&n)
	return n > 0, err
}

// ExistingSlugs reports which of the given slugs are persisted, in one
// round-trip per chunk rather than one per slug.
func (s *Store) ExistingSlugs(ctx context.Context, slugs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(slugs))
	const chunkSize = 500
	for start := 0; start < len(slugs); start += chunkSize {
		end := start + chunkSize
		if end > len(slugs) {
			end = len(slugs)
		}
		chunk := slugs[start:end]

		placeholders := strings.Repeat("?,", len(chunk))
		placeholders = placeholders[:len(placeholders)-1]
		args := make([]any, len(chunk))
		for i, s := range chunk {
			args[i] = s
		}

		rows, err := s.DB.QueryContext(ctx,
			`SELECT slug FROM cms_objects WHERE slug IN (`+placeholders+`)`, args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var slug string
			if err := rows.Scan(&slug); err != nil {
				rows.Close()
				return nil, err
			}
			out[slug] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

// List returns objects, optionally filtered by type and status, ordered by slug.
func (s *Store) List(ctx context.Context, objType, status string, limit int) ([]*Object, error) {
	query := `SELECT ` + objectCols + ` FROM cms_objects`
	var conds []string
	var args []any
	if objType != "" {
		conds = append(conds, "type = ?")
		args = append(args, objType)
	}
	if status != "" {
		conds = append(conds, "status = ?")
		args = append(args, status)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY slug"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objects []*Object
	for rows.Next() {
		o, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return objects, rows.Err()
}

// ArticleStatus is the publish state of one article slug.
type ArticleStatus struct {
	Slug      string `json:"slug"`
	Exists    bool   `json:"exists"`
	Published bool   `json:"published"`
	IsIndexed bool   `json:"is_indexed"`
}

// ArticleStatuses reports the publish state of each given article slug, in
// input order. Slugs with no CMS object report Exists=false.
func (s *Store) ArticleStatuses(ctx context.Context, slugs []string) ([]ArticleStatus, error) {
	out := make([]ArticleStatus, 0, len(slugs))
	for _, slug := range slugs {
		st := ArticleStatus{Slug: slug}
		var status string
		var indexed int
		err := s.DB.QueryRowContext(ctx,
			`SELECT status, is_indexed FROM cms_objects WHERE slug = ? AND type = 'article'`, slug).
			Scan(&status, &indexed)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// leave zero values
		case err != nil:
			return nil, err
		default:
			st.Exists = true
			st.Published = status == "published"
			st.IsIndexed = indexed != 0
		}
		out = append(out, st)
	}
	return out, nil
}

// CountPublished counts published objects among the given slugs.
func (s *Store) CountPublished(ctx context.Context, slugs []string) (int, error) {
	n := 0
	for _, slug := range slugs {
		var c int
		err := s.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM cms_objects WHERE slug = ? AND status = 'published'`, slug).Scan(&c)
		if err != nil {
			return 0, err
		}
		n += c
	}
	return n, nil
}

// IsIndexed reports the rollout flag of the given slug. Unknown slugs are
// not indexed.
func (s *Store) IsIndexed(ctx context.Context, slug string) (bool, error) {
	var indexed int
	err := s.DB.QueryRowContext(ctx,
		`SELECT is_indexed FROM cms_objects WHERE slug = ?`, slug).Scan(&indexed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return indexed != 0, nil
}

// SetIndexed flips the rollout flag on a slug.
func (s *Store) SetIndexed(ctx context.Context, slug string, indexed bool) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE cms_objects SET is_indexed = ?, updated_at = ? WHERE slug = ?`,
		boolInt(indexed), time.Now().UnixMilli(), slug)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("store: no object with slug %q", slug)
	}
	return nil
}

// Count returns the total number of objects.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cms_objects`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanObject(row scanner) (*Object, error) {
	o := &Object{}
	var isIndexed, inDirectory int
	err := row.Scan(
		&o.ID, &o.Slug, &o.Type, &o.Title, &o.Keyword, &o.Description, &o.BodyHTML, &o.BodyText,
		&o.WordCount, &o.ContentHealth, &o.Status, &o.ClusterSlug, &o.EngineID, &o.Priority,
		&isIndexed, &inDirectory, &o.SearchIntent, &o.LinkRulesJSON, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.IsIndexed = isIndexed != 0
	o.InDirectory = inDirectory != 0
	return o, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
