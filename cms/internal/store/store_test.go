package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dimilowe/VCMStore-sub005/dbopen"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(Schema))
	return &Store{DB: db}
}

func testObject(slug string) *Object {
	return &Object{
		ID:          "obj-" + slug,
		Slug:        slug,
		Type:        "tool",
		Title:       "Title " + slug,
		Keyword:     slug,
		Status:      "draft",
		ClusterSlug: "youtube-creator-tools",
		EngineID:    "thumbnail-analyzer",
	}
}

func TestInsertAndGetBySlug(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	o := testObject("youtube-caption-analyzer")
	o.LinkRulesJSON = `{"siblingsPerTool":3}`
	if err := s.Insert(ctx, o); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := s.GetBySlug(ctx, "youtube-caption-analyzer")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected object, got nil")
	}
	if got.Title != o.Title || got.ClusterSlug != o.ClusterSlug {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.LinkRulesJSON != `{"siblingsPerTool":3}` {
		t.Errorf("link rules = %q", got.LinkRulesJSON)
	}
	if got.CreatedAt == 0 || got.UpdatedAt == 0 {
		t.Error("timestamps not set")
	}
}

func TestGetBySlugMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.GetBySlug(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing slug, got %+v", got)
	}
}

func TestInsertDuplicateSlug(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, testObject("dup")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	second := testObject("dup")
	second.ID = "obj-dup-2"
	err := s.Insert(ctx, second)
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	o := testObject("upd")
	if err := s.Insert(ctx, o); err != nil {
		t.Fatalf("insert: %v", err)
	}
	o.Title = "Updated"
	o.Status = "published"
	o.IsIndexed = true
	if err := s.Update(ctx, o); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.GetBySlug(ctx, "upd")
	if err != nil || got == nil {
		t.Fatalf("get: %v %v", got, err)
	}
	if got.Title != "Updated" || got.Status != "published" || !got.IsIndexed {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestExistingSlugs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, slug := range []string{"a", "b", "c"} {
		if err := s.Insert(ctx, testObject(slug)); err != nil {
			t.Fatalf("insert %s: %v", slug, err)
		}
	}

	got, err := s.ExistingSlugs(ctx, []string{"a", "c", "x", "y"})
	if err != nil {
		t.Fatalf("existing slugs: %v", err)
	}
	if len(got) != 2 || !got["a"] || !got["c"] {
		t.Errorf("existing = %v", got)
	}
	if got["x"] || got["y"] {
		t.Errorf("unknown slugs reported as existing: %v", got)
	}
}

func TestExistingSlugsEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ExistingSlugs(context.Background(), nil)
	if err != nil {
		t.Fatalf("existing slugs: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestListFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tool := testObject("z-tool")
	article := testObject("a-article")
	article.Type = "article"
	article.Status = "published"
	for _, o := range []*Object{tool, article} {
		if err := s.Insert(ctx, o); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	all, err := s.List(ctx, "", "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d", len(all))
	}
	if all[0].Slug != "a-article" {
		t.Errorf("expected slug order, got %s first", all[0].Slug)
	}

	tools, err := s.List(ctx, "tool", "", 0)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools) != 1 || tools[0].Slug != "z-tool" {
		t.Errorf("tools = %+v", tools)
	}

	published, err := s.List(ctx, "article", "published", 0)
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published) != 1 || published[0].Slug != "a-article" {
		t.Errorf("published = %+v", published)
	}
}

func TestArticleStatuses(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	pub := testObject("published-article")
	pub.Type = "article"
	pub.Status = "published"
	pub.IsIndexed = true
	draft := testObject("draft-article")
	draft.Type = "article"
	for _, o := range []*Object{pub, draft} {
		if err := s.Insert(ctx, o); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := s.ArticleStatuses(ctx, []string{"published-article", "draft-article", "missing"})
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	if !got[0].Exists || !got[0].Published || !got[0].IsIndexed {
		t.Errorf("published article state: %+v", got[0])
	}
	if !got[1].Exists || got[1].Published {
		t.Errorf("draft article state: %+v", got[1])
	}
	if got[2].Exists || got[2].Published {
		t.Errorf("missing article state: %+v", got[2])
	}
}

func TestCountPublished(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := testObject("pub-a")
	a.Status = "published"
	b := testObject("pub-b")
	b.Status = "published"
	c := testObject("draft-c")
	for _, o := range []*Object{a, b, c} {
		if err := s.Insert(ctx, o); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	n, err := s.CountPublished(ctx, []string{"pub-a", "pub-b", "draft-c", "missing"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}

func TestSetIndexed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, testObject("flip")); err != nil {
		t.Fatalf("insert: %v", err)
	}

	indexed, err := s.IsIndexed(ctx, "flip")
	if err != nil || indexed {
		t.Fatalf("fresh object indexed = %v, err = %v", indexed, err)
	}

	if err := s.SetIndexed(ctx, "flip", true); err != nil {
		t.Fatalf("set indexed: %v", err)
	}
	indexed, err = s.IsIndexed(ctx, "flip")
	if err != nil || !indexed {
		t.Fatalf("after set: indexed = %v, err = %v", indexed, err)
	}

	if err := s.SetIndexed(ctx, "unknown", true); err == nil {
		t.Error("expected error for unknown slug")
	}
}

func TestIsIndexedMissing(t *testing.T) {
	s := openTestStore(t)

	indexed, err := s.IsIndexed(context.Background(), "missing")
	if err != nil {
		t.Fatalf("is indexed: %v", err)
	}
	if indexed {
		t.Error("missing slug reported indexed")
	}
}
