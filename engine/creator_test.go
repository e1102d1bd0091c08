package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// fakeStore implements ShellStore in memory.
type fakeStore struct {
	slugs    map[string]bool
	failOn   map[string]error
	batchGet int // number of ExistingSlugs calls
}

func newFakeStore() *fakeStore {
	return &fakeStore{slugs: make(map[string]bool), failOn: make(map[string]error)}
}

func (f *fakeStore) ExistingSlugs(_ context.Context, slugs []string) (map[string]bool, error) {
	f.batchGet++
	out := make(map[string]bool)
	for _, s := range slugs {
		if f.slugs[s] {
			out[s] = true
		}
	}
	return out, nil
}

func (f *fakeStore) CreateDraft(_ context.Context, s Shell) error {
	if err := f.failOn[s.Slug]; err != nil {
		return err
	}
	if f.slugs[s.Slug] {
		return fmt.Errorf("insert: %w", ErrSlugExists)
	}
	f.slugs[s.Slug] = true
	return nil
}

func testCreator(t *testing.T, store ShellStore) *Creator {
	t.Helper()
	reg, err := NewRegistry(analyzerBlueprint())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return NewCreator(reg, store, nil)
}

func TestCreator_FirstRunCreatesAll(t *testing.T) {
	store := newFakeStore()
	c := testCreator(t, store)

	res, err := c.ExpandBlueprint(context.Background(), "test-analyzer")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if res.CreatedCount != 4 || res.SkippedCount != 0 {
		t.Errorf("first run: created %d skipped %d, want 4/0", res.CreatedCount, res.SkippedCount)
	}
	if store.batchGet != 1 {
		t.Errorf("existing slugs must be fetched once per run, got %d calls", store.batchGet)
	}
}

func TestCreator_Idempotence(t *testing.T) {
	// WHAT: running the same expansion twice with no external state change
	// creates nothing the second time and skips everything.
	store := newFakeStore()
	c := testCreator(t, store)
	ctx := context.Background()

	run1, err := c.ExpandBlueprint(ctx, "test-analyzer")
	if err != nil {
		t.Fatalf("run1: %v", err)
	}
	run2, err := c.ExpandBlueprint(ctx, "test-analyzer")
	if err != nil {
		t.Fatalf("run2: %v", err)
	}

	if run2.CreatedCount != 0 {
		t.Errorf("run2 created: got %d, want 0", run2.CreatedCount)
	}
	if run2.SkippedCount != run1.CreatedCount+run1.SkippedCount {
		t.Errorf("run2 skipped: got %d, want %d", run2.SkippedCount, run1.CreatedCount+run1.SkippedCount)
	}
	if len(run2.Errors) != 0 {
		t.Errorf("run2 errors: %v", run2.Errors)
	}
}

func TestCreator_DeterministicPartitions(t *testing.T) {
	storeA, storeB := newFakeStore(), newFakeStore()
	storeA.slugs["youtube-bio-analyzer"] = true
	storeB.slugs["youtube-bio-analyzer"] = true
	ctx := context.Background()

	resA, _ := testCreator(t, storeA).ExpandBlueprint(ctx, "test-analyzer")
	resB, _ := testCreator(t, storeB).ExpandBlueprint(ctx, "test-analyzer")

	if !reflect.DeepEqual(resA.Created, resB.Created) || !reflect.DeepEqual(resA.Skipped, resB.Skipped) {
		t.Errorf("partitions differ: %v/%v vs %v/%v", resA.Created, resA.Skipped, resB.Created, resB.Skipped)
	}
}

func TestCreator_RecreatesDeletedSlug(t *testing.T) {
	store := newFakeStore()
	c := testCreator(t, store)
	ctx := context.Background()

	if _, err := c.ExpandBlueprint(ctx, "test-analyzer"); err != nil {
		t.Fatalf("run1: %v", err)
	}

	// Simulate a manual delete of one previously-created shell.
	delete(store.slugs, "instagram-caption-analyzer")

	res, err := c.ExpandBlueprint(ctx, "test-analyzer")
	if err != nil {
		t.Fatalf("run2: %v", err)
	}
	if res.CreatedCount != 1 {
		t.Errorf("created: got %d, want 1", res.CreatedCount)
	}
	if res.Created[0] != "instagram-caption-analyzer" {
		t.Errorf("created slug: got %q", res.Created[0])
	}
	if res.SkippedCount != 3 {
		t.Errorf("skipped: got %d, want 3", res.SkippedCount)
	}
}

func TestCreator_PartialFailure(t *testing.T) {
	store := newFakeStore()
	store.failOn["youtube-caption-analyzer"] = errors.New("disk full")
	c := testCreator(t, store)

	res, err := c.ExpandBlueprint(context.Background(), "test-analyzer")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if res.CreatedCount != 3 {
		t.Errorf("one bad shell must not abort the batch: created %d, want 3", res.CreatedCount)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("errors: got %v", res.Errors)
	}
}

func TestCreator_SlugConflictCountsAsSkip(t *testing.T) {
	store := newFakeStore()
	store.failOn["youtube-caption-analyzer"] = fmt.Errorf("unique constraint: %w", ErrSlugExists)
	c := testCreator(t, store)

	res, err := c.ExpandBlueprint(context.Background(), "test-analyzer")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Errorf("slug conflict is a skip, not an error: %v", res.Errors)
	}
	if res.SkippedCount != 1 {
		t.Errorf("skipped: got %d, want 1", res.SkippedCount)
	}
}

func TestCreator_UnknownBlueprint(t *testing.T) {
	c := testCreator(t, newFakeStore())
	if _, err := c.ExpandBlueprint(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown blueprint")
	}
}

func TestCreator_ExpandAll(t *testing.T) {
	store := newFakeStore()
	reg, err := NewRegistry(Catalog()...)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	c := NewCreator(reg, store, nil)

	results, err := c.ExpandAll(context.Background())
	if err != nil {
		t.Fatalf("expand all: %v", err)
	}
	if len(results) != len(Catalog()) {
		t.Fatalf("results: got %d, want %d", len(results), len(Catalog()))
	}
	for i, res := range results {
		if res.BlueprintID != Catalog()[i].ID {
			t.Errorf("result %d: blueprint %q, want registry order %q", i, res.BlueprintID, Catalog()[i].ID)
		}
		if res.CreatedCount == 0 {
			t.Errorf("result %d (%s): nothing created on empty store", i, res.BlueprintID)
		}
	}
}
