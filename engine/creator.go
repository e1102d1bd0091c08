// CLAUDE:SUMMARY Idempotent shell creation — batch existing-slug fetch, skip-or-create per shell, per-item error capture.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrSlugExists is returned (or wrapped) by ShellStore.CreateDraft when the
// slug already exists. The Creator counts it as a skip, not an error: the
// store's unique-slug constraint is the safety net against concurrent
// expansion runs racing on the same slug.
var ErrSlugExists = errors.New("engine: slug already exists")

// ShellStore is the persistence collaborator the Creator writes through.
// Implemented by the CMS service.
type ShellStore interface {
	// ExistingSlugs reports which of the given slugs are already persisted.
	ExistingSlugs(ctx context.Context, slugs []string) (map[string]bool, error)
	// CreateDraft persists a shell as a draft CMS record.
	CreateDraft(ctx context.Context, s Shell) error
}

// Result is the accounting of one blueprint expansion run. Created and
// Skipped are ordered by dimension product order, so repeated runs against
// the same state produce identical partitions.
type Result struct {
	BlueprintID  string   `json:"blueprint_id"`
	CreatedCount int      `json:"created_count"`
	SkippedCount int      `json:"skipped_count"`
	Created      []string `json:"created"`
	Skipped      []string `json:"skipped"`
	Errors       []string `json:"errors"`
}

// Creator expands blueprints and reconciles the generated shells against
// the persisted CMS state. Running an expansion twice with no external
// state change creates nothing on the second run.
type Creator struct {
	registry *Registry
	store    ShellStore
	logger   *slog.Logger
}

// NewCreator builds a Creator over the given registry and store.
func NewCreator(registry *Registry, store ShellStore, logger *slog.Logger) *Creator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Creator{registry: registry, store: store, logger: logger}
}

// ExpandBlueprint expands the named blueprint and creates every shell whose
// slug is not yet persisted. The existing-slug set is fetched once per run,
// not once per shell. Write failures are recorded per shell and never abort
// the batch.
func (c *Creator) ExpandBlueprint(ctx context.Context, blueprintID string) (*Result, error) {
	bp := c.registry.Get(blueprintID)
	if bp == nil {
		return nil, fmt.Errorf("engine: unknown blueprint %q", blueprintID)
	}
	return c.run(ctx, bp)
}

// ExpandAll expands every registered blueprint in registry order.
// A failing blueprint contributes a Result with its error recorded; the
// remaining blueprints still run.
func (c *Creator) ExpandAll(ctx context.Context) ([]*Result, error) {
	var results []*Result
	for _, bp := range c.registry.List() {
		res, err := c.run(ctx, bp)
		if err != nil {
			res = &Result{
				BlueprintID: bp.ID,
				Errors:      []string{err.Error()},
			}
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *Creator) run(ctx context.Context, bp *Blueprint) (*Result, error) {
	exp, err := Expand(bp)
	if err != nil {
		return nil, err
	}

	res := &Result{
		BlueprintID: bp.ID,
		Created:     []string{},
		Skipped:     []string{},
		Errors:      append([]string{}, exp.Errors...),
	}

	slugs := make([]string, len(exp.Shells))
	for i, s := range exp.Shells {
		slugs[i] = s.Slug
	}
	existing, err := c.store.ExistingSlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("engine: existing slugs for %q: %w", bp.ID, err)
	}

	for _, shell := range exp.Shells {
		if existing[shell.Slug] {
			res.Skipped = append(res.Skipped, shell.Slug)
			continue
		}
		if err := c.store.CreateDraft(ctx, shell); err != nil {
			if errors.Is(err, ErrSlugExists) {
				// Lost an insert race; the record exists, which is what we wanted.
				res.Skipped = append(res.Skipped, shell.Slug)
				continue
			}
			c.logger.Warn("engine: create shell failed", "blueprint", bp.ID, "slug", shell.Slug, "error", err)
			res.Errors = append(res.Errors, shell.Slug+": "+err.Error())
			continue
		}
		res.Created = append(res.Created, shell.Slug)
	}

	res.CreatedCount = len(res.Created)
	res.SkippedCount = len(res.Skipped)

	c.logger.Info("engine: expansion run",
		"blueprint", bp.ID, "created", res.CreatedCount, "skipped", res.SkippedCount, "errors", len(res.Errors))
	return res, nil
}
