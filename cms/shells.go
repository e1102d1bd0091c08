// CLAUDE:SUMMARY Engine integration — persists expanded shells as draft tool objects.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dimilowe/VCMStore-sub005/cms/internal/store"
	"github.com/dimilowe/VCMStore-sub005/engine"
)

// ExistingSlugs reports which of the given slugs already have a CMS
// object. The engine calls this once per blueprint run before writing.
func (s *Service) ExistingSlugs(ctx context.Context, slugs []string) (map[string]bool, error) {
	return s.store.ExistingSlugs(ctx, slugs)
}

// CreateDraft persists one expanded shell as a draft tool object. A slug
// collision is reported as engine.ErrSlugExists so the creator counts it
// as a skip rather than a failure.
func (s *Service) CreateDraft(ctx context.Context, shell engine.Shell) error {
	rules, err := json.Marshal(shell.LinkRules)
	if err != nil {
		return fmt.Errorf("cms: marshal link rules for %s: %w", shell.Slug, err)
	}

	obj := &store.Object{
		ID:            s.newID(),
		Slug:          shell.Slug,
		Type:          TypeTool,
		Title:         shell.Title,
		Keyword:       shell.Keyword,
		Description:   shell.Description,
		Status:        StatusDraft,
		ClusterSlug:   shell.ClusterSlug,
		EngineID:      shell.EngineID,
		Priority:      shell.Defaults.Priority,
		IsIndexed:     shell.Defaults.IsIndexed,
		InDirectory:   shell.Defaults.InDirectory,
		SearchIntent:  shell.Defaults.SearchIntent,
		LinkRulesJSON: string(rules),
	}

	if err := s.store.Insert(ctx, obj); err != nil {
		if errors.Is(err, store.ErrDuplicateSlug) {
			return fmt.Errorf("%w: %s", engine.ErrSlugExists, shell.Slug)
		}
		return err
	}
	return nil
}
