// CLAUDE:SUMMARY Bulk import — validate, sanitize, derive plain text, upsert; bad items never abort the batch.
package cms

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dimilowe/VCMStore-sub005/cms/internal/store"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validTypes = map[string]bool{
	TypeTool:    true,
	TypeArticle: true,
	TypePillar:  true,
	TypeProduct: true,
}

// ImportItem is one inbound content payload.
type ImportItem struct {
	Slug         string `json:"slug"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Keyword      string `json:"keyword"`
	Description  string `json:"description"`
	BodyHTML     string `json:"bodyHtml"`
	Status       string `json:"status"`
	ClusterSlug  string `json:"clusterSlug"`
	Priority     int    `json:"priority"`
	InDirectory  bool   `json:"inDirectory"`
	SearchIntent string `json:"searchIntent"`
}

// ImportReport accounts for every item of a bulk import.
type ImportReport struct {
	CreatedCount int      `json:"createdCount"`
	UpdatedCount int      `json:"updatedCount"`
	Created      []string `json:"created"`
	Updated      []string `json:"updated"`
	Errors       []string `json:"errors"`
}

// BulkImport processes items in order. Each item either creates a new
// object, updates the one at its slug, or records an error; the batch
// always runs to completion.
func (s *Service) BulkImport(ctx context.Context, items []ImportItem) (*ImportReport, error) {
	report := &ImportReport{}
	sanitizer := bluemonday.UGCPolicy()
	conv := converter.NewConverter(converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	))

	for i, item := range items {
		if err := validateItem(item); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("item %d (%s): %v", i, item.Slug, err))
			continue
		}

		bodyHTML := sanitizer.Sanitize(item.BodyHTML)
		bodyText := ""
		if bodyHTML != "" {
			md, err := conv.ConvertString(bodyHTML)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("item %d (%s): convert body: %v", i, item.Slug, err))
				continue
			}
			bodyText = strings.TrimSpace(md)
		}
		words := len(strings.Fields(bodyText))

		status := item.Status
		if status == "" {
			status = StatusDraft
		}

		obj := &store.Object{
			Slug:          item.Slug,
			Type:          item.Type,
			Title:         item.Title,
			Keyword:       item.Keyword,
			Description:   item.Description,
			BodyHTML:      bodyHTML,
			BodyText:      bodyText,
			WordCount:     words,
			ContentHealth: contentHealth(words, item),
			Status:        status,
			ClusterSlug:   item.ClusterSlug,
			Priority:      item.Priority,
			InDirectory:   item.InDirectory,
			SearchIntent:  item.SearchIntent,
		}

		existing, err := s.store.GetBySlug(ctx, item.Slug)
		if err != nil {
			report.Errors = append(report.Errors, storeError(i, item.Slug))
			s.logger.Error("cms: import lookup failed", "slug", item.Slug, "error", err)
			continue
		}
		if existing != nil {
			obj.ID = existing.ID
			obj.EngineID = existing.EngineID
			obj.IsIndexed = existing.IsIndexed
			obj.LinkRulesJSON = existing.LinkRulesJSON
			obj.CreatedAt = existing.CreatedAt
			if err := s.store.Update(ctx, obj); err != nil {
				report.Errors = append(report.Errors, storeError(i, item.Slug))
				s.logger.Error("cms: import update failed", "slug", item.Slug, "error", err)
				continue
			}
			report.UpdatedCount++
			report.Updated = append(report.Updated, item.Slug)
			continue
		}

		obj.ID = s.newID()
		if err := s.store.Insert(ctx, obj); err != nil {
			report.Errors = append(report.Errors, storeError(i, item.Slug))
			s.logger.Error("cms: import insert failed", "slug", item.Slug, "error", err)
			continue
		}
		report.CreatedCount++
		report.Created = append(report.Created, item.Slug)
	}

	s.logger.Info("cms: bulk import finished",
		"items", len(items),
		"created", report.CreatedCount,
		"updated", report.UpdatedCount,
		"errors", len(report.Errors))
	return report, nil
}

// storeError is the report entry for a failed database operation. The
// underlying error goes to the log only; callers see a generic message.
func storeError(i int, slug string) string {
	return fmt.Sprintf("item %d (%s): Database error", i, slug)
}

func validateItem(item ImportItem) error {
	if item.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugRe.MatchString(item.Slug) {
		return fmt.Errorf("invalid slug %q: lowercase letters, digits and hyphens only", item.Slug)
	}
	if item.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validTypes[item.Type] {
		return fmt.Errorf("unknown type %q", item.Type)
	}
	if item.Status != "" && item.Status != StatusDraft && item.Status != StatusPublished {
		return fmt.Errorf("unknown status %q", item.Status)
	}
	return nil
}

// contentHealth scores a page 0-100 from the signals the editor cares
// about: body length, a meta description, and a target keyword.
func contentHealth(words int, item ImportItem) int {
	score := words * 50 / 600
	if score > 50 {
		score = 50
	}
	if item.Description != "" {
		score += 20
	}
	if item.Keyword != "" {
		score += 15
	}
	if item.BodyHTML != "" {
		score += 15
	}
	return score
}
