// CLAUDE:SUMMARY Admin overview service — joins the cluster registry with live CMS state into per-cluster health reports.
package cluster

import (
	"context"
	"fmt"
	"log/slog"
)

// CMSReader is the read-side collaborator the overview joins the registry
// against. Implemented by the CMS service.
type CMSReader interface {
	// IsToolIndexed reports whether the tool slug carries the indexed
	// rollout flag.
	IsToolIndexed(ctx context.Context, slug string) (bool, error)
	// CountPublishedArticles counts published articles among the given slugs.
	CountPublishedArticles(ctx context.Context, slugs []string) (int, error)
}

// Overview is one cluster's health as served by the admin console.
type Overview struct {
	Cluster TopicCluster `json:"cluster"`
	Health  HealthScore  `json:"health"`
}

// Service produces admin-facing cluster health reports. Read-only: scores
// are recomputed on every call and never persisted.
type Service struct {
	cms    CMSReader
	logger *slog.Logger
}

// NewService builds an overview Service over the CMS reader.
func NewService(cms CMSReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cms: cms, logger: logger}
}

// Overview returns the health of every registered cluster, in registry order.
func (s *Service) Overview(ctx context.Context) ([]Overview, error) {
	clusters := All()
	out := make([]Overview, 0, len(clusters))
	for i := range clusters {
		ov, err := s.one(ctx, &clusters[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *ov)
	}
	return out, nil
}

// ClusterOverview returns the health of a single cluster.
func (s *Service) ClusterOverview(ctx context.Context, id string) (*Overview, error) {
	c := Get(id)
	if c == nil {
		return nil, fmt.Errorf("cluster: unknown cluster %q", id)
	}
	return s.one(ctx, c)
}

func (s *Service) one(ctx context.Context, c *TopicCluster) (*Overview, error) {
	indexed := 0
	for _, slug := range c.ToolSlugs {
		ok, err := s.cms.IsToolIndexed(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("cluster: tool indexed %q: %w", slug, err)
		}
		if ok {
			indexed++
		}
	}

	published, err := s.cms.CountPublishedArticles(ctx, c.ArticleSlugs)
	if err != nil {
		return nil, fmt.Errorf("cluster: published articles for %q: %w", c.ID, err)
	}

	health := CalculateHealth(c, HealthInputs{IndexedTools: indexed, PublishedArticles: published})
	return &Overview{Cluster: *c, Health: health}, nil
}
