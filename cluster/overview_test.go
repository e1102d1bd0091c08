package cluster

import (
	"context"
	"testing"
)

// fakeCMS implements CMSReader with fixed answers.
type fakeCMS struct {
	indexed   map[string]bool
	published map[string]bool
}

func (f *fakeCMS) IsToolIndexed(_ context.Context, slug string) (bool, error) {
	return f.indexed[slug], nil
}

func (f *fakeCMS) CountPublishedArticles(_ context.Context, slugs []string) (int, error) {
	n := 0
	for _, s := range slugs {
		if f.published[s] {
			n++
		}
	}
	return n, nil
}

func TestOverview_AllClusters(t *testing.T) {
	svc := NewService(&fakeCMS{indexed: map[string]bool{}, published: map[string]bool{}}, nil)

	out, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(out) != len(All()) {
		t.Fatalf("overview: got %d clusters, want %d", len(out), len(All()))
	}
	for i, ov := range out {
		if ov.Cluster.ID != All()[i].ID {
			t.Errorf("overview[%d]: got %q, want registry order %q", i, ov.Cluster.ID, All()[i].ID)
		}
		if ov.Health.Status == "" {
			t.Errorf("overview[%d]: empty status", i)
		}
	}
}

func TestClusterOverview_JoinsLiveState(t *testing.T) {
	cms := &fakeCMS{
		indexed: map[string]bool{
			"youtube-thumbnail-analyzer":       true,
			"youtube-banner-analyzer":          true,
			"youtube-profile-picture-analyzer": true,
			"youtube-ai-caption-generator":     true,
		},
		published: map[string]bool{
			"youtube-thumbnail-best-practices": true,
			"youtube-ctr-guide":                true,
			"youtube-banner-dimensions":        true,
			"youtube-channel-branding":         true,
		},
	}
	svc := NewService(cms, nil)

	ov, err := svc.ClusterOverview(context.Background(), "youtube-creator-tools")
	if err != nil {
		t.Fatalf("cluster overview: %v", err)
	}
	// 5 tools / 4 indexed → 20; 4/4 published → 25; interlink 25; pillar 25.
	if ov.Health.Total != 95 {
		t.Errorf("total: got %d, want 95", ov.Health.Total)
	}
	if ov.Health.Status != StatusReady {
		t.Errorf("status: got %q, want ready", ov.Health.Status)
	}
}

func TestClusterOverview_Unknown(t *testing.T) {
	svc := NewService(&fakeCMS{}, nil)
	if _, err := svc.ClusterOverview(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown cluster")
	}
}

func TestRegistry_Lookups(t *testing.T) {
	if Get("youtube-creator-tools") == nil {
		t.Error("Get: known cluster missing")
	}
	if Get("nope") != nil {
		t.Error("Get: unknown cluster should be nil")
	}
	if ByPillarSlug("instagram-growth-tools") == nil {
		t.Error("ByPillarSlug: known pillar missing")
	}
}
