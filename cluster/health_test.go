package cluster

import (
	"strings"
	"testing"
)

func clusterWith(tools, articles int) *TopicCluster {
	c := &TopicCluster{ID: "test"}
	for i := 0; i < tools; i++ {
		c.ToolSlugs = append(c.ToolSlugs, "tool")
	}
	for i := 0; i < articles; i++ {
		c.ArticleSlugs = append(c.ArticleSlugs, "article")
	}
	return c
}

func TestCalculateHealth_Ready(t *testing.T) {
	// 5 tools / 4 indexed, 4 articles planned / 4 published:
	// pillar 25 + tools floor(4/5*25)=20 + articles 25 + interlink 25 = 95.
	c := clusterWith(5, 4)
	h := CalculateHealth(c, HealthInputs{IndexedTools: 4, PublishedArticles: 4})

	if h.Breakdown.ToolsScore != 20 {
		t.Errorf("tools score: got %d, want 20", h.Breakdown.ToolsScore)
	}
	if h.Breakdown.ArticlesScore != 25 {
		t.Errorf("articles score: got %d, want 25", h.Breakdown.ArticlesScore)
	}
	if h.Breakdown.InterlinkScore != 25 {
		t.Errorf("interlink score: got %d, want 25", h.Breakdown.InterlinkScore)
	}
	if h.Total != 95 {
		t.Errorf("total: got %d, want 95", h.Total)
	}
	if len(h.Issues) != 0 {
		t.Errorf("issues: got %v, want none", h.Issues)
	}
	if h.Status != StatusReady {
		t.Errorf("status: got %q, want ready", h.Status)
	}
}

func TestCalculateHealth_NoTools(t *testing.T) {
	c := clusterWith(0, 4)
	h := CalculateHealth(c, HealthInputs{PublishedArticles: 4})

	if h.Breakdown.ToolsScore != 0 {
		t.Errorf("tools score: got %d, want 0", h.Breakdown.ToolsScore)
	}
	found := false
	for _, issue := range h.Issues {
		if issue == "No tools in cluster" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing 'No tools in cluster' issue: %v", h.Issues)
	}
	// Issues present: ready is impossible regardless of total.
	if h.Status == StatusReady {
		t.Error("cluster with issues can never be ready")
	}
}

func TestCalculateHealth_FewTools(t *testing.T) {
	c := clusterWith(2, 3)
	h := CalculateHealth(c, HealthInputs{IndexedTools: 2, PublishedArticles: 3})

	if h.Breakdown.ToolsScore != 10 {
		t.Errorf("tools score for <3 tools: got %d, want flat 10", h.Breakdown.ToolsScore)
	}
	hasCountIssue := false
	for _, issue := range h.Issues {
		if strings.Contains(issue, "2 tools") {
			hasCountIssue = true
		}
	}
	if !hasCountIssue {
		t.Errorf("few-tools issue must note the count: %v", h.Issues)
	}
}

func TestCalculateHealth_Articles(t *testing.T) {
	cases := []struct {
		planned, published int
		wantScore          int
		wantIssue          string
	}{
		{0, 0, 0, "No articles planned"},
		{4, 0, 0, "0/4 articles published"},
		{4, 1, 8, "Only 1 articles published"},  // floor(1/3*25)
		{4, 2, 16, "Only 2 articles published"}, // floor(2/3*25)
		{4, 3, 25, ""},
		{4, 4, 25, ""},
	}
	for _, tc := range cases {
		c := clusterWith(5, tc.planned)
		h := CalculateHealth(c, HealthInputs{IndexedTools: 5, PublishedArticles: tc.published})
		if h.Breakdown.ArticlesScore != tc.wantScore {
			t.Errorf("planned=%d published=%d: articles score got %d, want %d",
				tc.planned, tc.published, h.Breakdown.ArticlesScore, tc.wantScore)
		}
		if tc.wantIssue != "" {
			found := false
			for _, issue := range h.Issues {
				if strings.Contains(issue, tc.wantIssue) {
					found = true
				}
			}
			if !found {
				t.Errorf("planned=%d published=%d: missing issue %q in %v",
					tc.planned, tc.published, tc.wantIssue, h.Issues)
			}
		}
	}
}

func TestCalculateHealth_InterlinkDeductionsStack(t *testing.T) {
	// 1 tool (<2 → −15) and 0 published (<1 → −10): interlink bottoms at 0.
	c := clusterWith(1, 2)
	h := CalculateHealth(c, HealthInputs{})

	if h.Breakdown.InterlinkScore != 0 {
		t.Errorf("interlink: got %d, want 0 (both deductions stack)", h.Breakdown.InterlinkScore)
	}
	// Only the tools branch emits an issue; the article deduction is silent.
	for _, issue := range h.Issues {
		if strings.Contains(strings.ToLower(issue), "interlink") && !strings.Contains(issue, "tools") {
			t.Errorf("article interlink deduction must not emit an issue: %v", h.Issues)
		}
	}
}

func TestCalculateHealth_Bounds(t *testing.T) {
	for tools := 0; tools <= 6; tools++ {
		for indexed := 0; indexed <= tools; indexed++ {
			for planned := 0; planned <= 5; planned++ {
				for published := 0; published <= planned; published++ {
					c := clusterWith(tools, planned)
					h := CalculateHealth(c, HealthInputs{IndexedTools: indexed, PublishedArticles: published})
					if h.Total < 0 || h.Total > 100 {
						t.Fatalf("total out of bounds: %d (tools=%d indexed=%d planned=%d published=%d)",
							h.Total, tools, indexed, planned, published)
					}
				}
			}
		}
	}
}

func TestCalculateHealth_ArticleMonotonicity(t *testing.T) {
	// Increasing published count while holding inputs fixed never
	// decreases the articles score.
	c := clusterWith(5, 5)
	prev := -1
	for published := 0; published <= 5; published++ {
		h := CalculateHealth(c, HealthInputs{IndexedTools: 5, PublishedArticles: published})
		if h.Breakdown.ArticlesScore < prev {
			t.Fatalf("articles score decreased at published=%d: %d < %d",
				published, h.Breakdown.ArticlesScore, prev)
		}
		prev = h.Breakdown.ArticlesScore
	}
}

func TestCalculateHealth_StatusThresholds(t *testing.T) {
	// Score ≥80 but with issues → needs-work, not ready.
	c := clusterWith(5, 4)
	h := CalculateHealth(c, HealthInputs{IndexedTools: 5, PublishedArticles: 2})
	// pillar 25 + tools 25 + articles 16 + interlink 25 = 91, with an issue.
	if h.Total < 80 {
		t.Fatalf("setup: total %d", h.Total)
	}
	if len(h.Issues) == 0 {
		t.Fatal("setup: expected an issue")
	}
	if h.Status != StatusNeedsWork {
		t.Errorf("status: got %q, want needs-work (issues block ready)", h.Status)
	}
}
