// CLAUDE:SUMMARY Pure cluster health scoring — weighted 0–100 breakdown, categorized issues, ready/needs-work/incomplete status.
package cluster

import "fmt"

// Health statuses.
const (
	StatusReady      = "ready"
	StatusNeedsWork  = "needs-work"
	StatusIncomplete = "incomplete"
)

// HealthInputs carries the live state the scorer measures the cluster's
// declared slugs against.
type HealthInputs struct {
	// IndexedTools is how many of the cluster's declared tool slugs are
	// currently indexed (rollout flag on the CMS object).
	IndexedTools int
	// PublishedArticles is how many of the cluster's declared article
	// slugs are published.
	PublishedArticles int
}

// HealthBreakdown shows the four sub-scores, each capped at 25.
type HealthBreakdown struct {
	PillarScore    int `json:"pillar_score"`
	ToolsScore     int `json:"tools_score"`
	ArticlesScore  int `json:"articles_score"`
	InterlinkScore int `json:"interlink_score"`
}

// HealthScore is the derived health of one cluster. Recomputed on every
// read; never persisted.
type HealthScore struct {
	Total     int             `json:"total"`
	Breakdown HealthBreakdown `json:"breakdown"`
	Issues    []string        `json:"issues"`
	Status    string          `json:"status"`
}

// CalculateHealth computes the weighted 0–100 health of a cluster from its
// declared slugs and the supplied live counts. Pure function, no I/O.
//
// The pillar's 25 points are awarded unconditionally: this function does
// not inspect the pillar page itself. The total stays additive with no
// clamp — the component maximums already bound it to 100, and a clamp
// would mask a future component bug instead of surfacing it.
func CalculateHealth(c *TopicCluster, in HealthInputs) HealthScore {
	issues := []string{}

	pillarScore := 25

	toolsInCluster := len(c.ToolSlugs)
	var toolsScore int
	switch {
	case toolsInCluster == 0:
		toolsScore = 0
		issues = append(issues, "No tools in cluster")
	case toolsInCluster < 3:
		toolsScore = 10
		issues = append(issues, fmt.Sprintf("Only %d tools in cluster (3+ recommended)", toolsInCluster))
	default:
		// Low ratios communicate themselves through the score alone.
		toolsScore = in.IndexedTools * 25 / toolsInCluster
	}

	planned := len(c.ArticleSlugs)
	published := in.PublishedArticles
	var articlesScore int
	switch {
	case planned == 0:
		articlesScore = 0
		issues = append(issues, "No articles planned for cluster")
	case published == 0:
		articlesScore = 0
		issues = append(issues, fmt.Sprintf("0/%d articles published", planned))
	case published < 3:
		articlesScore = published * 25 / 3
		issues = append(issues, fmt.Sprintf("Only %d articles published", published))
	default:
		articlesScore = 25
	}

	// The two interlink deductions stack and can reach 0. Only the
	// tools-insufficient branch emits an issue; the article deduction is
	// silent. The asymmetry matches the shipped scoring behavior.
	interlinkScore := 25
	if toolsInCluster < 2 {
		interlinkScore -= 15
		issues = append(issues, "Not enough tools for interlinking")
	}
	if published < 1 {
		interlinkScore -= 10
	}

	total := pillarScore + toolsScore + articlesScore + interlinkScore

	status := StatusIncomplete
	switch {
	case total >= 80 && len(issues) == 0:
		status = StatusReady
	case total >= 50:
		status = StatusNeedsWork
	}

	return HealthScore{
		Total: total,
		Breakdown: HealthBreakdown{
			PillarScore:    pillarScore,
			ToolsScore:     toolsScore,
			ArticlesScore:  articlesScore,
			InterlinkScore: interlinkScore,
		},
		Issues: issues,
		Status: status,
	}
}
