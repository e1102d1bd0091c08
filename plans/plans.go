// CLAUDE:SUMMARY Static subscription tier catalog — features and quotas per plan, read-only at runtime.
// Package plans holds the subscription tier catalog. Tiers gate admin
// features like bulk import and set per-run quotas; the catalog is
// static and read-only at runtime.
package plans

// Feature names gated by tier.
const (
	FeatureAIGeneration = "ai_generation"
	FeatureCSVExport    = "csv_export"
	FeatureBulkImport   = "bulk_import"
)

// Tier IDs. FreeTier is the default for accounts with no plan claim.
const (
	FreeTier   = "free"
	ProTier    = "pro"
	AgencyTier = "agency"
)

// Plan is one subscription tier.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Features      []string `json:"features"`
	MaxBulkItems  int      `json:"maxBulkItems"`
	MaxExpansions int      `json:"maxExpansionsPerDay"`
	PriceCentsMo  int      `json:"priceCentsMonthly"`
}

var catalog = []Plan{
	{
		ID:            FreeTier,
		Name:          "Free",
		Features:      []string{},
		MaxBulkItems:  0,
		MaxExpansions: 1,
	},
	{
		ID:            ProTier,
		Name:          "Pro",
		Features:      []string{FeatureAIGeneration, FeatureCSVExport, FeatureBulkImport},
		MaxBulkItems:  200,
		MaxExpansions: 20,
		PriceCentsMo:  2900,
	},
	{
		ID:            AgencyTier,
		Name:          "Agency",
		Features:      []string{FeatureAIGeneration, FeatureCSVExport, FeatureBulkImport},
		MaxBulkItems:  2000,
		MaxExpansions: 200,
		PriceCentsMo:  9900,
	},
}

// Tier returns the plan for id. Unknown or empty ids resolve to the free
// tier so a missing claim never grants paid features.
func Tier(id string) Plan {
	for _, p := range catalog {
		if p.ID == id {
			return p
		}
	}
	return catalog[0]
}

// All returns every tier in display order.
func All() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// Allows reports whether the given tier includes a feature.
func Allows(tierID, feature string) bool {
	for _, f := range Tier(tierID).Features {
		if f == feature {
			return true
		}
	}
	return false
}
