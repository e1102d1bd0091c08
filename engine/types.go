// CLAUDE:SUMMARY Core types for the blueprint expansion engine — dimensions, combos, blueprints, generated shells.
package engine

// DimensionValue is one enumerated value of a dimension.
// Variations are alternate spellings accepted when resolving a raw string
// back to this value (e.g. "yt" for "youtube"). They are not required to
// be unique across dimensions.
type DimensionValue struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Variations []string `json:"variations,omitempty"`
}

// Dimension is a named axis of the expansion space with its enumerated values.
type Dimension struct {
	ID     string           `json:"id"`
	Label  string           `json:"label"`
	Values []DimensionValue `json:"values"`
}

// Combo is one concrete assignment of one value per dimension, keyed by
// dimension id. Combos are ephemeral: produced by Expand, consumed
// immediately to render a shell, never persisted.
type Combo map[string]DimensionValue

// SlugPattern describes how a combo becomes a slug. When Transform is set
// it takes precedence over Template: it receives a flat map of dimension id
// to value id and returns the final slug, which allows custom joins the
// token template cannot express.
type SlugPattern struct {
	Template  string
	Transform func(parts map[string]string) string
}

// LinkRules describes the internal-link graph attached to every shell a
// blueprint generates.
type LinkRules struct {
	SiblingsPerTool int      `json:"siblings_per_tool"`
	ArticlesPerTool int      `json:"articles_per_tool"`
	PillarSlug      string   `json:"pillar_slug,omitempty"`
	DefaultCTAs     []string `json:"default_ctas,omitempty"`
}

// Defaults holds the CMS metadata every shell of a blueprint starts with.
type Defaults struct {
	Priority     int    `json:"priority"`
	IsIndexed    bool   `json:"is_indexed"`
	InDirectory  bool   `json:"in_directory"`
	SearchIntent string `json:"search_intent"`
}

// Blueprint is a registered generation recipe: templates, dimensions, link
// rules and defaults. Blueprints are registered at startup and immutable
// thereafter.
type Blueprint struct {
	ID                 string
	EngineID           string
	Name               string
	Description        string
	Segment            string
	SlugPattern        SlugPattern
	TitlePattern       string
	KeywordPattern     string
	DescriptionPattern string
	Dimensions         []Dimension

	// ClusterResolver maps a combo to a topic cluster slug. Resolvers must
	// supply a default branch: an empty result is a validation failure on
	// the shell, never silently coerced.
	ClusterResolver func(Combo) string

	LinkRules  LinkRules
	Defaults   Defaults
	InputType  string
	OutputType string
}

// ProductSize returns the number of shells Expand will generate: the
// product of the dimension sizes, or 1 for a blueprint with no dimensions.
func (bp *Blueprint) ProductSize() int {
	n := 1
	for _, d := range bp.Dimensions {
		n *= len(d.Values)
	}
	return n
}

// Shell is a generated tool-page candidate in pre-persistence form.
// Computed fresh on every expansion run; the CMS store owns the persisted
// form after creation.
type Shell struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	ClusterSlug string    `json:"cluster_slug"`
	EngineID    string    `json:"engine_id"`
	LinkRules   LinkRules `json:"link_rules"`
	Defaults    Defaults  `json:"defaults"`
}
