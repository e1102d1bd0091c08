// CLAUDE:SUMMARY Token template rendering — {dim} substitutes the value id, {dim_label} the human label; unresolved tokens are errors.
package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var tokenRe = regexp.MustCompile(`\{([a-zA-Z0-9_-]+)\}`)

// RenderTemplate substitutes combo values into a token template.
// Two token flavors exist: {dim} is replaced by the value id (machine
// form) and {dim_label} by the value label (human-readable form), so copy
// can read "YouTube Thumbnail Analyzer" while the slug stays
// "youtube-thumbnail-analyzer".
//
// Tokens left unresolved after substitution are a validation failure: the
// returned error names every one of them.
func RenderTemplate(tmpl string, combo Combo) (string, error) {
	out := tmpl
	for dimID, val := range combo {
		out = strings.ReplaceAll(out, "{"+dimID+"_label}", val.Label)
		out = strings.ReplaceAll(out, "{"+dimID+"}", val.ID)
	}

	if m := tokenRe.FindAllStringSubmatch(out, -1); len(m) > 0 {
		tokens := make([]string, 0, len(m))
		seen := make(map[string]bool, len(m))
		for _, g := range m {
			if !seen[g[1]] {
				seen[g[1]] = true
				tokens = append(tokens, g[1])
			}
		}
		sort.Strings(tokens)
		return "", fmt.Errorf("unresolved tokens: %s", strings.Join(tokens, ", "))
	}
	return out, nil
}

// ResolveValue resolves a raw string against a dimension's values, matching
// the value id, the label (case-insensitive), and any declared variation.
func ResolveValue(dim Dimension, raw string) (DimensionValue, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	for _, v := range dim.Values {
		if needle == strings.ToLower(v.ID) || needle == strings.ToLower(v.Label) {
			return v, true
		}
		for _, alt := range v.Variations {
			if needle == strings.ToLower(alt) {
				return v, true
			}
		}
	}
	return DimensionValue{}, false
}
