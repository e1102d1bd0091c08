// CLAUDE:SUMMARY Cartesian expansion — full dimension product in declaration order, per-combo shell rendering with validation.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Expansion is the outcome of expanding one blueprint: the valid shells in
// product order plus the per-combo validation failures. Shell slugs are not
// guaranteed globally unique here — two blueprints can template the same
// slug; uniqueness is enforced by the Creator against the persisted store.
type Expansion struct {
	Shells []Shell
	Errors []string
}

// Expand computes the full Cartesian product of the blueprint's dimensions
// in declaration order and renders one shell per combination. A blueprint
// with zero dimensions yields exactly one shell (the templates with no
// substitutions).
//
// Rendering failures (unresolved template tokens, a resolver returning an
// empty cluster) are recorded per combo in Expansion.Errors and never abort
// the run: every remaining combo is still processed.
func Expand(bp *Blueprint) (*Expansion, error) {
	for _, d := range bp.Dimensions {
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("engine: blueprint %q dimension %q has no values", bp.ID, d.ID)
		}
	}

	exp := &Expansion{}
	idx := make([]int, len(bp.Dimensions))
	for {
		combo := make(Combo, len(bp.Dimensions))
		for i, d := range bp.Dimensions {
			combo[d.ID] = d.Values[idx[i]]
		}

		shell, err := renderShell(bp, combo)
		if err != nil {
			exp.Errors = append(exp.Errors, fmt.Sprintf("combo %s: %v", comboKey(combo), err))
		} else {
			exp.Shells = append(exp.Shells, shell)
		}

		// Odometer increment: last dimension varies fastest.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(bp.Dimensions[i].Values) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return exp, nil
}

func renderShell(bp *Blueprint, combo Combo) (Shell, error) {
	var slug string
	var err error
	if bp.SlugPattern.Transform != nil {
		parts := make(map[string]string, len(combo))
		for dimID, v := range combo {
			parts[dimID] = v.ID
		}
		slug = bp.SlugPattern.Transform(parts)
		if slug == "" {
			return Shell{}, fmt.Errorf("slug transform returned empty slug")
		}
	} else {
		slug, err = RenderTemplate(bp.SlugPattern.Template, combo)
		if err != nil {
			return Shell{}, fmt.Errorf("slug: %w", err)
		}
	}

	title, err := RenderTemplate(bp.TitlePattern, combo)
	if err != nil {
		return Shell{}, fmt.Errorf("title: %w", err)
	}
	keyword, err := RenderTemplate(bp.KeywordPattern, combo)
	if err != nil {
		return Shell{}, fmt.Errorf("keyword: %w", err)
	}
	description, err := RenderTemplate(bp.DescriptionPattern, combo)
	if err != nil {
		return Shell{}, fmt.Errorf("description: %w", err)
	}

	clusterSlug := bp.ClusterResolver(combo)
	if clusterSlug == "" {
		return Shell{}, fmt.Errorf("cluster resolver returned no cluster")
	}

	return Shell{
		Slug:        slug,
		Title:       title,
		Keyword:     keyword,
		Description: description,
		ClusterSlug: clusterSlug,
		EngineID:    bp.EngineID,
		LinkRules:   bp.LinkRules,
		Defaults:    bp.Defaults,
	}, nil
}

func comboKey(combo Combo) string {
	parts := make([]string, 0, len(combo))
	for dimID, v := range combo {
		parts = append(parts, dimID+"="+v.ID)
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
