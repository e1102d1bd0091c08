// CLAUDE:SUMMARY Immutable blueprint registry — constructed once at startup, lookup by id, list in registration order.
// Package engine is the programmatic page-generation core of the VCM suite.
//
// A Blueprint defines a cross-product space of named dimensions (platform ×
// asset × ...) together with slug/title/keyword templates, link rules and
// CMS defaults. Expanding a blueprint renders one Shell per dimension
// combination; the Creator reconciles the shells against the persisted CMS
// state and writes only the missing ones as drafts.
//
// Flows:
//
//	Expand:  registry supplies a blueprint → Expand renders every combo → shells
//	Create:  Creator fetches existing slugs once → creates missing shells as drafts
//	Report:  each run yields created/skipped/error partitions, stable across runs
//
// Usage:
//
//	reg, err := engine.NewRegistry(engine.Catalog()...)
//	creator := engine.NewCreator(reg, cmsService, logger)
//	result, err := creator.ExpandBlueprint(ctx, "thumbnail-analyzer")
package engine

import "fmt"

// Registry holds the registered blueprints. It is immutable after
// construction: no update or delete operation exists, and callers receive
// defensive copies of the list.
type Registry struct {
	byID  map[string]*Blueprint
	order []*Blueprint
}

// NewRegistry builds a Registry from the given blueprints. Registration
// order is preserved for List and ExpandAll. A duplicate blueprint id or a
// dimension with no values is a construction error.
func NewRegistry(bps ...*Blueprint) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Blueprint, len(bps))}
	for _, bp := range bps {
		if bp.ID == "" {
			return nil, fmt.Errorf("engine: blueprint with empty id")
		}
		if _, dup := r.byID[bp.ID]; dup {
			return nil, fmt.Errorf("engine: duplicate blueprint id %q", bp.ID)
		}
		for _, d := range bp.Dimensions {
			if len(d.Values) == 0 {
				return nil, fmt.Errorf("engine: blueprint %q dimension %q has no values", bp.ID, d.ID)
			}
		}
		if bp.ClusterResolver == nil {
			return nil, fmt.Errorf("engine: blueprint %q has no cluster resolver", bp.ID)
		}
		r.byID[bp.ID] = bp
		r.order = append(r.order, bp)
	}
	return r, nil
}

// Get returns the blueprint with the given id, or nil if unknown.
func (r *Registry) Get(id string) *Blueprint {
	return r.byID[id]
}

// List returns the blueprints in registration order.
func (r *Registry) List() []*Blueprint {
	out := make([]*Blueprint, len(r.order))
	copy(out, r.order)
	return out
}
