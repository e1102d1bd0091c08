package engine

import (
	"strings"
	"testing"
)

func TestRenderTemplate_BothFlavors(t *testing.T) {
	combo := Combo{
		"platform": {ID: "youtube", Label: "YouTube"},
		"asset":    {ID: "thumbnail", Label: "Thumbnail"},
	}

	slug, err := RenderTemplate("{platform}-{asset}-analyzer", combo)
	if err != nil {
		t.Fatalf("slug render: %v", err)
	}
	if slug != "youtube-thumbnail-analyzer" {
		t.Errorf("slug: got %q", slug)
	}

	title, err := RenderTemplate("{platform_label} {asset_label} Analyzer", combo)
	if err != nil {
		t.Fatalf("title render: %v", err)
	}
	if title != "YouTube Thumbnail Analyzer" {
		t.Errorf("title: got %q", title)
	}
}

func TestRenderTemplate_NoTokens(t *testing.T) {
	out, err := RenderTemplate("static-page", Combo{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "static-page" {
		t.Errorf("got %q", out)
	}
}

func TestRenderTemplate_UnresolvedTokens(t *testing.T) {
	combo := Combo{"platform": {ID: "youtube", Label: "YouTube"}}

	_, err := RenderTemplate("{platform}-{missing}-{also_missing}", combo)
	if err == nil {
		t.Fatal("expected error for unresolved tokens")
	}
	// The error must name every unresolved token.
	if !strings.Contains(err.Error(), "missing") || !strings.Contains(err.Error(), "also_missing") {
		t.Errorf("error should list all unresolved tokens: %v", err)
	}
}

func TestResolveValue(t *testing.T) {
	dim := Dimension{
		ID: "platform",
		Values: []DimensionValue{
			{ID: "youtube", Label: "YouTube", Variations: []string{"yt"}},
			{ID: "instagram", Label: "Instagram", Variations: []string{"ig", "insta"}},
		},
	}

	cases := []struct {
		raw    string
		wantID string
		ok     bool
	}{
		{"youtube", "youtube", true},
		{"YouTube", "youtube", true}, // label, case-insensitive
		{"yt", "youtube", true},      // variation
		{"insta", "instagram", true},
		{" IG ", "instagram", true}, // trimmed
		{"twitch", "", false},
	}
	for _, c := range cases {
		v, ok := ResolveValue(dim, c.raw)
		if ok != c.ok {
			t.Errorf("ResolveValue(%q): ok %v, want %v", c.raw, ok, c.ok)
			continue
		}
		if ok && v.ID != c.wantID {
			t.Errorf("ResolveValue(%q): got %q, want %q", c.raw, v.ID, c.wantID)
		}
	}
}
