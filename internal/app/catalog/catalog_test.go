package catalog

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cat.Len() == 0 {
		t.Fatal("Load() returned an empty catalog")
	}

	for _, tmpl := range cat.Templates() {
		if tmpl.Group == "" || tmpl.Category == "" || tmpl.Intent == "" ||
			tmpl.Name == "" || tmpl.Pattern == "" || tmpl.Notes == "" {
			t.Errorf("template %q has empty required fields: %+v", tmpl.Name, tmpl)
		}
		if tmpl.Tags == nil {
			t.Errorf("template %q has nil tags", tmpl.Name)
		}
		if !strings.Contains(tmpl.Pattern, "{{site}}") && !strings.Contains(tmpl.Pattern, "{{domain}}") {
			t.Errorf("template %q pattern has no placeholder: %q", tmpl.Name, tmpl.Pattern)
		}
	}
}

func TestLoadSeverityValues(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	valid := map[string]bool{"Critical": true, "High": true, "Medium": true, "Low": true}
	for _, tmpl := range cat.Templates() {
		if !valid[tmpl.Category] {
			t.Errorf("template %q has unknown severity %q", tmpl.Name, tmpl.Category)
		}
	}
}

func TestGroupsOrder(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	groups := cat.Groups()
	if len(groups) == 0 {
		t.Fatal("Groups() returned nothing")
	}
	if groups[0] != "sql" {
		t.Errorf("Groups()[0] = %q, want %q", groups[0], "sql")
	}

	seen := make(map[string]int)
	for _, g := range groups {
		seen[g]++
	}
	for g, n := range seen {
		if n > 1 {
			t.Errorf("group %q appears %d times in Groups()", g, n)
		}
	}

	// Advanced-only groups are part of the listing too.
	found := false
	for _, g := range groups {
		if g == "osint" {
			found = true
		}
	}
	if !found {
		t.Errorf("Groups() = %v, missing advanced-only group %q", groups, "osint")
	}
}

func TestGroupsMatchTemplates(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	groups := make(map[string]bool)
	for _, g := range cat.Groups() {
		groups[g] = true
	}
	for _, tmpl := range cat.Templates() {
		if !groups[tmpl.Group] {
			t.Errorf("template %q group %q not listed by Groups()", tmpl.Name, tmpl.Group)
		}
	}
}
