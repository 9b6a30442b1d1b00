// Package catalog holds the static, authored collection of dork templates and
// the generator that substitutes a target domain into them.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"dorkiq/internal/app/core"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// groupFiles fixes the catalog order; the generator preserves it in the
// output. The advanced set always loads last.
var groupFiles = []string{
	"sql", "xss", "lfi", "rfi", "auth", "admin", "config", "backup", "logs",
	"api", "ssrf", "redirect", "info", "sensitive_docs", "secrets", "cloud",
	"git", "directories", "headers", "advanced",
}

// templateFile is the YAML document shape of one catalog group. File-level
// group/category/intent are defaults; entries may override them.
type templateFile struct {
	Group    string          `yaml:"group"`
	Category string          `yaml:"category"`
	Intent   string          `yaml:"intent"`
	Advanced bool            `yaml:"advanced"`
	Dorks    []templateEntry `yaml:"dorks"`
}

type templateEntry struct {
	Name     string   `yaml:"name"`
	Pattern  string   `yaml:"pattern"`
	OWASP    string   `yaml:"owasp"`
	Notes    string   `yaml:"notes"`
	Tags     []string `yaml:"tags"`
	Group    string   `yaml:"group"`
	Category string   `yaml:"category"`
	Intent   string   `yaml:"intent"`
}

// Catalog is the loaded, validated template collection. Read-only after Load.
type Catalog struct {
	templates []core.DorkTemplate
}

// Load parses the embedded template files in catalog order and enforces the
// catalog invariants: category, intent, name, pattern and notes are non-empty
// and tags is never nil.
func Load() (*Catalog, error) {
	var templates []core.DorkTemplate

	for _, group := range groupFiles {
		path := "templates/" + group + ".yaml"
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", path, err)
		}

		var file templateFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
		}

		for i, entry := range file.Dorks {
			t := core.DorkTemplate{
				Group:    defaultString(entry.Group, file.Group),
				Category: defaultString(entry.Category, file.Category),
				Intent:   defaultString(entry.Intent, file.Intent),
				Name:     entry.Name,
				Pattern:  entry.Pattern,
				OWASP:    entry.OWASP,
				Notes:    entry.Notes,
				Tags:     entry.Tags,
				Advanced: file.Advanced,
			}
			if t.Tags == nil {
				t.Tags = []string{}
			}
			if err := validateTemplate(t); err != nil {
				return nil, fmt.Errorf("catalog file %s, entry %d (%s): %w", path, i, entry.Name, err)
			}
			templates = append(templates, t)
		}
	}

	return &Catalog{templates: templates}, nil
}

func validateTemplate(t core.DorkTemplate) error {
	switch {
	case t.Group == "":
		return fmt.Errorf("empty group")
	case t.Category == "":
		return fmt.Errorf("empty category")
	case t.Intent == "":
		return fmt.Errorf("empty intent category")
	case t.Name == "":
		return fmt.Errorf("empty name")
	case t.Pattern == "":
		return fmt.Errorf("empty pattern")
	case t.Notes == "":
		return fmt.Errorf("empty notes")
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// Templates returns the catalog entries in catalog order.
func (c *Catalog) Templates() []core.DorkTemplate {
	return c.templates
}

// Groups returns the distinct group keys in catalog order.
func (c *Catalog) Groups() []string {
	seen := make(map[string]struct{})
	var groups []string
	for _, t := range c.templates {
		if _, ok := seen[t.Group]; ok {
			continue
		}
		seen[t.Group] = struct{}{}
		groups = append(groups, t.Group)
	}
	return groups
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.templates)
}
