package core

// Severity labels used by the catalog.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// CategoryAll selects every catalog group.
const CategoryAll = "all"

// DorkTemplate is one authored catalog entry. Pattern carries {{site}} and
// {{domain}} placeholders that are substituted at generation time.
type DorkTemplate struct {
	Group    string
	Category string
	Intent   string
	Name     string
	Pattern  string
	OWASP    string
	Notes    string
	Tags     []string
	Advanced bool
}

// HasSiteScope reports whether the pattern is scoped to the target site and
// therefore defines a wildcard-subdomain variant. Patterns anchored to
// external sites (pastebin, S3, ...) only reference the bare domain.
func (t DorkTemplate) HasSiteScope() bool {
	return containsSiteTag(t.Pattern)
}

// DorkResult is a template with its placeholders substituted. Immutable once
// produced; it only lives in the HTTP response or CLI output.
type DorkResult struct {
	Category string   `json:"category"`
	Intent   string   `json:"intent_category"`
	Name     string   `json:"name"`
	Dork     string   `json:"dork"`
	OWASP    string   `json:"owasp"`
	Notes    string   `json:"notes"`
	Tags     []string `json:"tags"`
}

// GenerateOptions are the per-request knobs of the generator.
type GenerateOptions struct {
	IncludeSubdomains bool
	Category          string
	AdvancedMode      bool
}

// Config holds the CLI flags and runtime settings, carried through the app
// the same way on every code path.
type Config struct {
	Target            string
	Category          string
	AdvancedMode      bool
	IncludeSubdomains bool
	TechDetect        bool
	Proxy             string
	Insecure          bool
	JSONOutput        bool
	OutputPath        string
	ListenAddr        string
	ConfigPath        string
	Verbose           bool
	NoColors          bool
}
