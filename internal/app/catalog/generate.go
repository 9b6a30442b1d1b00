package catalog

import (
	"github.com/projectdiscovery/fasttemplate"

	"dorkiq/internal/app/core"
)

// Generate walks the catalog in order and substitutes the domain into every
// template selected by the options. The domain must already be normalized and
// validated; Generate itself never fails and performs no I/O.
//
// A template is selected when its group matches the requested category (or
// the category is "all") and it is not advanced-only unless AdvancedMode is
// set. With IncludeSubdomains, site-scoped templates additionally emit a
// wildcard-subdomain variant directly after the base result.
func (c *Catalog) Generate(domain string, opts core.GenerateOptions) []core.DorkResult {
	category := opts.Category
	if category == "" {
		category = core.CategoryAll
	}

	results := make([]core.DorkResult, 0, len(c.templates))
	for _, t := range c.templates {
		if t.Advanced && !opts.AdvancedMode {
			continue
		}
		if category != core.CategoryAll && t.Group != category {
			continue
		}

		results = append(results, render(t, domain, "site:"+domain))
		if opts.IncludeSubdomains && t.HasSiteScope() {
			results = append(results, render(t, domain, "site:*."+domain))
		}
	}
	return results
}

func render(t core.DorkTemplate, domain, sitePrefix string) core.DorkResult {
	dork := fasttemplate.ExecuteString(t.Pattern, core.TagOpen, core.TagClose, map[string]interface{}{
		core.SiteVar:   sitePrefix,
		core.DomainVar: domain,
	})
	return core.DorkResult{
		Category: t.Category,
		Intent:   t.Intent,
		Name:     t.Name,
		Dork:     dork,
		OWASP:    t.OWASP,
		Notes:    t.Notes,
		Tags:     t.Tags,
	}
}
