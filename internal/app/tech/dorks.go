package tech

import (
	"fmt"
	"strings"

	"dorkiq/internal/app/core"
)

// DorkResults expands detected technologies into extra dork results for the
// target. Unknown technologies are skipped; the catalog already covers the
// generic ground.
func DorkResults(domain string, detected []DetectionResult) []core.DorkResult {
	var results []core.DorkResult

	for _, tech := range detected {
		techLower := strings.ToLower(tech.Technology)

		switch {
		case strings.Contains(techLower, "wordpress"):
			results = append(results,
				techDork(tech, "WordPress REST Users", fmt.Sprintf("site:%s inurl:wp-json/wp/v2/users", domain), "Usernames leaked through the REST API"),
				techDork(tech, "WordPress Debug Log", fmt.Sprintf("site:%s inurl:wp-content/debug.log", domain), "Debug log with paths and queries"),
				techDork(tech, "WordPress Config Backups", fmt.Sprintf("site:%s (inurl:wp-config.php.bak OR inurl:wp-config.php~ OR inurl:wp-config.php.old)", domain), "Config backups with database credentials"),
				techDork(tech, "WordPress Plugin Readmes", fmt.Sprintf("site:%s inurl:wp-content/plugins (inurl:readme.txt OR inurl:readme.md)", domain), "Plugin readmes reveal versions"),
				techDork(tech, "WordPress Upload Archives", fmt.Sprintf("site:%s inurl:wp-content (filetype:sql OR filetype:zip OR filetype:tar OR filetype:gz)", domain), "Database dumps and archives in uploads"),
			)

		case strings.Contains(techLower, "drupal"):
			results = append(results,
				techDork(tech, "Drupal Settings Backups", fmt.Sprintf("site:%s (inurl:sites/default/settings.php OR inurl:sites/default/settings.php.bak)", domain), "Settings files with database credentials"),
				techDork(tech, "Drupal Changelog", fmt.Sprintf("site:%s inurl:CHANGELOG.txt", domain), "Changelog pins the exact Drupal version"),
				techDork(tech, "Drupal Default Files", fmt.Sprintf("site:%s inurl:sites/default/files", domain), "Publicly indexed upload directory"),
			)

		case strings.Contains(techLower, "joomla"):
			results = append(results,
				techDork(tech, "Joomla Administrator", fmt.Sprintf("site:%s inurl:administrator/index.php", domain), "Joomla admin entry point"),
				techDork(tech, "Joomla Configuration", fmt.Sprintf("site:%s (inurl:configuration.php.bak OR inurl:configuration.php~)", domain), "Configuration backups"),
			)

		case strings.Contains(techLower, "apache"):
			results = append(results,
				techDork(tech, "Apache Test Pages", fmt.Sprintf("site:%s (intitle:\"Apache\" \"It works!\" OR intitle:\"Test Page\")", domain), "Default Apache pages left online"),
				techDork(tech, "Apache Server Status", fmt.Sprintf("site:%s inurl:server-status", domain), "mod_status exposure"),
			)

		case strings.Contains(techLower, "nginx"):
			results = append(results,
				techDork(tech, "Nginx Default Pages", fmt.Sprintf("site:%s intitle:\"Welcome to nginx\"", domain), "Default nginx pages left online"),
			)

		case strings.Contains(techLower, "tomcat"):
			results = append(results,
				techDork(tech, "Tomcat Manager", fmt.Sprintf("site:%s (inurl:manager/html OR intitle:\"Apache Tomcat\")", domain), "Tomcat manager consoles"),
			)

		case strings.Contains(techLower, "php"):
			results = append(results,
				techDork(tech, "PHP Info Pages", fmt.Sprintf("site:%s (intitle:\"phpinfo()\" OR inurl:phpinfo.php)", domain), "phpinfo pages reveal server configuration"),
			)

		case strings.Contains(techLower, "iis"), strings.Contains(techLower, "asp.net"):
			results = append(results,
				techDork(tech, "ASP.NET Traces", fmt.Sprintf("site:%s (inurl:trace.axd OR inurl:elmah.axd)", domain), "Trace and error handlers leak internals"),
			)
		}
	}

	return results
}

func techDork(tech DetectionResult, name, dork, notes string) core.DorkResult {
	return core.DorkResult{
		Category: core.SeverityMedium,
		Intent:   "Vulnerable Technologies",
		Name:     name,
		Dork:     dork,
		OWASP:    "A6",
		Notes:    notes,
		Tags:     []string{"Tech-Detect", tech.Technology},
	}
}
