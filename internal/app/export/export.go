// Package export writes generated dork results to files for downstream
// tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dorkiq/internal/app/core"
)

// WriteFile writes the results to path, choosing the format by extension:
// .json and .csv keep the full records, anything else gets one dork per line.
func WriteFile(path string, results []core.DorkResult) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSON(path, results)
	case ".csv":
		return writeCSV(path, results)
	default:
		return writeText(path, results)
	}
}

func writeText(path string, results []core.DorkResult) error {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.Dork)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func writeJSON(path string, results []core.DorkResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func writeCSV(path string, results []core.DorkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"category", "intent_category", "name", "dork", "owasp", "notes", "tags"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{r.Category, r.Intent, r.Name, r.Dork, r.OWASP, r.Notes, strings.Join(r.Tags, ";")}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}
