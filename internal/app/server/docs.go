package server

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

func (s *Server) registerDocsRoutes() {
	s.engine.GET("/readme", func(c *gin.Context) {
		body := renderMarkdownFile("README.md")
		c.Data(http.StatusOK, "text/html; charset=utf-8", wrapDocsHTML("README", body))
	})

	s.engine.GET("/docs/:name", func(c *gin.Context) {
		name := filepath.Base(c.Param("name"))
		filename := strings.ToUpper(name) + ".md"
		if strings.EqualFold(name, "readme") {
			filename = "README.md"
		}
		body := renderMarkdownFile(filename)
		c.Data(http.StatusOK, "text/html; charset=utf-8", wrapDocsHTML(filename, body))
	})
}

func renderMarkdownFile(path string) []byte {
	content, err := os.ReadFile(path)
	if err != nil {
		return []byte("<h1>Not Found</h1><p>Document not found.</p>")
	}

	var buf bytes.Buffer
	if err := markdown.Convert(content, &buf); err != nil {
		safe := strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(string(content))
		return []byte(`<pre style="white-space:pre-wrap">` + safe + `</pre>`)
	}
	return buf.Bytes()
}

func wrapDocsHTML(title string, body []byte) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s • DorkIQ</title>
  <link rel="stylesheet" href="/styles.css" />
  <style>
    .docs-container { max-width: 900px; margin: 40px auto; padding: 0 16px; }
    .docs-card { background: var(--bg-card); border: 1px solid var(--border-primary); border-radius: 12px; padding: 32px; }
    .docs-card h1, .docs-card h2, .docs-card h3 { margin: 16px 0; }
    .docs-card pre { background: var(--bg-secondary); padding: 12px; border-radius: 8px; overflow-x: auto; border: 1px solid var(--border-primary); }
    .docs-card a { color: var(--accent-primary); text-decoration: none; }
    .docs-card a:hover { text-decoration: underline; }
  </style>
</head>
<body>
  <div class="docs-container">
    <div class="docs-card">%s</div>
  </div>
</body>
</html>
`, title, body))
}
