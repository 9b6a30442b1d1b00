package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

func (s *Server) registerStaticRoutes() {
	s.engine.GET("/", serveAsset("web/index.html", "text/html; charset=utf-8"))
	s.engine.GET("/styles.css", serveAsset("web/styles.css", "text/css; charset=utf-8"))
	s.engine.GET("/script.js", serveAsset("web/script.js", "application/javascript; charset=utf-8"))
}

func serveAsset(path, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := webFS.ReadFile(path)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
