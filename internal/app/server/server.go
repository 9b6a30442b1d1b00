// Package server exposes the dork generator over HTTP together with the
// static browser UI.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dorkiq/internal/app/catalog"
)

type Server struct {
	catalog *catalog.Catalog
	engine  *gin.Engine
}

// New builds the gin engine and registers all routes. The catalog is the only
// shared state and is read-only, so every request stays a pure function of
// its body.
func New(cat *catalog.Catalog, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if debug {
		engine.Use(gin.Logger())
	}

	s := &Server{catalog: cat, engine: engine}

	engine.POST("/generate-dorks", s.generateDorksAPI)
	engine.GET("/api/health", s.healthAPI)
	engine.GET("/api/categories", s.categoriesAPI)

	// Uptime monitors probe with HEAD.
	engine.HEAD("/", headOK)
	engine.HEAD("/api/health", headOK)

	s.registerStaticRoutes()
	s.registerDocsRoutes()

	return s
}

// Handler returns the underlying http.Handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func headOK(c *gin.Context) {
	c.Status(http.StatusOK)
}
