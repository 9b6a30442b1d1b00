package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dorkiq/internal/app/console"
	"dorkiq/internal/app/core"
	"dorkiq/internal/app/target"
)

type dorkRequest struct {
	Domain                string `json:"domain"`
	IncludeSubdomains     bool   `json:"include_subdomains"`
	VulnerabilityCategory string `json:"vulnerability_category"`
	AdvancedMode          bool   `json:"advanced_mode"`
}

// generateDorksAPI handles POST /generate-dorks. A malformed or missing
// domain is the only failure mode; it is rejected before any substitution.
func (s *Server) generateDorksAPI(c *gin.Context) {
	var req dorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	domain, err := target.NormalizeAndValidate(req.Domain)
	if err != nil {
		if errors.Is(err, target.ErrInvalidDomain) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		console.LogErr("[!] generate-dorks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	results := s.catalog.Generate(domain, core.GenerateOptions{
		IncludeSubdomains: req.IncludeSubdomains,
		Category:          req.VulnerabilityCategory,
		AdvancedMode:      req.AdvancedMode,
	})

	c.JSON(http.StatusOK, results)
}

func (s *Server) healthAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "DorkIQ API is running",
	})
}

// categoriesAPI lists the catalog group keys in catalog order, for the UI
// filter dropdown.
func (s *Server) categoriesAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.catalog.Groups()})
}
