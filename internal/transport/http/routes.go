// Package http exposes the solver as a small JSON API: a gin.Engine,
// route registration via RegisterRoutes, and gin.H JSON responses.
// There is no persisted puzzle corpus or session layer; every request
// carries its own puzzle document and every response is a pure function
// of it.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"variantsudoku/internal/puzzlefile"
	"variantsudoku/internal/solver"
	"variantsudoku/pkg/config"
	"variantsudoku/pkg/constants"
)

// RegisterRoutes wires the solver's HTTP surface onto r. The config is
// accepted here so per-request limits can hang off it later without
// changing every handler signature.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	_ = cfg

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler)
		api.POST("/validate", validateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// solveHandler expands the posted puzzle document and runs the search
// driver. Build errors (malformed region/line, out-of-bounds cells) are
// client errors (400); an unsolvable puzzle is a normal 200 response
// with "solved": false, a user-visible outcome rather than an error.
func solveHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specifier, err := puzzlefile.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := specifier.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := solver.Solve(m)
	if !result.Solved {
		c.JSON(http.StatusOK, gin.H{"solved": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"solved": true,
		"size":   []int{m.Size.X, m.Size.Y},
		"values": result.State.Values(),
	})
}

// validateHandler expands the posted puzzle document's regions and
// lines without solving, so an editor can check a document's structure
// cheaply.
func validateHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specifier, err := puzzlefile.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := specifier.Build(); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
