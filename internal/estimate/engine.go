package estimate

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
)

// Engine evaluates list, calculate, and compare operations against the
// bundled pricing catalog.
type Engine struct {
	loader *catalog.Loader
	logger zerolog.Logger
}

// NewEngine returns an Engine reading from loader.
func NewEngine(loader *catalog.Loader, logger zerolog.Logger) *Engine {
	return &Engine{loader: loader, logger: logger}
}

// miss logs an unmatched lookup and returns its soft not-found result.
func (e *Engine) miss(category, query, note string) *Result {
	e.logger.Debug().
		Str("category", category).
		Str("query", query).
		Msg("pricing lookup miss")
	return notFound(note)
}

// containsFold reports whether s contains substr case-insensitively. An empty
// substr always matches, so optional filters can be passed through directly.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
