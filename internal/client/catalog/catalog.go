// Package catalog reads the recipe catalog. It holds no state of its own.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/iudanet/gourmet/internal/models"
)

//go:generate moq -out api_mock.go . API

// API is the part of the gateway the reader needs.
type API interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id models.RecipeID) (*models.Recipe, error)
	GetRelated(ctx context.Context, id models.RecipeID) ([]models.Recipe, error)
}

// Reader fetches recipes through the gateway. Catalog endpoints are public,
// no credential is sent.
type Reader struct {
	api    API
	logger *slog.Logger
}

// NewReader creates a Reader.
func NewReader(api API, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{api: api, logger: logger}
}

// ListRecipes returns the whole catalog. Gateway errors are returned unchanged.
func (r *Reader) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return r.api.ListRecipes(ctx)
}

// GetRecipe returns one recipe. Gateway errors are returned unchanged.
func (r *Reader) GetRecipe(ctx context.Context, id models.RecipeID) (*models.Recipe, error) {
	return r.api.GetRecipe(ctx, id)
}

// GetRelated returns the recipes related to id. It is best effort: any
// failure is logged and reported as an empty result.
func (r *Reader) GetRelated(ctx context.Context, id models.RecipeID) []models.Recipe {
	recipes, err := r.api.GetRelated(ctx, id)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to load related recipes",
			"recipe_id", id.String(),
			"error", err)
		return []models.Recipe{}
	}
	if recipes == nil {
		return []models.Recipe{}
	}
	return recipes
}

// Filter returns the recipes whose name contains query, ignoring case and
// surrounding spaces. An empty query returns recipes as is.
func Filter(recipes []models.Recipe, query string) []models.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return recipes
	}

	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), query) {
			out = append(out, r)
		}
	}
	return out
}
