package cli

import (
	"context"

	"github.com/iudanet/gourmet/internal/client/auth"
	"github.com/iudanet/gourmet/internal/client/favorites"
	"github.com/iudanet/gourmet/internal/models"
)

//go:generate moq -out session_mock.go . SessionManager
//go:generate moq -out favorites_mock.go . FavoriteService
//go:generate moq -out catalog_mock.go . CatalogReader

// SessionManager is implemented by *auth.Manager.
type SessionManager interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context)
	Expire(ctx context.Context)
	Current() (auth.Session, bool)
}

// FavoriteService is implemented by *favorites.Synchronizer.
type FavoriteService interface {
	IsFavorite(ctx context.Context, id models.RecipeID) (bool, error)
	List(ctx context.Context) (favorites.Set, error)
	Recipes() []models.Recipe
	Add(ctx context.Context, id models.RecipeID) error
	Remove(ctx context.Context, id models.RecipeID) error
	Toggle(ctx context.Context, id models.RecipeID) (bool, error)
}

// CatalogReader is implemented by *catalog.Reader.
type CatalogReader interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id models.RecipeID) (*models.Recipe, error)
	GetRelated(ctx context.Context, id models.RecipeID) []models.Recipe
}

var (
	_ SessionManager  = (*auth.Manager)(nil)
	_ FavoriteService = (*favorites.Synchronizer)(nil)
)
