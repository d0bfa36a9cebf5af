package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/gourmet/internal/models"
	"github.com/iudanet/gourmet/pkg/api"
)

// Login обменивает username и пароль на bearer token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	text, err := c.Do(ctx, http.MethodPost, api.PathLogin, "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.Token == "" {
		return nil, &MalformedResponseError{
			Method: http.MethodPost,
			Path:   api.PathLogin,
			Body:   text,
			Err:    errors.New("token is missing"),
		}
	}
	return &resp, nil
}

// GetUser получает профиль пользователя
func (c *Client) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	var user models.User
	path := api.UserPath(username)
	text, err := c.Do(ctx, http.MethodGet, path, token, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, &MalformedResponseError{Method: http.MethodGet, Path: path, Body: text, Err: err}
	}
	return &user, nil
}

// ListRecipes получает весь каталог рецептов
func (c *Client) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	text, err := c.Do(ctx, http.MethodGet, api.PathRecipes, "", nil, &recipes)
	if err != nil {
		return nil, fmt.Errorf("list recipes request failed: %w", err)
	}
	if err := models.ValidateRecipes(recipes); err != nil {
		return nil, &MalformedResponseError{Method: http.MethodGet, Path: api.PathRecipes, Body: text, Err: err}
	}
	return recipes, nil
}

// GetRecipe получает один рецепт
func (c *Client) GetRecipe(ctx context.Context, id models.RecipeID) (*models.Recipe, error) {
	var recipe models.Recipe
	path := api.RecipePath(id.String())
	text, err := c.Do(ctx, http.MethodGet, path, "", nil, &recipe)
	if err != nil {
		return nil, fmt.Errorf("get recipe request failed: %w", err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, &MalformedResponseError{Method: http.MethodGet, Path: path, Body: text, Err: err}
	}
	return &recipe, nil
}

// GetRelated получает связанные рецепты. Ошибки возвращаются как есть,
// решение о деградации принимает вызывающий код.
func (c *Client) GetRelated(ctx context.Context, id models.RecipeID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	path := api.RelatedPath(id.String())
	text, err := c.Do(ctx, http.MethodGet, path, "", nil, &recipes)
	if err != nil {
		return nil, fmt.Errorf("get related request failed: %w", err)
	}
	if err := models.ValidateRecipes(recipes); err != nil {
		return nil, &MalformedResponseError{Method: http.MethodGet, Path: path, Body: text, Err: err}
	}
	return recipes, nil
}

// ListFavorites получает все избранные записи текущего пользователя
func (c *Client) ListFavorites(ctx context.Context, token string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	text, err := c.Do(ctx, http.MethodGet, api.PathFavorites, token, nil, &favorites)
	if err != nil {
		return nil, fmt.Errorf("list favorites request failed: %w", err)
	}
	if err := models.ValidateFavorites(favorites); err != nil {
		return nil, &MalformedResponseError{Method: http.MethodGet, Path: api.PathFavorites, Body: text, Err: err}
	}
	return favorites, nil
}

// AddFavorite создает запись избранного. Ответ сервера - произвольный текст.
// Если запись уже существует, возвращается *DuplicateFavoriteError.
func (c *Client) AddFavorite(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
	text, err := c.Do(ctx, http.MethodPost, api.UserFavoritePath(username, id.String()), token, nil, nil)
	if err != nil {
		var reqErr *RequestError
		// a rejected credential is never a duplicate, whatever the body says
		if errors.As(err, &reqErr) && !IsUnauthorized(err) && IsDuplicateFavorite(reqErr.Body) {
			return "", &DuplicateFavoriteError{Request: reqErr, RecipeID: id.String()}
		}
		return "", fmt.Errorf("add favorite request failed: %w", err)
	}
	return text, nil
}

// RemoveFavorite удаляет запись избранного
func (c *Client) RemoveFavorite(ctx context.Context, token, username string, id models.RecipeID) (string, error) {
	text, err := c.Do(ctx, http.MethodDelete, api.UserFavoritePath(username, id.String()), token, nil, nil)
	if err != nil {
		return "", fmt.Errorf("remove favorite request failed: %w", err)
	}
	return text, nil
}
