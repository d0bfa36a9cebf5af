package api

import "net/url"

// Пути удаленного API относительно базового адреса
const (
	PathLogin     = "/login"
	PathRecipes   = "/recipes"
	PathFavorites = "/favorites"
)

// UserPath returns /users/{username}.
func UserPath(username string) string {
	return "/users/" + url.PathEscape(username)
}

// RecipePath returns /recipes/{id}.
func RecipePath(id string) string {
	return PathRecipes + "/" + url.PathEscape(id)
}

// RelatedPath returns /recipes/{id}/related.
func RelatedPath(id string) string {
	return RecipePath(id) + "/related"
}

// UserFavoritePath returns /users/{username}/favorites?recipeID={id}.
func UserFavoritePath(username, recipeID string) string {
	q := url.Values{}
	q.Set("recipeID", recipeID)
	return UserPath(username) + "/favorites?" + q.Encode()
}
