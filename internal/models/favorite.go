package models

import "fmt"

// Favorite is a server-owned association between a user and a recipe.
// The client never assigns ids to it.
type Favorite struct {
	Recipe    Recipe `json:"recipe"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ValidateFavorites checks that every record references a recipe.
func ValidateFavorites(favorites []Favorite) error {
	for i := range favorites {
		if err := favorites[i].Recipe.Validate(); err != nil {
			return fmt.Errorf("favorite #%d: %w", i, err)
		}
	}
	return nil
}
