package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecipe возвращается для рецепта без идентификатора
var ErrInvalidRecipe = errors.New("recipe has no id")

// RecipeID is the stable identifier of a recipe. The backend is not consistent
// about its JSON type, so both numbers and strings are accepted.
type RecipeID string

// String returns the id as used in URLs.
func (id RecipeID) String() string {
	return string(id)
}

// UnmarshalJSON accepts "42", 42 and null.
func (id *RecipeID) UnmarshalJSON(data []byte) error {
	s, err := decodeID(data)
	if err != nil {
		return fmt.Errorf("invalid recipe id: %w", err)
	}
	*id = RecipeID(s)
	return nil
}

// decodeID reads an identifier the backend may send as a JSON string or
// number. null decodes to "".
func decodeID(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("%s: %w", string(data), err)
	}
	return n.String(), nil
}

// Recipe представляет рецепт из каталога. Клиент никогда не изменяет рецепт,
// при повторной загрузке он заменяется целиком.
type Recipe struct {
	Cost         *float64   `json:"cost,omitempty"`
	Calories     *float64   `json:"calories,omitempty"`
	ID           RecipeID   `json:"id"`
	Name         string     `json:"name"`
	ImageURL     string     `json:"image_url,omitempty"`
	Description  string     `json:"description,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
	Related      []RecipeID `json:"related,omitempty"`
	// Время приготовления в минутах
	PrepTime int `json:"prep_time,omitempty"`
	CookTime int `json:"cook_time,omitempty"`
	Servings int `json:"servings,omitempty"`
}

// Validate checks the fields the client relies on.
func (r *Recipe) Validate() error {
	if r == nil || r.ID == "" {
		return ErrInvalidRecipe
	}
	return nil
}

// ValidateRecipes validates every recipe of a list.
func ValidateRecipes(recipes []Recipe) error {
	for i := range recipes {
		if err := recipes[i].Validate(); err != nil {
			return fmt.Errorf("recipe #%d: %w", i, err)
		}
	}
	return nil
}
