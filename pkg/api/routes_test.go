package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "user", got: UserPath("mon user"), want: "/users/mon%20user"},
		{name: "recipe", got: RecipePath("42"), want: "/recipes/42"},
		{name: "recipe with slash", got: RecipePath("a/b"), want: "/recipes/a%2Fb"},
		{name: "recipe dot dot", got: RecipePath(".."), want: "/recipes/.."},
		{name: "related", got: RelatedPath("42"), want: "/recipes/42/related"},
		{name: "related dot dot", got: RelatedPath(".."), want: "/recipes/../related"},
		{name: "favorite", got: UserFavoritePath("alice", "7"), want: "/users/alice/favorites?recipeID=7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
