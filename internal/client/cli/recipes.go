package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/gourmet/internal/client/catalog"
	"github.com/iudanet/gourmet/internal/models"
)

func (c *Cli) runRecipes(ctx context.Context, query string) error {
	c.io.Println("=== Recipes ===")
	c.io.Println()

	recipes, err := c.catalog.ListRecipes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	recipes = catalog.Filter(recipes, query)
	if len(recipes) == 0 {
		if query != "" {
			c.io.Printf("No recipes match %q.\n", query)
		} else {
			c.io.Println("No recipes found.")
		}
		return nil
	}

	_, authenticated := c.session.Current()
	for _, r := range recipes {
		marker := " "
		if authenticated {
			fav, err := c.favorites.IsFavorite(ctx, r.ID)
			if err != nil {
				return c.checkAuth(ctx, err)
			}
			if fav {
				marker = "★"
			}
		}
		c.io.Printf("%s %s. %s\n", marker, r.ID, r.Name)
	}

	c.io.Println()
	c.io.Printf("Total: %d recipe(s)\n", len(recipes))

	return nil
}

func (c *Cli) runRecipe(ctx context.Context, arg string) error {
	id, err := parseRecipeID(arg)
	if err != nil {
		return err
	}

	recipe, err := c.catalog.GetRecipe(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load recipe %s: %w", id, err)
	}

	c.io.Printf("=== %s ===\n", recipe.Name)
	c.io.Println()
	c.io.Printf("ID: %s\n", recipe.ID)

	if _, ok := c.session.Current(); ok {
		fav, err := c.favorites.IsFavorite(ctx, recipe.ID)
		if err != nil {
			return c.checkAuth(ctx, err)
		}
		if fav {
			c.io.Println("★ In your favorites")
		}
	}

	if recipe.Description != "" {
		c.io.Println()
		c.io.Println(recipe.Description)
	}

	if facts := recipeFacts(recipe); facts != "" {
		c.io.Println()
		c.io.Println(facts)
	}

	if steps := models.ParseInstructions(recipe.Instructions); len(steps) > 0 {
		c.io.Println()
		c.io.Println("Instructions:")
		for _, step := range steps {
			if step.Bullet {
				c.io.Printf("  • %s\n", step.Text)
				continue
			}
			c.io.Printf("  %s\n", step.Text)
		}
	}

	// Связанные рецепты best effort: при ошибке список просто пустой
	if related := c.catalog.GetRelated(ctx, recipe.ID); len(related) > 0 {
		c.io.Println()
		c.io.Println("Related:")
		for _, r := range related {
			c.io.Printf("  %s. %s\n", r.ID, r.Name)
		}
	}

	return nil
}

// recipeFacts formats the optional numeric fields on one line.
func recipeFacts(r *models.Recipe) string {
	var parts []string
	if r.PrepTime > 0 {
		parts = append(parts, fmt.Sprintf("Prep: %d min", r.PrepTime))
	}
	if r.CookTime > 0 {
		parts = append(parts, fmt.Sprintf("Cook: %d min", r.CookTime))
	}
	if r.Servings > 0 {
		parts = append(parts, fmt.Sprintf("Servings: %d", r.Servings))
	}
	if r.Calories != nil {
		parts = append(parts, "Calories: "+strconv.FormatFloat(*r.Calories, 'f', -1, 64))
	}
	if r.Cost != nil {
		parts = append(parts, "Cost: "+strconv.FormatFloat(*r.Cost, 'f', 2, 64))
	}
	return strings.Join(parts, " | ")
}
