package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runFavorites(ctx context.Context) error {
	c.io.Println("=== Favorites ===")
	c.io.Println()

	if _, err := c.requireSession(); err != nil {
		return err
	}

	if _, err := c.favorites.List(ctx); err != nil {
		return c.checkAuth(ctx, fmt.Errorf("failed to load favorites: %w", err))
	}

	recipes := c.favorites.Recipes()
	if len(recipes) == 0 {
		c.io.Println("No favorites yet.")
		c.io.Println("Run 'gourmet favorite add <id>' to add one.")
		return nil
	}

	for i, r := range recipes {
		c.io.Printf("%d. %s\n", i+1, r.Name)
		c.io.Printf("   ID: %s\n", r.ID)
	}

	c.io.Println()
	c.io.Printf("Total: %d favorite(s)\n", len(recipes))

	return nil
}

// favoriteAction is one of add, remove and toggle
type favoriteAction string

const (
	actionAdd    favoriteAction = "add"
	actionRemove favoriteAction = "remove"
	actionToggle favoriteAction = "toggle"
)

func (c *Cli) runFavorite(ctx context.Context, action favoriteAction, arg string) error {
	id, err := parseRecipeID(arg)
	if err != nil {
		return err
	}
	if _, err := c.requireSession(); err != nil {
		return err
	}

	var added bool
	switch action {
	case actionAdd:
		err = c.favorites.Add(ctx, id)
		added = true
	case actionRemove:
		err = c.favorites.Remove(ctx, id)
	case actionToggle:
		added, err = c.favorites.Toggle(ctx, id)
	default:
		return fmt.Errorf("unknown favorite action: %s", action)
	}
	if err != nil {
		return c.checkAuth(ctx, fmt.Errorf("failed to %s favorite %s: %w", action, id, err))
	}

	if added {
		c.io.Printf("✓ Recipe %s added to favorites\n", id)
	} else {
		c.io.Printf("✓ Recipe %s removed from favorites\n", id)
	}
	return nil
}
