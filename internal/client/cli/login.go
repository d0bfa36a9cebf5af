package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, username string, passwords Passwords) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username, если не передан флагом
	if username == "" {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.readPassword(passwords)
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	user, err := c.session.Login(ctx, username, password)
	if err != nil {
		c.logger.DebugContext(ctx, "login failed", "username", username, "error", err)
		return fmt.Errorf("login failed: check your username and password")
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", user.Username)
	if user.Name != "" {
		c.io.Printf("Name: %s\n", user.Name)
	}

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	c.session.Logout(ctx)

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
