package cli

import (
	"context"
	"time"

	"github.com/iudanet/gourmet/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	if c.serverURL != "" {
		c.io.Printf("Server: %s\n", c.serverURL)
	}

	sess, ok := c.session.Current()
	if !ok {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'gourmet login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", sess.User.Username)
	if sess.User.Email != "" {
		c.io.Printf("Email: %s\n", sess.User.Email)
	}

	// Срок действия известен только если токен оказался JWT
	expiresAt, ok := auth.TokenExpiry(sess.Token)
	if !ok {
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := time.Until(expiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
