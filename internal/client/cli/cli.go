// Package cli implements the gourmet command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/gourmet/internal/client/api"
	"github.com/iudanet/gourmet/internal/client/auth"
	"github.com/iudanet/gourmet/internal/client/iocli"
	"github.com/iudanet/gourmet/internal/models"
)

// EnvPassword supplies the login password non-interactively
const EnvPassword = "GOURMET_PASSWORD"

// ErrSessionExpired is returned when the server rejected the stored credential
var ErrSessionExpired = errors.New("session expired, run 'gourmet login' again")

// Cli runs the commands against the client core.
type Cli struct {
	io        iocli.IO
	session   SessionManager
	favorites FavoriteService
	catalog   CatalogReader
	logger    *slog.Logger
	serverURL string
}

// Option configures a Cli.
type Option func(*Cli)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cli) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithServerURL sets the server address shown by status.
func WithServerURL(serverURL string) Option {
	return func(c *Cli) {
		c.serverURL = serverURL
	}
}

// New creates a Cli.
func New(io iocli.IO, session SessionManager, favorites FavoriteService, catalog CatalogReader, opts ...Option) *Cli {
	c := &Cli{
		io:        io,
		session:   session,
		favorites: favorites,
		catalog:   catalog,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Passwords lists the non-interactive password sources.
type Passwords struct {
	FromFile string
}

// readPassword picks the login password with priority:
// 1. Environment variable GOURMET_PASSWORD
// 2. File given by --password-file
// 3. Interactive prompt
func (c *Cli) readPassword(passwords Passwords) (string, error) {
	if envPassword := os.Getenv(EnvPassword); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimRight(string(content), "\r\n")
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// requireSession returns the current session or an error asking to log in.
func (c *Cli) requireSession() (auth.Session, error) {
	sess, ok := c.session.Current()
	if !ok {
		return auth.Session{}, fmt.Errorf("%w: run 'gourmet login' first", auth.ErrNotAuthenticated)
	}
	return sess, nil
}

// checkAuth ends the session when err says the credential was rejected.
func (c *Cli) checkAuth(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		c.session.Expire(ctx)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return err
}

// parseRecipeID validates a recipe id given on the command line.
func parseRecipeID(arg string) (models.RecipeID, error) {
	id := strings.TrimSpace(arg)
	if id == "" {
		return "", errors.New("recipe id cannot be empty")
	}
	if id == "." || id == ".." {
		return "", fmt.Errorf("invalid recipe id %q", id)
	}
	return models.RecipeID(id), nil
}
