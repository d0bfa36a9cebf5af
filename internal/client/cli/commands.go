package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gourmet/internal/client/config"
	"github.com/iudanet/gourmet/internal/client/iocli"
)

// annotationNoSetup marks commands that run without opening the session store
const annotationNoSetup = "gourmet/no-setup"

// VersionInfo is set via ldflags during build
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Setup builds a Cli for the resolved configuration. cleanup, when not nil,
// runs once the command finished.
type Setup func(ctx context.Context, cfg *config.Config) (c *Cli, cleanup func(), err error)

// globalFlags are the persistent flags of the root command
type globalFlags struct {
	configPath  string
	serverURL   string
	dbPath      string
	profile     string
	logLevel    string
	metricsFile string
	timeout     time.Duration
	rateLimit   float64
}

// App is the command tree plus the state shared between its commands.
type App struct {
	io      iocli.IO
	setup   Setup
	cli     *Cli
	cleanup func()
	info    VersionInfo
	flags   globalFlags
}

// NewApp creates the application.
func NewApp(io iocli.IO, info VersionInfo, setup Setup) *App {
	return &App{io: io, info: info, setup: setup}
}

// Execute runs the command line args and releases whatever Setup opened.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer a.close()

	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

// Command builds the cobra command tree.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "gourmet",
		Short:         "Command-line client for the Gourmet recipe catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoSetup] == "true" {
				return nil
			}
			return a.prepare(cmd)
		},
	}
	root.SetOut(a.io)
	root.SetErr(a.io)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "path to TOML config file (default $"+config.EnvConfigPath+")")
	pf.StringVar(&a.flags.serverURL, "server", "", "server URL")
	pf.StringVar(&a.flags.dbPath, "db", "", "path to local session database")
	pf.StringVar(&a.flags.profile, "profile", "", "session profile inside the database")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write request metrics to this file on exit")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout")
	pf.Float64Var(&a.flags.rateLimit, "rate-limit", 0, "max requests per second, 0 disables the limiter")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.statusCommand(),
		a.recipesCommand(),
		a.recipeCommand(),
		a.favoritesCommand(),
		a.favoriteCommand(),
		a.versionCommand(),
		a.configCommand(),
	)

	return root
}

// prepare resolves the configuration and runs Setup.
func (a *App) prepare(cmd *cobra.Command) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	c, cleanup, err := a.setup(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.cli = c
	a.cleanup = cleanup
	return nil
}

// resolveConfig applies defaults, then the config file, then explicitly set flags.
func (a *App) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(config.Path(a.flags.configPath))
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("server") {
		cfg.ServerURL = a.flags.serverURL
	}
	if fl.Changed("db") {
		cfg.DBPath = a.flags.dbPath
	}
	if fl.Changed("profile") {
		cfg.Profile = a.flags.profile
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.metricsFile
	}
	if fl.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if fl.Changed("rate-limit") {
		cfg.RateLimit = a.flags.rateLimit
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) loginCommand() *cobra.Command {
	var (
		username  string
		passwords Passwords
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: "Log in and store the session.\n\n" +
			"Password priority (highest to lowest):\n" +
			"  1. " + EnvPassword + " environment variable\n" +
			"  2. --password-file\n" +
			"  3. Interactive prompt",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runLogin(cmd.Context(), username, passwords)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when empty)")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "path to file containing the password")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runLogout(cmd.Context())
		},
	}
}

func (a *App) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runStatus(cmd.Context())
		},
	}
}

func (a *App) recipesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "recipes [query]",
		Short:   "List recipes, optionally filtered by name",
		Example: "  gourmet recipes\n  gourmet recipes tarte",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runRecipes(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func (a *App) recipeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recipe <id>",
		Short: "Show a recipe with its instructions and related recipes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runRecipe(cmd.Context(), args[0])
		},
	}
}

func (a *App) favoritesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List your favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runFavorites(cmd.Context())
		},
	}
}

func (a *App) favoriteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Change your favorites",
	}
	for _, sub := range []struct {
		action favoriteAction
		short  string
	}{
		{action: actionAdd, short: "Add a recipe to favorites"},
		{action: actionRemove, short: "Remove a recipe from favorites"},
		{action: actionToggle, short: "Add the recipe if it is not a favorite, remove it otherwise"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   string(sub.action) + " <id>",
			Short: sub.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runFavorite(cmd.Context(), sub.action, args[0])
			},
		})
	}
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			a.io.Printf("Gourmet Client\n")
			a.io.Printf("Version:    %s\n", a.info.Version)
			a.io.Printf("Build Date: %s\n", a.info.BuildDate)
			a.io.Printf("Git Commit: %s\n", a.info.GitCommit)
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the configuration file",
		Annotations: map[string]string{annotationNoSetup: "true"},
	}
	cmd.AddCommand(&cobra.Command{
		Use:         "init [path]",
		Short:       "Write an example config file (default gourmet.toml)",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "gourmet.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.CreateFile(path); err != nil {
				return err
			}
			a.io.Printf("✓ Config written to %s\n", path)
			return nil
		},
	})
	return cmd
}
