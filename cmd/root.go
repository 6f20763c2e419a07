package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/alamaby/relnotes/config"
)

// App creates the CLI application. Running the app without a
// subcommand behaves like `generate`.
func App() *cli.App {
	// Version is left unset so the -v shorthand stays with --verbose.
	return &cli.App{
		Name:  "relnotes",
		Usage: "Release notes generator for Git repositories",
		Commands: []*cli.Command{
			GenerateCmd(),
			TagsCmd(),
		},
		Flags:  append(configFlags(), generateFlags()...),
		Action: generateAction,
	}
}

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
	}
}

// loadConfig loads configuration from file or defaults, applying CLI
// overrides that have a config-level home.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if backend := c.String("backend"); backend != "" {
		cfg.Git.Backend = backend
	}
	if pattern := c.String("tag-pattern"); pattern != "" {
		cfg.Git.TagPattern = pattern
	}
	if repoURL := c.String("repo-url"); repoURL != "" {
		cfg.Output.RepoURL = repoURL
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
