package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/alamaby/relnotes/config"
	"github.com/alamaby/relnotes/internal/git"
	"github.com/alamaby/relnotes/internal/notes"
	"github.com/alamaby/relnotes/internal/output"
	"github.com/alamaby/relnotes/internal/resolve"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate release notes between two tags",
		Flags:   append(configFlags(), generateFlags()...),
		Action:  generateAction,
	}
}

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "start-tag",
			Aliases: []string{"s"},
			Usage:   "Starting tag (default: second most recent tag)",
		},
		&cli.StringFlag{
			Name:    "end-tag",
			Aliases: []string{"e"},
			Usage:   "Ending tag (default: most recent tag)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: RELEASE_NOTES.md)",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Value:   ".",
			Usage:   "Path to Git repository",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Custom title for the release",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (markdown, console, json)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend (cli, gogit)",
		},
		&cli.StringFlag{
			Name:  "tag-pattern",
			Usage: "Only consider tags matching this glob pattern",
		},
		&cli.StringFlag{
			Name:  "repo-url",
			Usage: "Base URL for commit links",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable verbose output",
		},
	}
}

func generateAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	repoPath := c.String("repo")
	verbose := c.Bool("verbose")

	reader, err := newReader(c.Context, cfg.Git.Backend, repoPath)
	if err != nil {
		return err
	}

	if verbose {
		color.Blue("Getting available tags in %s", repoPath)
	}

	resolver := resolve.New(reader)
	rng, err := resolver.Resolve(c.Context, resolve.Options{
		Start:   c.String("start-tag"),
		End:     c.String("end-tag"),
		Pattern: cfg.Git.TagPattern,
	})
	if err != nil {
		return err
	}

	if verbose {
		color.Blue("Generating release notes from %s to %s", rng.Start, rng.End)
	}

	raw, err := reader.CommitsBetween(c.Context, rng.Start, rng.End)
	if err != nil {
		return err
	}

	if verbose {
		color.Blue("Found %d commits", len(raw))
	}

	format := output.ParseFormat(firstNonEmpty(c.String("format"), cfg.Output.Format))
	report := &output.Report{
		RepoPath:    repoPath,
		StartTag:    rng.Start,
		EndTag:      rng.End,
		Title:       c.String("title"),
		RepoURL:     cfg.Output.RepoURL,
		GeneratedAt: time.Now(),
		Commits:     notes.FromGitAll(raw),
		Table:       categoryTable(cfg),
	}

	outputPath := documentPath(format, c.String("output"), cfg.Output.File)
	writer := output.NewReportWriter(format)
	if err := writer.Write(report, output.Options{OutputPath: outputPath}); err != nil {
		return fmt.Errorf("write release notes: %w", err)
	}

	if outputPath != "" {
		color.Green("Release notes saved to %s", outputPath)
	}
	return nil
}

// newReader selects the history backend.
func newReader(ctx context.Context, backend, repoPath string) (git.HistoryReader, error) {
	switch backend {
	case "gogit", "go-git":
		return git.NewGoGitReader(repoPath)
	default:
		return git.NewCLIReader(ctx, repoPath)
	}
}

// categoryTable builds the category table from the defaults extended
// by any configured entries.
func categoryTable(cfg *config.Config) notes.Table {
	table := notes.DefaultTable()
	if len(cfg.Categories) == 0 {
		return table
	}
	extra := make([]notes.Category, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		extra = append(extra, notes.Category{Key: c.Key, Title: c.Title})
	}
	return table.Extend(extra)
}

// documentPath picks the output file for the report. The console
// format always writes to stdout; the document formats fall back to
// the configured default file.
func documentPath(format output.OutputFormat, flagValue, configValue string) string {
	if format == output.FormatConsole {
		return ""
	}
	return firstNonEmpty(flagValue, configValue)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
