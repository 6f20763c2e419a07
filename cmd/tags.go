package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/alamaby/relnotes/internal/resolve"
)

// TagsCmd returns the tags command.
func TagsCmd() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List repository tags in release order (newest first)",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Value:   ".",
				Usage:   "Path to Git repository",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "History backend (cli, gogit)",
			},
			&cli.StringFlag{
				Name:  "tag-pattern",
				Usage: "Only list tags matching this glob pattern",
			},
		),
		Action: tagsAction,
	}
}

func tagsAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	reader, err := newReader(c.Context, cfg.Git.Backend, c.String("repo"))
	if err != nil {
		return err
	}

	listing, err := reader.Tags(c.Context)
	if err != nil {
		return err
	}

	ordered, err := resolve.Order(listing, cfg.Git.TagPattern)
	if err != nil {
		return err
	}

	if len(ordered) == 0 {
		color.Yellow("No tags found")
		return nil
	}

	if !listing.Dated {
		color.Yellow("Tag dates unavailable; showing listing order")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Tag\tCreated")
	for _, tag := range ordered {
		created := "-"
		if tag.Dated {
			created = tag.When.Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\n", tag.Name, created)
	}
	return tw.Flush()
}
