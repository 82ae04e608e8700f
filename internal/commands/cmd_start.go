package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type StartCmd struct {
	flags *Flags
	app   *redline.App

	project    string
	manuscript string
	report     string
	force      bool
}

// NewStartCmd creates a new start command.
func NewStartCmd(flags *Flags, app *redline.App) *StartCmd {
	return &StartCmd{flags: flags, app: app}
}

// Register adds the start command to the application.
func (cmd *StartCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "start",
		Usage:     "Start reviewing an edit report against a manuscript",
		UsageText: "redline start -f <manuscript> -r <report>",
		Description: `Parses the edit report into discrete issues and opens a review session
over the manuscript. The manuscript is never modified during review; all
decisions are folded into a final text only by 'redline apply'.

If a session for the same manuscript is already cached, it is resumed
instead of being replaced. Use --force to discard it and start over.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "project",
				Aliases:     []string{"p"},
				Usage:       "project name (defaults to config value)",
				Destination: &cmd.project,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the manuscript file",
				Required:    true,
				Destination: &cmd.manuscript,
			},
			&cli.StringFlag{
				Name:        "report",
				Aliases:     []string{"r"},
				Usage:       "path to the edit report file",
				Required:    true,
				Destination: &cmd.report,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "discard any cached session and start fresh",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StartCmd) run(ctx context.Context, c *cli.Command) error {
	project := cmd.project
	if project == "" {
		project = cmd.app.Config.Project
	}

	filePath, err := filepath.Abs(cmd.manuscript)
	if err != nil {
		return fmt.Errorf("resolve manuscript path: %w", err)
	}

	if !cmd.force {
		if existing := cmd.app.Review.CheckForExisting(ctx, project, filePath); existing != nil {
			if err := cmd.app.Review.Resume(ctx, existing.ID); err != nil {
				return err
			}
			stats := cmd.app.Review.Stats()
			fmt.Fprintf(c.Root().Writer, "Resumed review of %s (%d of %d issues decided)\n",
				existing.FileName, stats.Accepted+stats.Custom, stats.Total)
			return nil
		}

		// The cache holds a single session. Starting a review of a
		// different file would silently destroy the one in progress.
		if cached, err := cmd.app.Store.Latest(ctx); err == nil && cached.FilePath != filePath {
			return fmt.Errorf("a review of %s is already in progress; finish it with 'redline apply' and 'redline close', or pass --force to discard it", cached.FilePath)
		}
	}

	manuscript, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read manuscript: %w", err)
	}

	reportText, err := os.ReadFile(cmd.report)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	err = cmd.app.Review.Init(ctx, project, filepath.Base(filePath), filePath,
		string(manuscript), string(reportText))
	if err != nil {
		return err
	}

	stats := cmd.app.Review.Stats()
	fmt.Fprintf(c.Root().Writer, "%s %d issue(s) to review in %s\n",
		styles.Success.Render("Session started:"), stats.Total, filepath.Base(filePath))
	fmt.Fprintln(c.Root().Writer, "Run 'redline show' to see the first issue.")

	return nil
}
