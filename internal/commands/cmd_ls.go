package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/manuscript"
	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type LsCmd struct {
	flags *Flags
	app   *redline.App
	root  string
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *redline.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List reviewable manuscript files",
		UsageText: "redline ls [--root <dir>]",
		Description: `Lists files under the root directory matching the configured manuscript
patterns, newest first.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "root",
				Usage:       "directory to search",
				Value:       ".",
				Destination: &cmd.root,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	files, err := manuscript.Discover(cmd.root, cmd.app.Config.Manuscripts.Patterns)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintf(c.Root().Writer, "No manuscripts found under %s\n", cmd.root)
		return nil
	}

	for _, f := range files {
		fmt.Fprintf(c.Root().Writer, "%s  %s\n",
			styles.Muted.Render(f.ModTime.Format("2006-01-02 15:04")), f.Path)
	}

	return nil
}
