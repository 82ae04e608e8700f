package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/redline"
)

type CloseCmd struct {
	flags *Flags
	app   *redline.App
}

// NewCloseCmd creates a new close command.
func NewCloseCmd(flags *Flags, app *redline.App) *CloseCmd {
	return &CloseCmd{flags: flags, app: app}
}

// Register adds the close command to the application.
func (cmd *CloseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "close",
		Usage:     "End the review and clear the cached session",
		UsageText: "redline close",
		Description: `Wipes the persisted session cache and forgets the in-memory session.
Safe to run at any time, including when no review is in progress.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *CloseCmd) run(ctx context.Context, c *cli.Command) error {
	cmd.app.Review.Close(ctx)
	fmt.Fprintln(c.Root().Writer, "Review session closed")
	return nil
}
