package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type AcceptCmd struct {
	flags *Flags
	app   *redline.App
	next  bool
}

// NewAcceptCmd creates a new accept command.
func NewAcceptCmd(flags *Flags, app *redline.App) *AcceptCmd {
	return &AcceptCmd{flags: flags, app: app}
}

// Register adds the accept and reset commands to the application.
func (cmd *AcceptCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "accept",
			Usage:     "Accept the suggested replacement for the current issue",
			UsageText: "redline accept [--next]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:        "next",
					Aliases:     []string{"n"},
					Usage:       "advance to the next issue after accepting",
					Destination: &cmd.next,
				},
			},
			Action: cmd.runAccept,
		},
		&cli.Command{
			Name:      "reset",
			Usage:     "Return the current issue to pending, discarding its decision",
			UsageText: "redline reset",
			Action:    cmd.runReset,
		},
	)

	return app
}

func (cmd *AcceptCmd) runAccept(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	if !cmd.app.Review.AcceptCurrent(ctx) {
		return fmt.Errorf("session has no issues")
	}

	fmt.Fprintf(c.Root().Writer, "%s issue %d of %d\n",
		styles.Success.Render("Accepted"), sess.CurrentIndex+1, len(sess.Issues))

	if cmd.next {
		cmd.app.Review.Next(ctx)
	}

	return nil
}

func (cmd *AcceptCmd) runReset(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	if !cmd.app.Review.ResetCurrent(ctx) {
		return fmt.Errorf("session has no issues")
	}

	fmt.Fprintf(c.Root().Writer, "Issue %d of %d reset to pending\n",
		sess.CurrentIndex+1, len(sess.Issues))

	return nil
}
