package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/redline"
)

type NavCmd struct {
	flags *Flags
	app   *redline.App
}

// NewNavCmd creates the cursor navigation commands.
func NewNavCmd(flags *Flags, app *redline.App) *NavCmd {
	return &NavCmd{flags: flags, app: app}
}

// Register adds the next, prev, and goto commands to the application.
func (cmd *NavCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "next",
			Usage:     "Move the review cursor to the next issue",
			UsageText: "redline next",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.move(ctx, c, func(ctx context.Context) {
					cmd.app.Review.Next(ctx)
				})
			},
		},
		&cli.Command{
			Name:      "prev",
			Usage:     "Move the review cursor to the previous issue",
			UsageText: "redline prev",
			Action: func(ctx context.Context, c *cli.Command) error {
				return cmd.move(ctx, c, func(ctx context.Context) {
					cmd.app.Review.Prev(ctx)
				})
			},
		},
		&cli.Command{
			Name:      "goto",
			Usage:     "Move the review cursor to a specific issue",
			UsageText: "redline goto <issue-number>",
			Action:    cmd.runGoto,
		},
	)

	return app
}

func (cmd *NavCmd) runGoto(ctx context.Context, c *cli.Command) error {
	arg := c.Args().First()
	if arg == "" {
		return fmt.Errorf("usage: redline goto <issue-number>")
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("issue number must be an integer, got %q", arg)
	}

	return cmd.move(ctx, c, func(ctx context.Context) {
		cmd.app.Review.GoTo(ctx, n-1)
	})
}

func (cmd *NavCmd) move(ctx context.Context, c *cli.Command, fn func(ctx context.Context)) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	fn(ctx)

	iss := sess.CurrentIssue()
	if iss == nil {
		return fmt.Errorf("session has no issues")
	}

	fmt.Fprintf(c.Root().Writer, "Issue %d of %d [%s]\n",
		sess.CurrentIndex+1, len(sess.Issues), iss.Status)

	return nil
}
