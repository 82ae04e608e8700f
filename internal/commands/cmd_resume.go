package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/redline"
)

type ResumeCmd struct {
	flags *Flags
	app   *redline.App
}

// NewResumeCmd creates a new resume command.
func NewResumeCmd(flags *Flags, app *redline.App) *ResumeCmd {
	return &ResumeCmd{flags: flags, app: app}
}

// Register adds the resume command to the application.
func (cmd *ResumeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resume",
		Usage:     "Resume an interrupted review session",
		UsageText: "redline resume [session-id]",
		Description: `Loads the cached review session and continues where it left off.
With a session ID, resumes only if the cached session matches it.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ResumeCmd) run(ctx context.Context, c *cli.Command) error {
	var err error
	if id := c.Args().First(); id != "" {
		err = cmd.app.Review.Resume(ctx, id)
	} else {
		err = cmd.app.Review.ResumeActive(ctx)
	}
	if err != nil {
		return err
	}

	sess := cmd.app.Review.Current()
	stats := sess.Stats()
	fmt.Fprintf(c.Root().Writer, "Resumed review of %s: issue %d of %d, %d pending\n",
		sess.FileName, sess.CurrentIndex+1, stats.Total, stats.Pending)

	return nil
}
