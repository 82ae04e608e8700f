package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type StatusCmd struct {
	flags *Flags
	app   *redline.App
}

// NewStatusCmd creates a new status command.
func NewStatusCmd(flags *Flags, app *redline.App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the status command to the application.
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Show review progress for the active session",
		UsageText: "redline status",
		Action:    cmd.run,
	})

	return app
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	stats := sess.Stats()
	w := c.Root().Writer

	fmt.Fprintf(w, "%s %s (project %s)\n", styles.Label.Render("Reviewing:"), sess.FileName, sess.ProjectName)
	fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Session:"), sess.ID)
	fmt.Fprintf(w, "%s %d of %d\n", styles.Label.Render("Cursor:"), sess.CurrentIndex+1, stats.Total)
	fmt.Fprintf(w, "%s %s  %s %s  %s %s\n",
		styles.Label.Render("Accepted:"), styles.Success.Render(fmt.Sprint(stats.Accepted)),
		styles.Label.Render("Custom:"), styles.Warning.Render(fmt.Sprint(stats.Custom)),
		styles.Label.Render("Pending:"), styles.Muted.Render(fmt.Sprint(stats.Pending)))

	return nil
}
