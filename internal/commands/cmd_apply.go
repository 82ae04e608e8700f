package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type ApplyCmd struct {
	flags  *Flags
	app    *redline.App
	output string
	write  bool
	dryRun bool
}

// NewApplyCmd creates a new apply command.
func NewApplyCmd(flags *Flags, app *redline.App) *ApplyCmd {
	return &ApplyCmd{flags: flags, app: app}
}

// Register adds the apply command to the application.
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "apply",
		Usage:     "Fold all accepted and custom decisions into the final text",
		UsageText: "redline apply [-o <path> | --write]",
		Description: `Computes the final manuscript by applying every accepted or customized
edit in report order. The original manuscript is untouched unless --write
is given. Edits whose passage can no longer be found are listed and
skipped; already-applied edits are never rolled back.

Without -o or --write, the final text is printed to stdout.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the final text to this path",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "write",
				Aliases:     []string{"w"},
				Usage:       "write the final text back to the manuscript file",
				Destination: &cmd.write,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "report what would be applied without producing output",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ApplyCmd) run(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	result, err := cmd.app.Review.FinalContent()
	if err != nil {
		return err
	}

	stats := sess.Stats()
	applied := stats.Accepted + stats.Custom - len(result.Errors)

	if cmd.dryRun {
		fmt.Fprintf(c.Root().Writer, "Would apply %d of %d decided edit(s); %d unapplicable\n",
			applied, stats.Accepted+stats.Custom, len(result.Errors))
		cmd.printErrors(c, result.Errors)
		return nil
	}

	switch {
	case cmd.write:
		if err := os.WriteFile(sess.FilePath, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("write manuscript: %w", err)
		}
		fmt.Fprintf(c.Root().Writer, "%s %d edit(s) applied to %s\n",
			styles.Success.Render("Done:"), applied, sess.FilePath)
	case cmd.output != "":
		if err := os.WriteFile(cmd.output, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(c.Root().Writer, "%s %d edit(s) applied to %s\n",
			styles.Success.Render("Done:"), applied, cmd.output)
	default:
		fmt.Fprint(c.Root().Writer, result.Content)
	}

	cmd.printErrors(c, result.Errors)

	if !result.Success {
		return cli.Exit(fmt.Sprintf("%d edit(s) could not be applied", len(result.Errors)), 1)
	}

	return nil
}

func (cmd *ApplyCmd) printErrors(c *cli.Command, errs []string) {
	for _, msg := range errs {
		fmt.Fprintf(c.Root().ErrWriter, "%s %s\n", styles.Error.Render("unapplied:"), msg)
	}
}
