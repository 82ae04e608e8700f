package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
)

type CustomCmd struct {
	flags *Flags
	app   *redline.App
	next  bool
}

// NewCustomCmd creates a new custom command.
func NewCustomCmd(flags *Flags, app *redline.App) *CustomCmd {
	return &CustomCmd{flags: flags, app: app}
}

// Register adds the custom command to the application.
func (cmd *CustomCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "custom",
		Usage:     "Record a custom replacement for the current issue",
		UsageText: "redline custom <text> | redline custom < replacement.txt",
		Description: `Marks the current issue as customized with your own replacement text.
The text is taken from the command arguments, or from stdin when piped,
which preserves newlines in multi-line replacements.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "next",
				Aliases:     []string{"n"},
				Usage:       "advance to the next issue after recording",
				Destination: &cmd.next,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CustomCmd) run(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	text, err := cmd.replacementText(c)
	if err != nil {
		return err
	}

	if !cmd.app.Review.ApplyCustom(ctx, text) {
		return fmt.Errorf("session has no issues")
	}

	fmt.Fprintf(c.Root().Writer, "%s issue %d of %d\n",
		styles.Warning.Render("Customized"), sess.CurrentIndex+1, len(sess.Issues))

	if cmd.next {
		cmd.app.Review.Next(ctx)
	}

	return nil
}

func (cmd *CustomCmd) replacementText(c *cli.Command) (string, error) {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no replacement text provided; pass it as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read replacement from stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\n"), nil
}
