package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/core/review"
	"github.com/inkfold/redline/internal/core/styles"
	"github.com/inkfold/redline/internal/redline"
	"github.com/inkfold/redline/pkg/textrange"
)

type ShowCmd struct {
	flags *Flags
	app   *redline.App
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags, app *redline.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show an issue in detail",
		UsageText: "redline show [issue-number]",
		Description: `Prints the passage, reported problems, suggested replacement, and
explanation for the issue under the cursor (or the given 1-based issue
number, which also moves the cursor). The passage's location in the
manuscript is reported when it is still present.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	sess, err := cmd.app.RequireSession(ctx)
	if err != nil {
		return err
	}

	if arg := c.Args().First(); arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("issue number must be an integer, got %q", arg)
		}
		cmd.app.Review.GoTo(ctx, n-1)
	}

	iss := sess.CurrentIssue()
	if iss == nil {
		return fmt.Errorf("session has no issues")
	}

	w := c.Root().Writer
	fmt.Fprintf(w, "%s %d of %d  [%s]\n",
		styles.Label.Render("Issue"), sess.CurrentIndex+1, len(sess.Issues), styles.Status(iss.Status))
	fmt.Fprintf(w, "\n%s\n%s\n", styles.Label.Render("Passage:"), styles.Highlight.Render(iss.Passage))

	if r, ok := sess.CurrentPassageRange(); ok {
		pos := textrange.PositionOf(sess.WorkingContent, r.Start)
		fmt.Fprintf(w, "%s\n", styles.Muted.Render(fmt.Sprintf("(line %d, column %d)", pos.Line, pos.Column)))
	} else {
		fmt.Fprintf(w, "%s\n", styles.Error.Render("(passage not currently present in the manuscript)"))
	}

	if iss.Issues != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", styles.Label.Render("Problems:"), iss.Issues)
	}

	fmt.Fprintf(w, "\n%s\n%s\n", styles.Label.Render("Replacement:"), iss.Replacement)

	if iss.Status == review.StatusCustom && iss.CustomReplacement != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", styles.Label.Render("Custom replacement:"), iss.CustomReplacement)
	}

	if iss.Explanation != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", styles.Label.Render("Explanation:"), iss.Explanation)
	}

	return nil
}
