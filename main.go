package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/inkfold/redline/internal/commands"
	"github.com/inkfold/redline/internal/core/config"
	"github.com/inkfold/redline/internal/core/review"
	"github.com/inkfold/redline/internal/data/stores"
	"github.com/inkfold/redline/internal/redline"
	"github.com/inkfold/redline/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &redline.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "redline",
		Usage:     "Review AI-suggested manuscript edits one at a time",
		UsageText: "redline [global options] command [command options]",
		Description: `Redline turns an AI-generated edit report into a one-by-one review.
Each suggested edit is anchored to a verbatim passage of the manuscript;
you accept, customize, or skip them without the manuscript ever changing
mid-review. 'redline apply' folds all decisions into the final text in a
single deterministic step.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REDLINE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("REDLINE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REDLINE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("REDLINE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			store := stores.NewSessionFileStore(cfg.DataDir)
			svcLogger := log.With().Str("component", "review").Logger()
			svc := review.NewService(store, svcLogger)

			// Populate the pre-allocated App struct (commands already hold
			// a pointer to it)
			*app = *redline.NewApp(cfg, svc, store)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	root = commands.NewStartCmd(flags, app).Register(root)
	root = commands.NewResumeCmd(flags, app).Register(root)
	root = commands.NewStatusCmd(flags, app).Register(root)
	root = commands.NewShowCmd(flags, app).Register(root)
	root = commands.NewAcceptCmd(flags, app).Register(root)
	root = commands.NewCustomCmd(flags, app).Register(root)
	root = commands.NewNavCmd(flags, app).Register(root)
	root = commands.NewApplyCmd(flags, app).Register(root)
	root = commands.NewCloseCmd(flags, app).Register(root)
	root = commands.NewLsCmd(flags, app).Register(root)

	exitCode := 0
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
