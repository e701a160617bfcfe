// Command pont generates TypeScript API client declarations from Swagger
// and OpenAPI documents described by a pont-config.json file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/urfave/cli/v2"

	pont "github.com/Saber-Kurama/learn-pont"
	"github.com/Saber-Kurama/learn-pont/config"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps configuration problems to 2 and everything else to 1.
// Commands that pick their own code return a cli.ExitCoder.
func exitCode(err error) int {
	var coder cli.ExitCoder
	switch {
	case errors.As(err, &coder):
		return coder.ExitCode()
	case errors.Is(err, ponterrors.ErrConfig):
		return 2
	default:
		return 1
	}
}

func run(args []string, stdout io.Writer) error {
	app := &cli.App{
		Name:    "pont",
		Usage:   "generate TypeScript API clients from Swagger/OpenAPI documents",
		Version: pont.Version(),
		Writer:  stdout,
		Suggest: true,
		// main owns the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Value:   config.FileName,
				EnvVars: []string{"PONT_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"PONT_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			cmdGenerate,
			cmdLock,
			cmdDiff,
			cmdTree,
			cmdWatch,
			cmdMock,
			cmdHistory,
			cmdMCP,
			cmdVersion,
		},
		HideVersion: true,
	}
	return app.Run(args)
}

var cmdVersion = &cli.Command{
	Name:  "version",
	Usage: "print build information",
	Action: func(cctx *cli.Context) error {
		w := cctx.App.Writer
		fmt.Fprintf(w, "pont %s\n", pont.Version())
		if c := pont.Commit(); c != "" {
			fmt.Fprintf(w, "commit: %s\n", c)
		}
		if t := pont.BuildTime(); !t.IsZero() {
			fmt.Fprintf(w, "built: %s\n", t.UTC().Format("2006-01-02T15:04:05Z"))
		}
		return nil
	},
}
