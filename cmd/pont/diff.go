package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Saber-Kurama/learn-pont/differ"
)

var cmdDiff = &cli.Command{
	Name:  "diff",
	Usage: "compare the lock snapshot with the current remote documents",
	Flags: []cli.Flag{
		formatFlag,
		&cli.BoolFlag{
			Name:  "breaking",
			Usage: "rank changes by their impact on generated clients",
		},
		&cli.BoolFlag{
			Name:  "no-info",
			Usage: "omit informational changes",
		},
		&cli.BoolFlag{
			Name:  "fail-on-breaking",
			Usage: "exit with status 3 when breaking changes are found",
		},
	},
	Action: func(cctx *cli.Context) error {
		m, err := loadManager(cctx)
		if err != nil {
			return err
		}
		mode := differ.ModeSimple
		if cctx.Bool("breaking") || cctx.Bool("fail-on-breaking") {
			mode = differ.ModeBreaking
		}
		res, err := m.Diff(cctx.Context, differ.WithMode(mode), differ.WithIncludeInfo(!cctx.Bool("no-info")))
		if err != nil {
			return err
		}

		if format := cctx.String("format"); format != FormatText {
			if err := outputStructured(cctx.App.Writer, res, format); err != nil {
				return err
			}
		} else {
			for _, c := range res.Changes {
				fmt.Fprintln(cctx.App.Writer, c.String())
			}
			fmt.Fprintln(cctx.App.Writer, res.Summary())
		}

		if cctx.Bool("fail-on-breaking") && res.HasBreakingChanges {
			return cli.Exit("breaking changes found", 3)
		}
		return nil
	},
}
