package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdGenerate = &cli.Command{
	Name:    "generate",
	Aliases: []string{"gen"},
	Usage:   "fetch every origin and regenerate the output directory",
	Flags:   historyFlags,
	Action: func(cctx *cli.Context) error {
		m, err := loadManager(cctx)
		if err != nil {
			return err
		}
		res, err := m.Generate(cctx.Context)
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		for _, p := range res.Report.Removed {
			fmt.Fprintf(w, "removed   %s\n", p)
		}
		for _, p := range res.Report.Written {
			fmt.Fprintf(w, "written   %s\n", p)
		}
		fmt.Fprintf(w, "%s: %d written, %d unchanged\n", m.OutDir(), len(res.Report.Written), len(res.Report.Unchanged))
		return nil
	},
}
