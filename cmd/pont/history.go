package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

type historyRow struct {
	ID         string    `json:"id" yaml:"id"`
	Run        string    `json:"run" yaml:"run"`
	Time       time.Time `json:"time" yaml:"time"`
	Classes    int       `json:"classes" yaml:"classes"`
	Interfaces int       `json:"interfaces" yaml:"interfaces"`
}

var cmdHistory = &cli.Command{
	Name:      "history",
	Usage:     "list recorded snapshots of an origin",
	ArgsUsage: "[origin]",
	Flags:     append([]cli.Flag{formatFlag}, historyFlags[1]),
	Action: func(cctx *cli.Context) error {
		entries, err := historyStore(cctx).List(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}
		rows := make([]historyRow, len(entries))
		for i, e := range entries {
			rows[i] = historyRow{
				ID:         e.ID.String(),
				Run:        e.RunID.String(),
				Time:       e.Time,
				Classes:    len(e.Snapshot.BaseClasses),
				Interfaces: len(e.Snapshot.Interfaces()),
			}
		}
		if format := cctx.String("format"); format != FormatText {
			return outputStructured(cctx.App.Writer, rows, format)
		}
		if len(rows) == 0 {
			fmt.Fprintln(cctx.App.Writer, "no snapshots recorded")
			return nil
		}
		for _, r := range rows {
			fmt.Fprintf(cctx.App.Writer, "%s  %s  %d classes, %d interfaces\n",
				r.Time.Local().Format(time.DateTime), r.ID, r.Classes, r.Interfaces)
		}
		return nil
	},
}
