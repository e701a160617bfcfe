package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type lockSummary struct {
	Origin     string `json:"origin" yaml:"origin"`
	Classes    int    `json:"classes" yaml:"classes"`
	Mods       int    `json:"mods" yaml:"mods"`
	Interfaces int    `json:"interfaces" yaml:"interfaces"`
}

var cmdLock = &cli.Command{
	Name:  "lock",
	Usage: "summarize the snapshot recorded by the last generation",
	Flags: []cli.Flag{formatFlag},
	Action: func(cctx *cli.Context) error {
		m, err := loadManager(cctx)
		if err != nil {
			return err
		}
		sources, err := m.Lock()
		if err != nil {
			return err
		}

		summaries := make([]lockSummary, len(sources))
		for i, ds := range sources {
			summaries[i] = lockSummary{
				Origin:     ds.Name,
				Classes:    len(ds.BaseClasses),
				Mods:       len(ds.Mods),
				Interfaces: len(ds.Interfaces()),
			}
		}
		if format := cctx.String("format"); format != FormatText {
			return outputStructured(cctx.App.Writer, summaries, format)
		}
		for _, s := range summaries {
			name := s.Origin
			if name == "" {
				name = "(default)"
			}
			fmt.Fprintf(cctx.App.Writer, "%s: %d classes, %d mods, %d interfaces\n", name, s.Classes, s.Mods, s.Interfaces)
		}
		return nil
	},
}
