package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Saber-Kurama/learn-pont/syncer"
)

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "print the file tree generate would produce, without writing it",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "txtar",
			Usage: "print every file as a txtar archive",
		},
	},
	Action: func(cctx *cli.Context) error {
		m, err := loadManager(cctx)
		if err != nil {
			return err
		}
		files, err := m.Files(cctx.Context)
		if err != nil {
			return err
		}
		if cctx.Bool("txtar") {
			data, err := syncer.Archive(files)
			if err != nil {
				return err
			}
			_, err = cctx.App.Writer.Write(data)
			return err
		}
		fmt.Fprint(cctx.App.Writer, syncer.Print(m.OutDir(), files))
		return nil
	},
}
