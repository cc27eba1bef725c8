package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"highscore/src/cmd"
)

var version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:                 "highscore",
		Usage:                "sort and search highscore tables",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                cmd.GlobalFlags(),
		Commands: []*cli.Command{
			cmd.CmdSort(),
			cmd.CmdSearch(),
			cmd.CmdImport(),
			cmd.CmdExport(),
		},
	}
}

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print only the version",
	}
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "highscore: %s\n", err)
		os.Exit(1)
	}
}
