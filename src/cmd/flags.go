package cmd

import (
	"github.com/urfave/cli/v2"
)

func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML file declaring the table columns and default options",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug", "v"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "path of the log file, rotated by size",
		},
		&cli.BoolFlag{
			Name:  "agent",
			Usage: "start the gops agent and the debug HTTP server with pprof and /metrics",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "csv",
			Usage: "read rows from a CSV file",
		},
		&cli.BoolFlag{
			Name:  "header",
			Usage: "the first CSV record holds the column titles",
		},
		&cli.StringFlag{
			Name:    "db-url",
			Aliases: []string{"m"},
			Usage:   "DSN of the database holding the table (overrides the config)",
		},
		&cli.StringFlag{
			Name:  "driver",
			Usage: "database driver: mysql or sqlite3 (overrides the config)",
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "sort algorithm: bubble, merge or natural",
		},
	}
}
