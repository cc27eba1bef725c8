package cmd

import (
	"github.com/urfave/cli/v2"

	"highscore/src/table"
)

func CmdImport() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Action:    importRows,
		Category:  "TABLE",
		Usage:     "load rows from a CSV file into the database",
		ArgsUsage: "",
		Description: `
The column declarations (from the config, with titles from the CSV header when
--header is set) are stored together with the rows.

Examples:
$ highscore -c highscore.toml import --csv scores.csv --header
$ highscore import --driver sqlite3 -m scores.db --csv more.csv --append`,
		Flags: append(sourceFlags(),
			&cli.BoolFlag{
				Name:  "append",
				Usage: "keep the stored rows and add the new ones after them",
			},
		),
	}
}

func importRows(ctx *cli.Context) error {
	setup(ctx, 0)
	if ctx.String("csv") == "" {
		return errNoSource
	}
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	cols, rows, err := readCSV(ctx, cfg)
	if err != nil {
		return err
	}
	// validates the arity of every row before anything is written
	if _, err = table.New(cols, rows); err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err = st.SaveColumns(cols); err != nil {
		return err
	}
	if ctx.Bool("append") {
		err = st.AppendRows(rows)
	} else {
		err = st.SaveRows(rows)
	}
	if err != nil {
		return err
	}
	logger.Infof("imported %d rows with %d columns", len(rows), len(cols))
	return nil
}
