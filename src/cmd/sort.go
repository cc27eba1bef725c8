package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"highscore/src/table"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortTable,
		Category:  "TABLE",
		Usage:     "sort a highscore table by one or more columns",
		ArgsUsage: "",
		Description: `
Every --by entry is one click on a column title: the first click on a column sorts it
ascending, a second click on the same column sorts it descending. Typed columns whose
cells do not all parse are ordered as strings and a warning names the offending cell.

Examples:
$ highscore sort --csv scores.csv --header --by Score
$ highscore sort --csv scores.csv --by 1,1
$ highscore -c highscore.toml sort -m "root:pass@tcp(127.0.0.1:3306)/highscore" --by Played --save`,
		Flags: append(sourceFlags(),
			&cli.StringSliceFlag{
				Name:     "by",
				Aliases:  []string{"b"},
				Usage:    "column index (0-based) or title to sort by, repeatable",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "write the new row order back to the database",
			},
		),
	}
}

func sortTable(ctx *cli.Context) error {
	setup(ctx, 0)
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	tbl, st, err := openTable(ctx, cfg)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	if err = sortBy(ctx, tbl, ctx.StringSlice("by"), nil); err != nil {
		return err
	}

	if ctx.Bool("save") {
		if st == nil {
			logger.Warnf("--save only applies to tables read from a database")
		} else if err = st.SaveRows(tbl.Rows()); err != nil {
			return err
		}
	}
	return renderTable(ctx.App.Writer, tbl)
}

// sortBy applies each column reference in turn, reporting degraded sorts on the
// error writer. after, when set, runs following every sort.
func sortBy(ctx *cli.Context, tbl *table.Table, refs []string, after func(table.Result) error) error {
	for _, ref := range refs {
		idx, err := resolveColumn(tbl, ref)
		if err != nil {
			return err
		}
		res, err := tbl.SortByColumn(idx)
		if err != nil {
			return err
		}
		if !res.Outcome.OK() {
			col, _ := tbl.Column(idx)
			fmt.Fprintf(ctx.App.ErrWriter, "%s: %s\n", col.Title, res.Outcome)
		}
		if after != nil {
			if err = after(res); err != nil {
				return err
			}
		}
	}
	return nil
}
