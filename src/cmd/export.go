package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"highscore/src/table"
	"highscore/src/tar"
)

func CmdExport() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Action:    export,
		Category:  "TABLE",
		Usage:     "export sorted views of a table as CSV files in a tar archive",
		ArgsUsage: "DEST.tar",
		Description: `
Each --by entry sorts the table once, exactly like the sort command, and the
resulting order is written as its own CSV file inside the archive.

Examples:
$ highscore export --csv scores.csv --header --by Player,Score,Score scores.tar`,
		Flags: append(sourceFlags(),
			&cli.StringSliceFlag{
				Name:     "by",
				Aliases:  []string{"b"},
				Usage:    "column index (0-based) or title to sort by, repeatable",
				Required: true,
			},
		),
	}
}

func snapshotName(n int, col table.Column, ascending bool) string {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	title := strings.ToLower(strings.Join(strings.Fields(col.Title), "-"))
	return fmt.Sprintf("%02d-%s-%s.csv", n, title, dir)
}

func export(ctx *cli.Context) error {
	setup(ctx, 1)
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

	var snaps []tar.Snapshot
	err = sortBy(ctx, tbl, ctx.StringSlice("by"), func(res table.Result) error {
		col, err := tbl.Column(res.Column)
		if err != nil {
			return err
		}
		snaps = append(snaps, tar.Snapshot{
			Name:    snapshotName(len(snaps)+1, col, res.Ascending),
			Columns: tbl.Columns(),
			Rows:    append([]table.Row(nil), res.Rows...),
		})
		return nil
	})
	if err != nil {
		return err
	}
	return tar.WriteFile(ctx.Args().Get(0), snaps)
}
