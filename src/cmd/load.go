package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"highscore/src/config"
	"highscore/src/sort"
	"highscore/src/store"
	"highscore/src/table"
	"highscore/src/utils"
)

var errNoSource = errors.New("no rows to read: pass --csv or --db-url, or set [store] dsn in the config")

func algorithm(c *cli.Context, cfg *config.Config) (sort.Algorithm, error) {
	if c.IsSet("algorithm") {
		return sort.ParseAlgorithm(c.String("algorithm"))
	}
	return cfg.SortAlgorithm(), nil
}

func openStore(c *cli.Context, cfg *config.Config) (*store.Store, error) {
	driver, dsn := cfg.Store.Driver, cfg.Store.DSN
	if c.IsSet("driver") {
		driver = c.String("driver")
	}
	if c.IsSet("db-url") {
		dsn = c.String("db-url")
	}
	if dsn == "" {
		return nil, errNoSource
	}
	st, err := store.Open(driver, dsn, cfg.Store.Prefix)
	if err != nil {
		return nil, err
	}
	st.ShowSQL(c.Bool("trace"))
	return st, nil
}

// readCSV loads --csv and fits the declared columns to the file's width.
func readCSV(c *cli.Context, cfg *config.Config) ([]table.Column, []table.Row, error) {
	f, err := os.Open(c.String("csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	titles, rows, err := table.ReadCSV(f, c.Bool("header"))
	if err != nil {
		return nil, nil, errors.Wrap(err, c.String("csv"))
	}
	arity := len(cfg.Columns)
	switch {
	case titles != nil:
		arity = len(titles)
	case len(rows) > 0:
		arity = len(rows[0])
	}
	return fitColumns(cfg.TableColumns(), titles, arity), rows, nil
}

// fitColumns trims or extends the declarations to arity columns. Extra
// columns are visible strings; titles from a CSV header win over declared
// ones.
func fitColumns(cols []table.Column, titles []string, arity int) []table.Column {
	out := make([]table.Column, arity)
	for i := range out {
		if i < len(cols) {
			out[i] = cols[i]
		} else {
			out[i] = table.Column{Title: fmt.Sprintf("Stat%d", i+1), Type: table.String, Visible: true}
		}
		if i < len(titles) && titles[i] != "" {
			out[i].Title = titles[i]
		}
	}
	return out
}

// openTable builds the table from --csv, or from the store otherwise. The
// store is returned open when it was used so the caller can write back.
func openTable(c *cli.Context, cfg *config.Config) (*table.Table, *store.Store, error) {
	alg, err := algorithm(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	if c.String("csv") != "" {
		cols, rows, err := readCSV(c, cfg)
		if err != nil {
			return nil, nil, err
		}
		tbl, err := table.New(cols, rows, table.WithAlgorithm(alg))
		return tbl, nil, err
	}

	st, err := openStore(c, cfg)
	if err != nil {
		return nil, nil, err
	}
	cols, err := st.LoadColumns()
	if err == nil && cols == nil {
		cols = cfg.TableColumns()
	}
	var rows []table.Row
	if err == nil {
		rows, err = st.LoadRows()
	}
	var tbl *table.Table
	if err == nil {
		tbl, err = table.New(cols, rows, table.WithAlgorithm(alg))
	}
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return tbl, st, nil
}

// resolveColumn accepts a 0-based index or a column title.
func resolveColumn(tbl *table.Table, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if idx, err := strconv.Atoi(ref); err == nil {
		if _, err := tbl.Column(idx); err != nil {
			return 0, err
		}
		return idx, nil
	}
	for _, col := range tbl.Columns() {
		if strings.EqualFold(col.Title, ref) {
			return col.Index, nil
		}
	}
	return 0, errors.Wrapf(table.ErrColumnOutOfRange, "no column %q", ref)
}

func renderTable(w io.Writer, tbl *table.Table) error {
	visible := tbl.VisibleColumns()
	headers := make([]string, len(visible))
	for i, col := range visible {
		headers[i] = col.Title
		if arrow := col.Arrow(); arrow != "" {
			headers[i] += " " + arrow
		}
	}
	rows := make([][]string, tbl.Len())
	for r, row := range tbl.Rows() {
		cells := make([]string, len(visible))
		for i, col := range visible {
			cells[i] = row[col.Index]
		}
		rows[r] = cells
	}
	return utils.RenderTable(w, headers, rows)
}
