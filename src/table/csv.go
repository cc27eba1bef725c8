package table

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// ReadCSV reads rows from r. With header set the first record is returned
// as titles instead of a row. Every record must have the same number of
// fields.
func ReadCSV(r io.Reader, header bool) (titles []string, rows []Row, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "read csv")
	}
	if header && len(records) > 0 {
		titles, records = records[0], records[1:]
	}
	rows = make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row(rec)
	}
	return titles, rows, nil
}

// WriteCSV writes a header of column titles followed by the rows.
func WriteCSV(w io.Writer, columns []Column, rows []Row) error {
	cw := csv.NewWriter(w)
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = c.Title
	}
	if err := cw.Write(titles); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}
