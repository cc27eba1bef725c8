// Package tar exports sorted views of a highscore table as CSV files bundled
// in one tar archive.
package tar

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"highscore/src/table"
	"highscore/src/utils"
)

var logger = utils.GetLogger("tar")

// Snapshot is one ordering of a table, written as Name inside the archive.
type Snapshot struct {
	Name    string
	Columns []table.Column
	Rows    []table.Row
}

// WriteSnapshots writes every snapshot as a CSV entry of a tar stream.
func WriteSnapshots(w io.Writer, snaps []Snapshot) error {
	tw := tar.NewWriter(w)
	now := time.Now()
	var buf bytes.Buffer
	for _, snap := range snaps {
		buf.Reset()
		if err := table.WriteCSV(&buf, snap.Columns, snap.Rows); err != nil {
			return errors.Wrapf(err, "encode %s", snap.Name)
		}
		header := &tar.Header{
			Name:    snap.Name,
			Mode:    0644,
			Size:    int64(buf.Len()),
			ModTime: now,
		}
		if err := tw.WriteHeader(header); err != nil {
			return errors.Wrapf(err, "write header %s", snap.Name)
		}
		if _, err := io.Copy(tw, &buf); err != nil {
			return errors.Wrapf(err, "write %s", snap.Name)
		}
		logger.Debugf("added %s: %d rows", snap.Name, len(snap.Rows))
	}
	return errors.Wrap(tw.Close(), "close archive")
}

// WriteFile creates dst and writes the snapshots into it.
func WriteFile(dst string, snaps []Snapshot) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err = WriteSnapshots(f, snaps); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Infof("wrote %d snapshots to %s", len(snaps), dst)
	return nil
}
