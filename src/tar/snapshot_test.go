package tar

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highscore/src/table"
)

func readArchive(t *testing.T, r io.Reader) map[string]string {
	t.Helper()
	out := make(map[string]string)
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		body, err := io.ReadAll(tr)
		require.NoError(t, err)
		out[hdr.Name] = string(body)
	}
}

func TestWriteSnapshots(t *testing.T) {
	cols := []table.Column{{Title: "Name"}, {Title: "Score"}}
	snaps := []Snapshot{
		{Name: "00-Name-asc.csv", Columns: cols, Rows: []table.Row{{"Ann", "3"}, {"Bob", "1"}}},
		{Name: "01-Score-asc.csv", Columns: cols, Rows: []table.Row{{"Bob", "1"}, {"Ann", "3"}}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshots(&buf, snaps))

	files := readArchive(t, &buf)
	require.Len(t, files, 2)
	assert.Equal(t, "Name,Score\nAnn,3\nBob,1\n", files["00-Name-asc.csv"])
	assert.Equal(t, "Name,Score\nBob,1\nAnn,3\n", files["01-Score-asc.csv"])
}

func TestWriteSnapshotsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshots(&buf, nil))
	assert.Empty(t, readArchive(t, &buf))
}

func TestWriteFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.tar")
	snaps := []Snapshot{{Name: "a.csv", Columns: []table.Column{{Title: "X"}}, Rows: []table.Row{{"1"}}}}
	require.NoError(t, WriteFile(dst, snaps))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, map[string]string{"a.csv": "X\n1\n"}, readArchive(t, f))

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.tar"), snaps)
	assert.Error(t, err)
}
