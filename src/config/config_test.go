package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highscore/src/search"
	"highscore/src/sort"
	"highscore/src/table"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "highscore.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
algorithm = "natural"
search = "jump"
block-size = 3

[log]
level = "debug"

[store]
driver = "sqlite3"
dsn = "file::memory:"

[[column]]
title = "Player"

[[column]]
title = "Score"
type = "int"

[[column]]
title = "Played"
type = "date"
visible = false
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sort.NaturalMerge, c.SortAlgorithm())
	assert.Equal(t, search.MethodJump, c.SearchMethod())
	assert.Equal(t, 3, c.BlockSize)
	assert.Equal(t, "hs_", c.Store.Prefix)

	cols := c.TableColumns()
	require.Len(t, cols, 3)
	assert.Equal(t, table.Column{Title: "Player", Type: table.String, Visible: true}, cols[0])
	assert.Equal(t, table.Column{Title: "Score", Type: table.Int, Visible: true}, cols[1])
	assert.Equal(t, table.Column{Title: "Played", Type: table.Date, Visible: false}, cols[2])
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, sort.Merge, c.SortAlgorithm())
	assert.Equal(t, search.MethodLinear, c.SearchMethod())
	cols := c.TableColumns()
	require.Len(t, cols, DefaultColumns)
	assert.Equal(t, "Stat5", cols[4].Title)
	assert.True(t, cols[4].Visible)
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"bad type":      "[[column]]\ntype = \"bool\"\n",
		"bad algorithm": "algorithm = \"quick\"\n",
		"bad method":    "search = \"guess\"\n",
		"bad block":     "block-size = -2\n",
		"bad level":     "[log]\nlevel = \"loud\"\n",
		"bad driver":    "[store]\ndriver = \"oracle\"\n",
		"unknown key":   "colour = \"red\"\n",
		"not toml":      "algorithm = \n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
