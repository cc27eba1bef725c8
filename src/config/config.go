// Package config loads the declaration of a highscore table and the options
// the CLI runs it with from a TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"highscore/src/search"
	"highscore/src/sort"
	"highscore/src/table"
)

const DefaultColumns = 5

type Column struct {
	Title   string         `toml:"title"`
	Type    table.StatType `toml:"type"`
	Visible *bool          `toml:"visible"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Store struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
	Prefix string `toml:"prefix"`
}

type Config struct {
	Algorithm string   `toml:"algorithm"`
	Search    string   `toml:"search"`
	BlockSize int      `toml:"block-size"`
	Log       Log      `toml:"log"`
	Store     Store    `toml:"store"`
	Columns   []Column `toml:"column"`
}

// Default is five visible string columns named Stat1..Stat5, ordered with
// merge sort and searched linearly.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = sort.Merge.String()
	}
	if c.Search == "" {
		c.Search = search.MethodLinear.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = logrus.InfoLevel.String()
	}
	if c.Store.Driver == "" {
		c.Store.Driver = "mysql"
	}
	if c.Store.Prefix == "" {
		c.Store.Prefix = "hs_"
	}
	if len(c.Columns) == 0 {
		c.Columns = make([]Column, DefaultColumns)
	}
	for i := range c.Columns {
		if c.Columns[i].Title == "" {
			c.Columns[i].Title = fmt.Sprintf("Stat%d", i+1)
		}
		if c.Columns[i].Visible == nil {
			visible := true
			c.Columns[i].Visible = &visible
		}
	}
}

// Validate checks names that are only resolved later.
func (c *Config) Validate() error {
	if _, err := sort.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := search.ParseMethod(c.Search); err != nil {
		return err
	}
	if c.BlockSize < 0 {
		return errors.Wrapf(search.ErrBlockSize, "block-size %d", c.BlockSize)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch strings.ToLower(c.Store.Driver) {
	case "mysql", "sqlite3":
	default:
		return errors.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	for i, col := range c.Columns {
		if !col.Type.Valid() {
			return errors.Wrapf(table.ErrUnsupportedType, "column %d", i)
		}
	}
	return nil
}

// Load decodes path, fills in defaults and validates the result. Keys the
// decoder does not know are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	c := &Config{}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) SortAlgorithm() sort.Algorithm {
	alg, _ := sort.ParseAlgorithm(c.Algorithm)
	return alg
}

func (c *Config) SearchMethod() search.Method {
	m, _ := search.ParseMethod(c.Search)
	return m
}

// TableColumns converts the column declarations into table descriptors.
func (c *Config) TableColumns() []table.Column {
	cols := make([]table.Column, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = table.Column{Title: col.Title, Type: col.Type, Visible: col.Visible == nil || *col.Visible}
	}
	return cols
}
