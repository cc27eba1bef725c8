// Package store keeps highscore columns and rows in a SQL database through
// xorm. Rows are stored with their position so a saved order survives a
// reload.
package store

import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"xorm.io/xorm"
	"xorm.io/xorm/names"

	"highscore/src/table"
	"highscore/src/utils"
)

var logger = utils.GetLogger("store")

type Column struct {
	Id      int64  `xorm:"pk autoincr"`
	Idx     int    `xorm:"unique notnull"`
	Title   string `xorm:"varchar(255) notnull"`
	Type    string `xorm:"varchar(16) notnull"`
	Visible bool   `xorm:"notnull"`
}

type Row struct {
	Id       int64    `xorm:"pk autoincr"`
	Position int      `xorm:"index notnull"`
	Cells    []string `xorm:"blob notnull"`
}

type Store struct {
	engine *xorm.Engine
}

// Open connects to the database, prefixes every table name and creates or
// migrates the tables.
func Open(driver, dsn, prefix string) (*Store, error) {
	engine, err := xorm.NewEngine(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}
	if err = engine.Ping(); err != nil {
		_ = engine.Close()
		return nil, errors.Wrapf(err, "ping %s", driver)
	}
	engine.SetTableMapper(names.NewPrefixMapper(engine.GetTableMapper(), prefix))
	if err = engine.Sync2(new(Column), new(Row)); err != nil {
		_ = engine.Close()
		return nil, errors.Wrap(err, "sync tables")
	}
	logger.Debugf("connected to %s with table prefix %q", driver, prefix)
	return &Store{engine: engine}, nil
}

func (s *Store) Close() error {
	return s.engine.Close()
}

// ShowSQL logs every statement the engine runs.
func (s *Store) ShowSQL(show bool) {
	s.engine.ShowSQL(show)
}

// SaveColumns replaces the stored column declarations.
func (s *Store) SaveColumns(cols []table.Column) error {
	records := make([]Column, len(cols))
	for i, c := range cols {
		records[i] = Column{Idx: i, Title: c.Title, Type: c.Type.String(), Visible: c.Visible}
	}
	return s.replace(new(Column), records, len(records))
}

// LoadColumns returns the stored declarations in index order, or nil when
// none are stored.
func (s *Store) LoadColumns() ([]table.Column, error) {
	var records []Column
	if err := s.engine.Asc("idx").Find(&records); err != nil {
		return nil, errors.Wrap(err, "load columns")
	}
	if len(records) == 0 {
		return nil, nil
	}
	cols := make([]table.Column, len(records))
	for i, r := range records {
		typ, err := table.ParseStatType(r.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", r.Idx)
		}
		cols[i] = table.Column{Index: i, Title: r.Title, Type: typ, Visible: r.Visible}
	}
	return cols, nil
}

// SaveRows replaces the stored rows with rows in their current order.
func (s *Store) SaveRows(rows []table.Row) error {
	records := make([]Row, len(rows))
	for i, r := range rows {
		records[i] = Row{Position: i, Cells: r}
	}
	return s.replace(new(Row), records, len(records))
}

// AppendRows stores rows after the last stored position.
func (s *Store) AppendRows(rows []table.Row) error {
	if len(rows) == 0 {
		return nil
	}
	var last Row
	has, err := s.engine.Desc("position").Get(&last)
	if err != nil {
		return errors.Wrap(err, "find last position")
	}
	next := 0
	if has {
		next = last.Position + 1
	}
	records := make([]Row, len(rows))
	for i, r := range rows {
		records[i] = Row{Position: next + i, Cells: r}
	}
	if _, err = s.engine.Insert(&records); err != nil {
		return errors.Wrap(err, "append rows")
	}
	return nil
}

// LoadRows returns the stored rows by position.
func (s *Store) LoadRows() ([]table.Row, error) {
	var records []Row
	if err := s.engine.Asc("position", "id").Find(&records); err != nil {
		return nil, errors.Wrap(err, "load rows")
	}
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = r.Cells
	}
	return rows, nil
}

func (s *Store) replace(bean interface{}, records interface{}, n int) error {
	session := s.engine.NewSession()
	defer session.Close()
	if err := session.Begin(); err != nil {
		return errors.Wrap(err, "begin")
	}
	if _, err := session.Where("1 = 1").Delete(bean); err != nil {
		_ = session.Rollback()
		return errors.Wrap(err, "clear")
	}
	if n > 0 {
		if _, err := session.Insert(records); err != nil {
			_ = session.Rollback()
			return errors.Wrap(err, "insert")
		}
	}
	return errors.Wrap(session.Commit(), "commit")
}
