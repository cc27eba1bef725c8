package table

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrArity            = errors.New("row has wrong number of cells")
	ErrUnsupportedType  = errors.New("unsupported column type")
	ErrNoColumns        = errors.New("table needs at least one column")
)

// StatType is the semantic type a column's cells are read as when sorting.
type StatType int

const (
	String StatType = iota
	Int
	Float
	Date
)

var statTypeNames = []string{"string", "int", "float", "date"}

func (t StatType) Valid() bool { return t >= String && t <= Date }

func (t StatType) String() string {
	if t.Valid() {
		return statTypeNames[t]
	}
	return fmt.Sprintf("StatType(%d)", int(t))
}

// ParseStatType accepts the names printed by StatType.String plus "integer".
// An empty name is a string column.
func ParseStatType(name string) (StatType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "string":
		return String, nil
	case "int", "integer":
		return Int, nil
	case "float":
		return Float, nil
	case "date":
		return Date, nil
	}
	return String, errors.Wrapf(ErrUnsupportedType, "%q", name)
}

func (t StatType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedType, "%d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *StatType) UnmarshalText(text []byte) error {
	parsed, err := ParseStatType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Reason tells why a typed sort fell back to string order.
type Reason int

const (
	NoErrors Reason = iota
	IntParseFail
	FloatParseFail
	DateParseFail
)

func (r Reason) String() string {
	switch r {
	case NoErrors:
		return "ok"
	case IntParseFail:
		return "int parse failed"
	case FloatParseFail:
		return "float parse failed"
	case DateParseFail:
		return "date parse failed"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// label is the metric label value.
func (r Reason) label() string {
	if r == NoErrors {
		return "typed"
	}
	return "fallback"
}

func failureFor(t StatType) Reason {
	switch t {
	case Int:
		return IntParseFail
	case Float:
		return FloatParseFail
	case Date:
		return DateParseFail
	}
	return NoErrors
}

// Outcome is the result of coercing one column. Row and Cell locate the
// first cell that failed to parse and are only set when Reason is not
// NoErrors.
type Outcome struct {
	Reason Reason
	Row    int
	Cell   string
}

func (o Outcome) OK() bool { return o.Reason == NoErrors }

func (o Outcome) String() string {
	if o.OK() {
		return o.Reason.String()
	}
	return fmt.Sprintf("%s at row %d (%q), ordered as strings", o.Reason, o.Row, o.Cell)
}
