package table

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"highscore/src/sort"
)

// Key is the comparable form of one cell under its column's type.
type Key struct {
	typ StatType
	str string
	num int64
	flt float64
	at  time.Time
}

func (k Key) Type() StatType { return k.typ }

// Compare orders two keys of the same type. Floats order NaN first.
func (k Key) Compare(o Key) int {
	switch k.typ {
	case Int:
		return sort.Ordered(k.num, o.num)
	case Float:
		return compareFloat(k.flt, o.flt)
	case Date:
		return k.at.Compare(o.at)
	}
	return strings.Compare(k.str, o.str)
}

func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return sort.Ordered(a, b)
}

// Coercion holds one key per cell when the whole column parsed, or the
// reason it did not. Keys is nil on failure.
type Coercion struct {
	Keys    []Key
	Outcome Outcome
}

func parseKey(cell string, typ StatType) (Key, bool) {
	k := Key{typ: typ, str: cell}
	var err error
	switch typ {
	case Int:
		k.num, err = strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	case Float:
		k.flt, err = strconv.ParseFloat(strings.TrimSpace(cell), 64)
	case Date:
		k.at, err = dateparse.ParseIn(strings.TrimSpace(cell), time.UTC)
	}
	return k, err == nil
}

// Coerce reads every cell as typ. String columns always succeed. For the
// other types the first cell that does not parse stops the attempt and the
// outcome names it; the caller is expected to order the column as strings.
func Coerce(cells []string, typ StatType) (Coercion, error) {
	if !typ.Valid() {
		return Coercion{}, errors.Wrapf(ErrUnsupportedType, "%d", int(typ))
	}
	keys := make([]Key, len(cells))
	for i, cell := range cells {
		k, ok := parseKey(cell, typ)
		if !ok {
			return Coercion{Outcome: Outcome{Reason: failureFor(typ), Row: i, Cell: cell}}, nil
		}
		keys[i] = k
	}
	return Coercion{Keys: keys}, nil
}
