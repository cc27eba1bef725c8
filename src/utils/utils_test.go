package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTable(&buf, []string{"Name ▲", "Score"}, [][]string{
		{"Ann", "12"},
		{"Bob"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, " Name ▲ │ Score ", lines[1])
	assert.Equal(t, " Ann    │ 12    ", lines[3])
	assert.Equal(t, " Bob    │       ", lines[4])
	assert.True(t, strings.HasPrefix(lines[0], "────────┬"))
}

func TestRenderTableNoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, nil, [][]string{{"x"}}))
	assert.Equal(t, emptyMsg+"\n", buf.String())
}

func TestLogger(t *testing.T) {
	l := GetLogger("unit")
	assert.Same(t, l, GetLogger("unit"))

	var buf bytes.Buffer
	l.SetOutput(&buf)
	DisableLogColor()
	SetLogLevel(logrus.WarnLevel)

	l.Infof("hidden")
	l.Warnf("column %d degraded", 2)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "unit[")
	assert.Contains(t, out, "<WARNING>: column 2 degraded")

	line, err := l.Format(&logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.ErrorLevel,
		Message: "boom",
		Data:    logrus.Fields{"row": 3},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(line), "2024/01/02 03:04:05.000000 unit["))
	assert.True(t, strings.HasSuffix(string(line), "<ERROR>: boom map[row:3]\n"))
	SetLogLevel(logrus.InfoLevel)
}
