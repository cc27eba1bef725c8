package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	pipe     = "│"
	dash     = "─"
	tee      = "┼"
	topTee   = "┬"
	lastTee  = "┴"
	padding  = 1
	emptyMsg = "(no visible columns)"
)

// RenderTable draws headers and rows as a box-drawn grid. Widths are measured
// in terminal cells so wide runes and arrows line up. Rows shorter than
// headers are padded with empty cells.
func RenderTable(w io.Writer, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		_, err := fmt.Fprintln(w, emptyMsg)
		return err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				if cw := runewidth.StringWidth(row[i]); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}

	var b strings.Builder
	writeRule(&b, widths, topTee)
	writeLine(&b, widths, headers)
	writeRule(&b, widths, tee)
	for _, row := range rows {
		writeLine(&b, widths, row)
	}
	writeRule(&b, widths, lastTee)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRule(b *strings.Builder, widths []int, joint string) {
	for i, width := range widths {
		if i > 0 {
			b.WriteString(joint)
		}
		b.WriteString(strings.Repeat(dash, width+2*padding))
	}
	b.WriteByte('\n')
}

func writeLine(b *strings.Builder, widths []int, cells []string) {
	for i, width := range widths {
		if i > 0 {
			b.WriteString(pipe)
		}
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(runewidth.FillRight(cell, width))
		b.WriteString(strings.Repeat(" ", padding))
	}
	b.WriteByte('\n')
}
