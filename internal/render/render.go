// Package render writes automata in the output formats of regexviz.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"regexnfa/regexlib"
)

type Format int

const (
	FormatTable Format = iota
	FormatDOT
	FormatJSON
)

var formats = map[string]Format{
	"table": FormatTable,
	"dot":   FormatDOT,
	"json":  FormatJSON,
}

// ParseFormat maps a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	f, ok := formats[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames lists the accepted --format values.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatDOT:
		return "dot"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext is the file extension used when a format is written to a directory.
func (f Format) Ext() string {
	if f == FormatTable {
		return "txt"
	}
	return f.String()
}

// Write renders a to w in format f.
func Write(w io.Writer, a *regexlib.Automaton, f Format) error {
	switch f {
	case FormatTable:
		return Table(w, a)
	case FormatDOT:
		return regexlib.ExportDOT(w, a)
	case FormatJSON:
		return JSON(w, a)
	}
	return fmt.Errorf("render: unsupported format %v", f)
}
