package render

import (
	"encoding/json"
	"io"

	"regexnfa/regexlib"
)

type document struct {
	Pattern string  `json:"pattern"`
	Start   int     `json:"start"`
	Accept  int     `json:"accept"`
	States  []state `json:"states"`
}

type state struct {
	Index int           `json:"index"`
	Kind  regexlib.Kind `json:"kind"`
	Rune  string        `json:"rune,omitempty"`
	Next  int           `json:"next"`
}

// JSON writes a as an indented document. Next is a state index or the value
// of the top-level accept field.
func JSON(w io.Writer, a *regexlib.Automaton) error {
	doc := document{
		Pattern: a.Pattern,
		Start:   0, // Build always places the start state first
		Accept:  regexlib.Accept,
		States:  make([]state, len(a.States)),
	}
	for i, s := range a.States {
		st := state{Index: i, Kind: s.Kind, Next: s.Next}
		if s.Kind == regexlib.Literal {
			st.Rune = string(s.Rune)
		}
		doc.States[i] = st
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
