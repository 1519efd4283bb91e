package regexlib

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags a state of the automaton.
type Kind uint8

const (
	Literal  Kind = iota // consumes exactly State.Rune
	Wildcard             // consumes any single rune
	Jump                 // ε-transfer to State.Next

	// placeholder only exists while a pattern is being built; its Next is an
	// index into the virtual-transition table.
	placeholder
)

// Accept is the target of every transition into the accepting sentinel. It is
// not a physical state.
const Accept = -1

var kindNames = [...]string{
	Literal:     "literal",
	Wildcard:    "wildcard",
	Jump:        "jump",
	placeholder: "placeholder",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// State is one node of the flat automaton.
type State struct {
	Kind Kind
	Rune rune // for Literal
	Next int  // state index or Accept
}

func (s State) physical() bool { return s.Kind != placeholder }

// Automaton is the result of Build. States[0] is the start state.
//
// A Literal or Wildcard state consumes one matching rune and moves to Next. A
// maximal run of consecutive Jump states is a single branch point: entering
// the first Jump of the run allows an ε-move to the Next of every Jump in it.
type Automaton struct {
	Pattern string
	States  []State
}

// Validate checks the postcondition of Build: at least one state, no
// unresolved placeholders and every target either a state index or Accept.
func (a *Automaton) Validate() error {
	if len(a.States) == 0 {
		return &InternalError{Op: "validate", Detail: "automaton has no start state"}
	}
	for i, s := range a.States {
		if !s.physical() {
			return &InternalError{Op: "validate", Detail: fmt.Sprintf("state %d is an unresolved placeholder", i)}
		}
		if s.Next != Accept && (s.Next < 0 || s.Next >= len(a.States)) {
			return &InternalError{Op: "validate", Detail: fmt.Sprintf("state %d targets %d, outside [0,%d)", i, s.Next, len(a.States))}
		}
	}
	return nil
}

// String lists one state per line, e.g. `0: 'a' -> accept`.
func (a *Automaton) String() string {
	var sb strings.Builder
	for i, s := range a.States {
		fmt.Fprintf(&sb, "%d: %s -> %s\n", i, Label(s), Target(s.Next))
	}
	return sb.String()
}

// Label returns the human readable transition label of s.
func Label(s State) string {
	switch s.Kind {
	case Literal:
		return strconv.QuoteRune(s.Rune)
	case Wildcard:
		return string(wildcardOp)
	case Jump:
		return string(epsilonOp)
	default:
		return s.Kind.String()
	}
}

// Target formats a Next value.
func Target(next int) string {
	if next == Accept {
		return "accept"
	}
	return strconv.Itoa(next)
}
