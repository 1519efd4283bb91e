package regexlib

import (
	"github.com/tliron/commonlog"
)

// Build compiles pattern into an automaton.
//
// Grammar: any rune is a literal; `\` escapes the next rune (`\0 \a \b \t \n
// \v \f \e` decode to control characters); `ε` matches the empty string; `·`
// matches any rune; `(` `)` group; `|` separates alternatives; a postfix `*`
// repeats the preceding literal, wildcard or group zero or more times.
func Build(pattern string) (*Automaton, error) {
	log := commonlog.GetLogger("regexlib")

	body, err := newParser(pattern).parse()
	if err != nil {
		log.Debugf("build %q: %s", pattern, err)
		return nil, err
	}

	root := newFrag()
	root.pushPlaceholder()
	root.tails = []int{0}
	if err := concatenate(root, body); err != nil {
		return nil, err
	}
	root.padTail()
	if err := root.link(root.tails, []int{Accept}); err != nil {
		return nil, err
	}

	a := &Automaton{Pattern: pattern, States: expand(root.nodes, root.table)}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("build %q: %d placeholders resolved into %d states", pattern, len(root.table), len(a.States))
	return a, nil
}

// MustBuild is like Build but panics if the pattern does not compile.
func MustBuild(pattern string) *Automaton {
	a, err := Build(pattern)
	if err != nil {
		panic(err)
	}
	return a
}
