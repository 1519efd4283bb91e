// Package manifest reads files that name a batch of patterns:
//
//	// comments are skipped
//	digits = "(0|1|2|3|4|5|6|7|8|9)(0|1|2|3|4|5|6|7|8|9)*";
//	escaped = `a\*b`;
//
// Raw strings avoid Go escape rules, so backslash escapes of the pattern
// language are best written inside backquotes.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/tliron/commonlog"
	"golang.org/x/text/unicode/norm"

	"regexnfa/regexlib"
)

type File struct {
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Pos     lexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | RawString) ';'"`
}

var parser = participle.MustBuild[File](
	participle.Unquote("String"),
	// raw strings keep their body verbatim, backslashes included
	participle.Map(func(t lexer.Token) (lexer.Token, error) {
		t.Value = strings.TrimSuffix(strings.TrimPrefix(t.Value, "`"), "`")
		return t, nil
	}, "RawString"),
)

func logger() commonlog.Logger { return commonlog.GetLogger("regexviz.manifest") }

// Parse reads a manifest. Patterns come back NFC-normalised so that a
// precomposed and a decomposed spelling build the same automaton.
func Parse(filename string, data []byte) (*File, error) {
	f, err := parser.ParseBytes(filename, data)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*Entry, len(f.Entries))
	for _, e := range f.Entries {
		if prev, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate entry %q, first defined at %s", e.Pos, e.Name, prev.Pos)
		}
		seen[e.Name] = e
		e.Pattern = norm.NFC.String(e.Pattern)
	}
	logger().Debugf("%s: %d entries", filename, len(f.Entries))
	return f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, data)
}

// Result is the outcome of building one entry. Exactly one of Automaton and
// Err is set.
type Result struct {
	Entry     *Entry
	Automaton *regexlib.Automaton
	Err       error
}

// Compile builds every entry in order. A failing entry does not stop the
// ones after it.
func (f *File) Compile() []Result {
	results := make([]Result, len(f.Entries))
	for i, e := range f.Entries {
		a, err := regexlib.Build(e.Pattern)
		if err != nil {
			logger().Errorf("%s: %s: %s", e.Pos, e.Name, err)
			err = fmt.Errorf("%s: %s: %w", e.Pos, e.Name, err)
		}
		results[i] = Result{Entry: e, Automaton: a, Err: err}
	}
	return results
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
