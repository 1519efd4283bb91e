package regexlib

import (
	"regexp"
	"strings"
	"testing"
)

// ------------------------------------------------------------------- simulator

// closure follows ε-moves from the given targets and returns the physical
// states reached, plus whether Accept was reached.
func closure(a *Automaton, targets []int) (map[int]bool, bool) {
	set := map[int]bool{}
	seen := map[int]bool{}
	accepted := false
	stack := append([]int(nil), targets...)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if i == Accept {
			accepted = true
			continue
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		if a.States[i].Kind != Jump {
			set[i] = true
			continue
		}
		for j := i; j < len(a.States) && a.States[j].Kind == Jump; j++ {
			stack = append(stack, a.States[j].Next)
		}
	}
	return set, accepted
}

func accepts(a *Automaton, in string) bool {
	cur, ok := closure(a, []int{0})
	for _, r := range in {
		var next []int
		for i := range cur {
			s := a.States[i]
			if s.Kind == Wildcard || (s.Kind == Literal && s.Rune == r) {
				next = append(next, s.Next)
			}
		}
		if len(next) == 0 {
			return false
		}
		cur, ok = closure(a, next)
	}
	return ok
}

// ------------------------------------------------------------------- oracle

// toGoRegexp rewrites a valid pattern in Go regexp syntax, anchored.
func toGoRegexp(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	syms, err := Scan(pattern)
	if err != nil {
		t.Fatalf("scan %q: %v", pattern, err)
	}
	var sb strings.Builder
	sb.WriteString(`^(?:`)
	for i := 0; i < len(syms); i++ {
		switch sym := syms[i]; sym.Type {
		case SymLiteral:
			sb.WriteString(regexp.QuoteMeta(string(sym.Ch)))
		case SymEpsilon:
			sb.WriteString(`(?:)`)
			if i+1 < len(syms) && syms[i+1].Type == SymStar {
				i++
			}
		case SymWildcard:
			sb.WriteString(`(?s:.)`)
		case SymLParen:
			sb.WriteString(`(?:`)
		default:
			sb.WriteRune(sym.Ch)
		}
	}
	sb.WriteString(`)$`)
	return regexp.MustCompile(sb.String())
}

// words returns every string over alphabet of length <= max.
func words(alphabet string, max int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < max; l++ {
		var next []string
		for _, w := range frontier {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func newNFA(t *testing.T, pat string) *Automaton {
	t.Helper()
	a, err := Build(pat)
	if err != nil {
		t.Fatalf("build %q: %v", pat, err)
	}
	return a
}

func acc(t *testing.T, a *Automaton, in string, want bool) {
	t.Helper()
	if got := accepts(a, in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v\n%s", a.Pattern, in, want, got, a)
	}
}
