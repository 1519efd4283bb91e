package regexlib

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

// ------------------------------------------------------------------- scenarios

func TestBuildSingleLiteral(t *testing.T) {
	a := newNFA(t, "a")
	assert.DeepEqual(t, a.States, []State{{Kind: Literal, Rune: 'a', Next: Accept}})
	acc(t, a, "a", true)
	acc(t, a, "", false)
	acc(t, a, "aa", false)
}

func TestBuildAlternation(t *testing.T) {
	a := newNFA(t, "a|b")
	acc(t, a, "a", true)
	acc(t, a, "b", true)
	acc(t, a, "ab", false)
	acc(t, a, "", false)
}

func TestBuildStar(t *testing.T) {
	a := newNFA(t, "a*")
	for _, in := range []string{"", "a", "aa", "aaa"} {
		acc(t, a, in, true)
	}
	acc(t, a, "b", false)
	acc(t, a, "ab", false)
}

func TestBuildGroupThenLiteral(t *testing.T) {
	a := newNFA(t, "(a|b)c")
	acc(t, a, "ac", true)
	acc(t, a, "bc", true)
	acc(t, a, "a", false)
	acc(t, a, "c", false)
}

func TestBuildEmptyPattern(t *testing.T) {
	for _, pat := range []string{"", "ε", "ε*", "(ε)", "(ε)*"} {
		a := newNFA(t, pat)
		assert.DeepEqual(t, a.States, []State{{Kind: Jump, Next: Accept}})
		acc(t, a, "", true)
		acc(t, a, "a", false)
	}
}

func TestBuildPlainSequenceHasNoJumps(t *testing.T) {
	a := newNFA(t, "abc")
	want := []State{
		{Kind: Literal, Rune: 'a', Next: 1},
		{Kind: Literal, Rune: 'b', Next: 2},
		{Kind: Literal, Rune: 'c', Next: Accept},
	}
	if diff := cmp.Diff(want, a.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildStarShape(t *testing.T) {
	a := newNFA(t, "a*")
	want := []State{
		{Kind: Jump, Next: 2},
		{Kind: Jump, Next: Accept},
		{Kind: Literal, Rune: 'a', Next: 3},
		{Kind: Jump, Next: 2},
		{Kind: Jump, Next: Accept},
	}
	if diff := cmp.Diff(want, a.States); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWildcard(t *testing.T) {
	a := newNFA(t, "a·c")
	acc(t, a, "abc", true)
	acc(t, a, "a·c", true)
	acc(t, a, "aλc", true)
	acc(t, a, "ac", false)

	star := newNFA(t, "·*z")
	acc(t, star, "z", true)
	acc(t, star, "xyz", true)
	acc(t, star, "zy", false)
}

func TestBuildEscapes(t *testing.T) {
	a := newNFA(t, `\t\n\e\0\q\\\*\|\(\)\ε\·`)
	want := []rune{'\t', '\n', 0x1b, 0, 'q', '\\', '*', '|', '(', ')', 'ε', '·'}
	assert.Equal(t, len(a.States), len(want))
	for i, r := range want {
		assert.Equal(t, a.States[i].Kind, Literal)
		assert.Equal(t, a.States[i].Rune, r)
	}
	acc(t, a, "\t\n\x1b\x00q\\*|()ε·", true)

	star := newNFA(t, `\**`)
	acc(t, star, "", true)
	acc(t, star, "***", true)
	acc(t, star, "a", false)
}

func TestBuildNullablePrefix(t *testing.T) {
	// the empty path through a* must still reach b
	a := newNFA(t, "(a*b)")
	acc(t, a, "b", true)
	acc(t, a, "aab", true)
	acc(t, a, "a", false)

	b := newNFA(t, "x(a*|b)y")
	acc(t, b, "xy", true)
	acc(t, b, "xaay", true)
	acc(t, b, "xby", true)
	acc(t, b, "xaby", false)
}

func TestBuildNestedClosures(t *testing.T) {
	a := newNFA(t, "((ab)*c)*")
	for _, in := range []string{"", "c", "abc", "ababcc", "cabc"} {
		acc(t, a, in, true)
	}
	for _, in := range []string{"ab", "a", "abca", "cb"} {
		acc(t, a, in, false)
	}
}

// ------------------------------------------------------------------- properties

var validPatterns = []string{
	"a", "ab", "a|b", "a*", "(a|b)c", "a|bc*", "(ab|a)*c", "a(b|c)*d",
	"(a|ε)b", "a|ε", "ε|a", "(a*)*", "(a*b*)*", "((a|b)*c|d)*", "a(b(c|d)*)*",
	"(a|b|c)(a|b|c)", "a*b*c*", "(ab)*|(ba)*", "·", "·*a", "a·*", "(a·)*",
	"(a|(b|(c|ε)))*", "εa*ε", "(((a)))", "(a)*(b)*", "a|b|c|ε", "(a|b*)(c|ε)",
}

func TestBuildAgreesWithGoRegexp(t *testing.T) {
	for _, pat := range validPatterns {
		t.Run(pat, func(t *testing.T) {
			a := newNFA(t, pat)
			re := toGoRegexp(t, pat)
			for _, w := range words("abcd", 4) {
				if got, want := accepts(a, w), re.MatchString(w); got != want {
					t.Fatalf("%q on %q: nfa %v, regexp %v\n%s", pat, w, got, want, a)
				}
			}
		})
	}
}

func TestBuildOutputInvariants(t *testing.T) {
	for _, pat := range validPatterns {
		a := newNFA(t, pat)
		assert.NilError(t, a.Validate(), pat)
		for i, s := range a.States {
			assert.Assert(t, s.Kind == Literal || s.Kind == Wildcard || s.Kind == Jump, "%s: state %d", pat, i)
		}
	}
}

func TestConcatenationLanguage(t *testing.T) {
	pairs := [][2]string{{"a|b", "c*"}, {"a*", "(b|ε)"}, {"(ab)*", "a"}, {"ε", "a|b"}}
	for _, p := range pairs {
		left, right := newNFA(t, p[0]), newNFA(t, p[1])
		both := newNFA(t, "("+p[0]+")("+p[1]+")")
		for _, w := range words("abc", 4) {
			want := false
			for cut := 0; cut <= len(w); cut++ {
				if accepts(left, w[:cut]) && accepts(right, w[cut:]) {
					want = true
					break
				}
			}
			acc(t, both, w, want)
		}
	}
}

func TestUnionLanguage(t *testing.T) {
	pairs := [][2]string{{"ab", "a*"}, {"(a|b)c", "c"}, {"ε", "b*"}}
	for _, p := range pairs {
		left, right := newNFA(t, p[0]), newNFA(t, p[1])
		either := newNFA(t, p[0]+"|"+p[1])
		for _, w := range words("abc", 3) {
			acc(t, either, w, accepts(left, w) || accepts(right, w))
		}
	}
}

func TestStarLanguage(t *testing.T) {
	for _, pat := range []string{"ab", "a|bc", "a*b"} {
		inner := newNFA(t, pat)
		star := newNFA(t, "("+pat+")*")
		// w is in L(inner)* iff it splits into pieces each accepted by inner
		var in func(w string) bool
		in = func(w string) bool {
			if w == "" {
				return true
			}
			for cut := 1; cut <= len(w); cut++ {
				if accepts(inner, w[:cut]) && in(w[cut:]) {
					return true
				}
			}
			return false
		}
		for _, w := range words("abc", 4) {
			acc(t, star, w, in(w))
		}
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	for _, pat := range validPatterns {
		a := newNFA(t, pat)
		again := expand(a.States, nil)
		if diff := cmp.Diff(a.States, again); diff != "" {
			t.Fatalf("%q: second expansion changed states:\n%s", pat, diff)
		}
	}
}

// ------------------------------------------------------------------- errors

func TestBuildSyntaxErrors(t *testing.T) {
	cases := []struct {
		pattern string
		code    ErrorCode
		pos     int
	}{
		{"a(", UnpairedLeftParen, 1},
		{"(a|b", UnpairedLeftParen, 0},
		{"((a)", UnpairedLeftParen, 0},
		{"*a", LeadingClosure, 0},
		{"()", EmptyGroup, 1},
		{"a)", UnpairedRightParen, 1},
		{"a|b)", UnpairedRightParen, 3},
		{`a\`, DanglingEscape, 1},
		{"|a", MisplacedAlternation, 0},
		{"a||b", MisplacedAlternation, 2},
		{"(|a)", MisplacedAlternation, 1},
		{"(a|)", TrailingAlternation, 3},
		{"a|", TrailingAlternation, 1},
		{"a**", RepeatedClosure, 2},
		{"(a)**", RepeatedClosure, 4},
		{"ε**", RepeatedClosure, 2},
		{"(*a)", MisplacedClosure, 1},
		{"a|*b", MisplacedClosure, 2},
	}
	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			a, err := Build(tc.pattern)
			assert.Assert(t, a == nil)
			assert.ErrorIs(t, err, ErrSyntax)
			var se *SyntaxError
			assert.Assert(t, errors.As(err, &se))
			assert.Equal(t, se.Code, tc.code)
			assert.Equal(t, se.Pos, tc.pos)
			assert.Equal(t, se.Pattern, tc.pattern)
		})
	}
}

func TestEscapedOperatorsAreNotSyntaxErrors(t *testing.T) {
	for _, pat := range []string{`\)`, `\|a`, `\*a`, `(a\|)`, `(\()`, `\\(a)`} {
		_, err := Build(pat)
		assert.NilError(t, err, pat)
	}
	_, err := Build(`\\)`)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Build("a(")
	assert.ErrorContains(t, err, "unpaired '('")
	assert.Assert(t, strings.Contains(err.Error(), `"a("`))
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.Assert(t, ok)
		assert.ErrorIs(t, err, ErrSyntax)
	}()
	MustBuild("()")
}

// ------------------------------------------------------------------- Bench (quick)

func BenchmarkBuildLong(b *testing.B) {
	pat := strings.Repeat("(a|b)*c", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MustBuild(pat)
	}
}
