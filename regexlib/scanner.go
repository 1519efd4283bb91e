package regexlib

import "strconv"

const (
	escapeOp   = '\\'
	epsilonOp  = 'ε'
	wildcardOp = '·'
	lparenOp   = '('
	rparenOp   = ')'
	unionOp    = '|'
	starOp     = '*'
)

// SymbolType classifies a scanned symbol.
type SymbolType int

const (
	SymEOF      SymbolType = iota
	SymLiteral             // plain or escaped literal rune
	SymEpsilon             // ε
	SymWildcard            // ·
	SymLParen              // (
	SymRParen              // )
	SymUnion               // |
	SymStar                // *
)

var symbolNames = [...]string{
	SymEOF:      "EOF",
	SymLiteral:  "literal",
	SymEpsilon:  "epsilon",
	SymWildcard: "wildcard",
	SymLParen:   "lparen",
	SymRParen:   "rparen",
	SymUnion:    "union",
	SymStar:     "star",
}

func (t SymbolType) String() string {
	if t >= 0 && int(t) < len(symbolNames) {
		return symbolNames[t]
	}
	return "SymbolType(" + strconv.Itoa(int(t)) + ")"
}

var operators = map[rune]SymbolType{
	epsilonOp:  SymEpsilon,
	wildcardOp: SymWildcard,
	lparenOp:   SymLParen,
	rparenOp:   SymRParen,
	unionOp:    SymUnion,
	starOp:     SymStar,
}

var escapes = map[rune]rune{
	'0': 0x00,
	'a': '\a',
	'b': '\b',
	't': '\t',
	'n': '\n',
	'v': '\v',
	'f': '\f',
	'e': 0x1b,
}

// Symbol is one unit of pattern text.
type Symbol struct {
	Type SymbolType
	Ch   rune // literal value, or the operator character
	Pos  int  // rune offset of the first character
	// Star is set on a literal directly followed by '*'. The star itself is
	// left for the caller to consume.
	Star bool
}

type scanner struct {
	input   string
	pattern []rune
	pos     int
}

func newScanner(s string) *scanner { return &scanner{input: s, pattern: []rune(s)} }

func (s *scanner) peek(r rune) bool { return s.pos < len(s.pattern) && s.pattern[s.pos] == r }

// next returns the symbol at the cursor and advances past it: one rune for a
// literal or operator, two for an escape sequence.
func (s *scanner) next() (Symbol, error) {
	if s.pos >= len(s.pattern) {
		return Symbol{Type: SymEOF, Pos: s.pos}, nil
	}
	start := s.pos
	r := s.pattern[s.pos]
	s.pos++
	if r == escapeOp {
		if s.pos >= len(s.pattern) {
			return Symbol{}, &SyntaxError{Pattern: s.input, Pos: start, Code: DanglingEscape}
		}
		r = unescape(s.pattern[s.pos])
		s.pos++
		return Symbol{Type: SymLiteral, Ch: r, Pos: start, Star: s.peek(starOp)}, nil
	}
	if typ, ok := operators[r]; ok {
		return Symbol{Type: typ, Ch: r, Pos: start}, nil
	}
	return Symbol{Type: SymLiteral, Ch: r, Pos: start, Star: s.peek(starOp)}, nil
}

func unescape(r rune) rune {
	if e, ok := escapes[r]; ok {
		return e
	}
	return r
}

// isUnescaped reports whether text[i] is c and is not itself escaped, i.e. it
// is preceded by an even number of escape markers.
func isUnescaped(text []rune, i int, c rune) bool {
	if i < 0 || i >= len(text) || text[i] != c {
		return false
	}
	escaped := false
	for j := i - 1; j >= 0 && text[j] == escapeOp; j-- {
		escaped = !escaped
	}
	return !escaped
}

// Scan returns the symbols of pattern in order, without the final EOF.
func Scan(pattern string) ([]Symbol, error) {
	s := newScanner(pattern)
	var out []Symbol
	for {
		sym, err := s.next()
		if err != nil {
			return nil, err
		}
		if sym.Type == SymEOF {
			return out, nil
		}
		out = append(out, sym)
	}
}
