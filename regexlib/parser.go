package regexlib

type scope int

const (
	scopeTop   scope = iota
	scopeGroup       // inside ( ... )
	scopeArm         // right operand of '|', runs to the enclosing ')' or the end
)

type parser struct {
	lex *scanner
}

func newParser(pat string) *parser { return &parser{lex: newScanner(pat)} }

func (p *parser) parse() (*frag, error) { return p.parseScope(scopeTop, 0) }

func (p *parser) fail(pos int, code ErrorCode) error {
	return &SyntaxError{Pattern: p.lex.input, Pos: pos, Code: code}
}

// after reports whether the rune just before pos is the unescaped operator c.
func (p *parser) after(pos int, c rune) bool { return isUnescaped(p.lex.pattern, pos-1, c) }

// acceptStar consumes a '*' at the cursor, if there is one.
func (p *parser) acceptStar() bool {
	if p.lex.peek(starOp) {
		p.lex.pos++
		return true
	}
	return false
}

// parseScope consumes symbols until the scope ends and returns the fragment
// built for them. opened is the offset of the '(' for scopeGroup.
func (p *parser) parseScope(sc scope, opened int) (*frag, error) {
	f := newFrag()
	start := p.lex.pos
	for {
		sym, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch sym.Type {
		case SymEOF:
			if sc == scopeGroup {
				return nil, p.fail(opened, UnpairedLeftParen)
			}
			return f, nil

		case SymLiteral:
			if err := concatenate(f, p.atom(Literal, sym.Ch, sym.Star)); err != nil {
				return nil, err
			}

		case SymWildcard:
			if err := concatenate(f, p.atom(Wildcard, 0, p.lex.peek(starOp))); err != nil {
				return nil, err
			}

		case SymEpsilon:
			// ε* is ε; either way nothing is appended.
			p.acceptStar()

		case SymLParen:
			sub, err := p.group(sym.Pos)
			if err != nil {
				return nil, err
			}
			if err := concatenate(f, sub); err != nil {
				return nil, err
			}

		case SymRParen:
			switch {
			case sc == scopeTop:
				return nil, p.fail(sym.Pos, UnpairedRightParen)
			case p.after(sym.Pos, lparenOp):
				return nil, p.fail(sym.Pos, EmptyGroup)
			case p.after(sym.Pos, unionOp):
				return nil, p.fail(sym.Pos, TrailingAlternation)
			}
			if sc == scopeArm {
				// the enclosing group consumes its own ')'
				p.lex.pos = sym.Pos
			}
			return f, nil

		case SymUnion:
			if sym.Pos == start || p.after(sym.Pos, lparenOp) || p.after(sym.Pos, unionOp) {
				return nil, p.fail(sym.Pos, MisplacedAlternation)
			}
			if p.lex.pos >= len(p.lex.pattern) {
				return nil, p.fail(sym.Pos, TrailingAlternation)
			}
			rhs, err := p.parseScope(scopeArm, opened)
			if err != nil {
				return nil, err
			}
			union(f, rhs)

		case SymStar:
			return nil, p.closureError(sym.Pos)
		}
	}
}

// atom builds the fragment of one literal or wildcard, fusing a following '*'.
func (p *parser) atom(kind Kind, r rune, star bool) *frag {
	if star && p.acceptStar() {
		return starred(kind, r)
	}
	return single(kind, r)
}

// group parses the body of a parenthesised group whose '(' is at opened and
// applies a directly following '*'.
func (p *parser) group(opened int) (*frag, error) {
	sub, err := p.parseScope(scopeGroup, opened)
	if err != nil {
		return nil, err
	}
	if p.acceptStar() {
		if err := sub.closure(); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// closureError classifies a '*' that no operand claimed. Every valid star is
// consumed by the atom or group it follows.
func (p *parser) closureError(pos int) error {
	switch {
	case pos == 0:
		return p.fail(pos, LeadingClosure)
	case p.after(pos, starOp):
		return p.fail(pos, RepeatedClosure)
	default:
		return p.fail(pos, MisplacedClosure)
	}
}
