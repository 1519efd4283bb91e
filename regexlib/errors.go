package regexlib

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("regexlib: syntax error")
	// ErrInternal is matched by every *InternalError. It signals a bug in the
	// builder, never a problem with the pattern.
	ErrInternal = errors.New("regexlib: internal error")
)

// ErrorCode identifies the kind of syntax error.
type ErrorCode int

const (
	DanglingEscape       ErrorCode = iota + 1 // `\` at end of pattern
	UnpairedRightParen                        // `)` without `(`
	UnpairedLeftParen                         // `(` without `)`
	EmptyGroup                                // `()`
	MisplacedAlternation                      // `|` at scope start or after `(` or `|`
	TrailingAlternation                       // `|` before `)` or end of pattern
	LeadingClosure                            // `*` at pattern start
	MisplacedClosure                          // `*` after `(` or `|`
	RepeatedClosure                           // `**`
)

var codeText = map[ErrorCode]string{
	DanglingEscape:       "dangling escape at end of pattern",
	UnpairedRightParen:   "unpaired ')'",
	UnpairedLeftParen:    "unpaired '('",
	EmptyGroup:           "empty group '()'",
	MisplacedAlternation: "'|' has no left operand",
	TrailingAlternation:  "'|' has no right operand",
	LeadingClosure:       "'*' at start of pattern",
	MisplacedClosure:     "'*' has no operand",
	RepeatedClosure:      "repeated '*'",
}

func (c ErrorCode) String() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// SyntaxError reports an invalid pattern. Pos is the rune offset of the
// offending character.
type SyntaxError struct {
	Pattern string
	Pos     int
	Code    ErrorCode
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regexlib: %s at offset %d in %q", e.Code, e.Pos, e.Pattern)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// InternalError reports a violated construction invariant.
type InternalError struct {
	Op     string
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("regexlib: internal error in %s: %s", e.Op, e.Detail)
}

func (e *InternalError) Unwrap() error { return ErrInternal }
