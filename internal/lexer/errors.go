package lexer

import "github.com/alecthomas/participle/v2/lexer"

// Error is a lexical error with position, mirroring the teacher's
// position-carrying LexerError with chainable builders instead of building
// a fresh struct at every call site.
type Error struct {
	msg string
	pos lexer.Position
	ch  rune
}

func (e *Error) Error() string {
	if e.ch != 0 {
		return e.pos.String() + ": " + e.msg + ": " + string(e.ch)
	}
	return e.pos.String() + ": " + e.msg
}

// Pos returns the byte offset at which the error was detected.
func (e *Error) Pos() lexer.Position { return e.pos }

func (e *Error) withPos(pos lexer.Position) *Error {
	return &Error{msg: e.msg, pos: pos, ch: e.ch}
}

func (e *Error) withChar(ch rune) *Error {
	return &Error{msg: e.msg, pos: e.pos, ch: ch}
}

// Sentinel lexical errors.
var (
	ErrUnterminatedString       = &Error{msg: "unterminated string"}
	ErrUnterminatedEscapedIdent = &Error{msg: "unterminated escaped identifier"}
	ErrUnexpectedCharacter      = &Error{msg: "unexpected character"}
)
