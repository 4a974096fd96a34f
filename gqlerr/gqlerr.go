// Package gqlerr defines the structured error values the parser returns.
// Error mirrors the teacher's position-carrying LexerError
// (internal/lexer.Error) generalized beyond lexical failures: a closed set
// of Kinds, chainable unexported builders, and sentinel values for the
// common cases.
package gqlerr

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arbograph/gql/internal/aqt"
)

// Kind is the closed set of error categories the parser can report.
type Kind int

const (
	// LexicalError is an illegal character, unterminated string, bad
	// escape, or malformed number.
	LexicalError Kind = iota
	// UnexpectedToken is a parse failure carrying the expected set.
	UnexpectedToken
	// DialectFeatureError is a construct valid only in another dialect.
	DialectFeatureError
	// SemanticArityError is a composite-property index, or an index
	// without properties.
	SemanticArityError
	// InternalError indicates a builder invariant violation — never
	// triggered by well-formed input.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case LexicalError:
		return "LexicalError"
	case UnexpectedToken:
		return "UnexpectedToken"
	case DialectFeatureError:
		return "DialectFeatureError"
	case SemanticArityError:
		return "SemanticArityError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Error is the single error type surfaced to callers. Every error carries
// the byte offset it was detected at; the parser stops at the first one
// (§7 policy: surfaced, never recovered, no partial AQT).
type Error struct {
	Kind     Kind
	Pos      lexer.Position
	Dialect  aqt.Dialect
	Message  string
	Expected []string
}

func (e *Error) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("%s: %s: %s (expected one of %v)", e.Pos, e.Kind, e.Message, e.Expected)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

func (e *Error) withPos(pos lexer.Position) *Error {
	n := *e
	n.Pos = pos
	return &n
}

func (e *Error) withDialect(d aqt.Dialect) *Error {
	n := *e
	n.Dialect = d
	return &n
}

func (e *Error) withExpected(expected []string) *Error {
	n := *e
	n.Expected = expected
	return &n
}

// New builds an Error at the given position.
func New(kind Kind, pos lexer.Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// WithDialect returns a copy of err with Dialect set, used when a dialect
// gate rejects a construct.
func WithDialect(err *Error, d aqt.Dialect) *Error {
	return err.withDialect(d)
}

// WithPos returns a copy of err anchored at pos, used when an error value
// constructed without position information (e.g. a sentinel) needs one.
func WithPos(err *Error, pos lexer.Position) *Error {
	return err.withPos(pos)
}

// WithExpected returns a copy of err carrying the expected-token set.
func WithExpected(err *Error, expected []string) *Error {
	return err.withExpected(expected)
}

// Sentinel dialect-feature errors, built without position/dialect —
// callers anchor them with WithPos/WithDialect at the rejection site.
var (
	ErrUnionNotSupported           = &Error{Kind: DialectFeatureError, Message: "UNION is not supported in this dialect"}
	ErrNullablePostfixNotSupported = &Error{Kind: DialectFeatureError, Message: "the ?/! property postfix is not supported in this dialect"}
	ErrLabelSetNotSupported        = &Error{Kind: DialectFeatureError, Message: "SET/REMOVE on labels is not supported in this dialect"}
	ErrMatchWithoutStartNotSupported = &Error{Kind: DialectFeatureError, Message: "MATCH without a preceding START is not supported in this dialect"}
	ErrDeletePropertyNotSupported  = &Error{Kind: DialectFeatureError, Message: "DELETE on a property is not supported in this dialect; use REMOVE"}
	ErrSchemaDDLNotSupported       = &Error{Kind: DialectFeatureError, Message: "schema commands are not supported in this dialect"}
	ErrPatternPredicateNotSupported = &Error{Kind: DialectFeatureError, Message: "a pattern used as a predicate is not supported in this dialect"}

	ErrReduceNotSupported        = &Error{Kind: DialectFeatureError, Message: "reduce(...) is not supported in this dialect"}
	ErrComprehensionNotSupported = &Error{Kind: DialectFeatureError, Message: "list comprehension/extract syntax is not supported in this dialect"}
	ErrGenericCaseNotSupported   = &Error{Kind: DialectFeatureError, Message: "a scrutinee-less CASE is not supported in this dialect"}
	ErrTypeSeparatorMismatch     = &Error{Kind: DialectFeatureError, Message: "this relationship-type separator is not valid in this dialect"}

	ErrIndexWithoutProperty = &Error{Kind: SemanticArityError, Message: "an index requires at least one property"}
	ErrCompositeIndex       = &Error{Kind: SemanticArityError, Message: "a composite (multi-property) index is not supported"}
)
