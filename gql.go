// Package gql parses GQL queries into an Abstract Query Tree. Parse is the
// library's entire public surface: it never touches the filesystem, reads
// environment, or logs — those concerns live in cmd/gql and cmd/gql-repl.
package gql

import (
	"errors"

	"github.com/alecthomas/participle/v2"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/build"
	"github.com/arbograph/gql/internal/grammar"
	gqllexer "github.com/arbograph/gql/internal/lexer"
)

// Dialect selects which grammar rules and desugaring behavior a parse uses.
// It is an alias of aqt.Dialect so gqlerr.Error.Dialect and this package's
// Parse agree on one underlying type without either importing the other's
// concrete name.
type Dialect = aqt.Dialect

const (
	V1_9    = aqt.V1_9
	V2_0    = aqt.V2_0
	Default = aqt.Default
)

// AQT is the result of a successful Parse.
type AQT = aqt.Root

// Error is the structured error Parse returns on failure.
type Error = gqlerr.Error

// Parse lowers query into its Abstract Query Tree under dialect. A leading
// `CYPHER v1_9` or `CYPHER 2.0` directive in query overrides the dialect
// argument, matching the legacy per-query override convention.
func Parse(query string, dialect Dialect) (*AQT, error) {
	if directive, rest := grammar.StripDirective(query); directive != "" {
		dialect, query = Dialect(directive), rest
	}

	doc, err := grammar.Parse("", query)
	if err != nil {
		return nil, wrapParseError(err, dialect)
	}
	return build.New(dialect).Build(doc)
}

// wrapParseError normalizes a participle/lexer failure into a gqlerr.Error:
// lexical failures (from internal/lexer) keep their LexicalError kind, and
// a participle error becomes UnexpectedToken with participle's message and
// position. Expected is not populated.
func wrapParseError(err error, dialect Dialect) error {
	var lexErr *gqllexer.Error
	if errors.As(err, &lexErr) {
		return gqlerr.WithDialect(gqlerr.New(gqlerr.LexicalError, lexErr.Pos(), lexErr.Error()), dialect)
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		e := gqlerr.New(gqlerr.UnexpectedToken, perr.Position(), perr.Message())
		return gqlerr.WithDialect(e, dialect)
	}

	return err
}
