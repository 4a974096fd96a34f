package build

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/grammar"
)

// Builder lowers one parsed grammar.Document into an aqt.Root under a
// fixed dialect. A Builder is used for exactly one parse; it holds no
// state beyond the dialect's rule table.
type Builder struct {
	dialect aqt.Dialect
	rules   *dialectRules
}

// New returns a Builder for the given dialect.
func New(dialect aqt.Dialect) *Builder {
	return &Builder{dialect: dialect, rules: rulesFor(dialect)}
}

// Build lowers doc into the top-level AQT value.
func (b *Builder) Build(doc *grammar.Document) (*aqt.Root, error) {
	switch {
	case doc.Schema != nil:
		return b.buildSchemaCommand(doc.Schema)
	case doc.Query != nil:
		root, err := b.buildRegularQuery(doc.Query)
		if err != nil {
			return nil, err
		}
		return root, nil
	default:
		return nil, b.internalErr(doc.Pos, "empty document")
	}
}

func (b *Builder) unexpected(pos lexer.Position, msg string, expected []string) *gqlerr.Error {
	e := gqlerr.New(gqlerr.UnexpectedToken, pos, msg)
	e = gqlerr.WithDialect(e, b.dialect)
	if len(expected) > 0 {
		e = gqlerr.WithExpected(e, expected)
	}
	return e
}

func (b *Builder) dialectErr(sentinel *gqlerr.Error, pos lexer.Position) *gqlerr.Error {
	return gqlerr.WithDialect(gqlerr.WithPos(sentinel, pos), b.dialect)
}

func (b *Builder) arityErr(sentinel *gqlerr.Error, pos lexer.Position) *gqlerr.Error {
	return gqlerr.WithDialect(gqlerr.WithPos(sentinel, pos), b.dialect)
}

func (b *Builder) internalErr(pos lexer.Position, msg string) *gqlerr.Error {
	e := gqlerr.New(gqlerr.InternalError, pos, msg)
	return gqlerr.WithDialect(e, b.dialect)
}
