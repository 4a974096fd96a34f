package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	gqllexer "github.com/arbograph/gql/internal/lexer"
)

// parser is the single permissive participle grammar shared by both
// dialects: it accepts every syntactic form either dialect allows (UNION,
// `?`/`!` postfixes, both `|`/`|:` type-list separators, bare node
// identifiers) and leaves dialect-specific acceptance or rejection to
// internal/build's AQT construction pass, per the teacher's participle
// setup in dialects/cypher/grammar/parser.go.
var parser = participle.MustBuild[Document](
	participle.Lexer(gqllexer.New()),
	participle.UseLookahead(10),
	participle.CaseInsensitive("Ident"),
)

// Parse builds a concrete syntax tree for the given query body. The
// "cypher v1_9 "/"cypher 2.0 " dialect directive, if present, must already
// be stripped by StripDirective — the grammar itself knows nothing about
// it.
func Parse(filename, query string) (*Document, error) {
	return parser.ParseString(filename, query)
}

// StripDirective recognizes a leading "cypher v1_9 " or "cypher 2.0 "
// directive and returns the directive's dialect name (empty if absent)
// along with the remaining query text. This is a small hand-written
// pre-scan kept outside the participle grammar, the same way the teacher
// keeps shebang/semicolon handling (Script.Semi) outside the core Cypher
// grammar.
func StripDirective(query string) (dialect, rest string) {
	trimmed := strings.TrimLeft(query, " \t\r\n")
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "cypher v1_9 "):
		return "v1_9", trimmed[len("cypher v1_9 "):]
	case strings.HasPrefix(lower, "cypher 2.0 "):
		return "v2_0", trimmed[len("cypher 2.0 "):]
	default:
		return "", query
	}
}
