package build

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arbograph/gql/internal/aqt"
)

// anonymousName carries pos.Offset, recorded at the point of lexical
// recognition, straight into the sentinel name — never reconstructed
// after the fact (Design Notes, "position-based anonymous names").
func anonymousName(pos lexer.Position) string {
	return aqt.AnonymousPrefix + strconv.Itoa(pos.Offset)
}
