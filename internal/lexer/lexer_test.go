package lexer

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, input string) []lexer.TokenType {
	t.Helper()
	c := NewCursor("", input)
	var types []lexer.TokenType
	for {
		tok, err := c.Next()
		require.NoError(t, err)
		if tok.Type == EOF {
			return types
		}
		types = append(types, tok.Type)
	}
}

func TestNextScansPunctuationAndOperators(t *testing.T) {
	got := tokenTypes(t, "(a)-[:KNOWS]->{x: 1} <> <= >= =~ ..")
	want := []lexer.TokenType{
		LParen, Ident, RParen, Minus, LBracket, Colon, Ident, RBracket, Minus, Greater,
		LBrace, Ident, Colon, Int, RBrace,
		NotEqual, LessEqual, GreaterEqual, RegexMatch, Range,
	}
	require.Equal(t, want, got)
}

func TestNextTracksByteOffset(t *testing.T) {
	c := NewCursor("", "start a")
	first, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 0, first.Pos.Offset)

	second, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 6, second.Pos.Offset)
}

func TestNextSkipsWhitespaceAndLineComments(t *testing.T) {
	got := tokenTypes(t, "a // a comment\n  b")
	require.Equal(t, []lexer.TokenType{Ident, Ident}, got)
}

func TestNextScansFloatsAndInts(t *testing.T) {
	c := NewCursor("", "1 1.5 .5 1e10 1e+10 1.5e-3 1..3")
	var values []string
	var types []lexer.TokenType
	for {
		tok, err := c.Next()
		require.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		types = append(types, tok.Type)
		values = append(values, tok.Value)
	}
	require.Equal(t, []lexer.TokenType{Int, Float, Float, Float, Float, Float, Int, Range, Int}, types)
	require.Equal(t, []string{"1", "1.5", ".5", "1e10", "1e+10", "1.5e-3", "1", "..", "3"}, values)
}

func TestNextScansEscapedIdent(t *testing.T) {
	c := NewCursor("", "`my col``umn`")
	tok, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, EscapedIdent, tok.Type)
	require.Equal(t, "my col`umn", UnescapeIdent(tok.Value))
}

func TestNextRejectsUnterminatedString(t *testing.T) {
	c := NewCursor("", `"no closing quote`)
	_, err := c.Next()
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
}

func TestNextRejectsUnterminatedEscapedIdent(t *testing.T) {
	c := NewCursor("", "`no closing tick")
	_, err := c.Next()
	require.Error(t, err)
}

func TestNextRejectsUnexpectedCharacter(t *testing.T) {
	c := NewCursor("", "$")
	_, err := c.Next()
	require.Error(t, err)
}

func TestUnescapeDecodesEscapeSequences(t *testing.T) {
	require.Equal(t, "a\tb\nc", Unescape(`"a\tb\nc"`))
	require.Equal(t, `it's`, Unescape(`'it\'s'`))
}
