package gqlerr_test

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
)

func TestKindString(t *testing.T) {
	cases := map[gqlerr.Kind]string{
		gqlerr.LexicalError:        "LexicalError",
		gqlerr.UnexpectedToken:     "UnexpectedToken",
		gqlerr.DialectFeatureError: "DialectFeatureError",
		gqlerr.SemanticArityError:  "SemanticArityError",
		gqlerr.InternalError:       "InternalError",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
	require.Equal(t, "UnknownError", gqlerr.Kind(99).String())
}

func TestErrorFormatsWithoutExpected(t *testing.T) {
	pos := lexer.Position{Filename: "query", Offset: 5, Line: 1, Column: 6}
	err := gqlerr.New(gqlerr.LexicalError, pos, "bad token")
	require.Equal(t, pos.String()+": LexicalError: bad token", err.Error())
}

func TestErrorFormatsWithExpected(t *testing.T) {
	pos := lexer.Position{Offset: 0}
	err := gqlerr.New(gqlerr.UnexpectedToken, pos, "unexpected ';'")
	err = gqlerr.WithExpected(err, []string{"RETURN", "WITH"})
	require.Contains(t, err.Error(), "expected one of [RETURN WITH]")
}

func TestWithPosDialectExpectedReturnCopies(t *testing.T) {
	original := gqlerr.ErrUnionNotSupported
	pos := lexer.Position{Offset: 10}

	anchored := gqlerr.WithPos(original, pos)
	require.NotSame(t, original, anchored)
	require.Equal(t, lexer.Position{}, original.Pos, "sentinel is not mutated")
	require.Equal(t, pos, anchored.Pos)

	dialected := gqlerr.WithDialect(anchored, aqt.V1_9)
	require.NotSame(t, anchored, dialected)
	require.Equal(t, aqt.Dialect(""), anchored.Dialect, "previous copy is not mutated")
	require.Equal(t, aqt.V1_9, dialected.Dialect)

	expected := gqlerr.WithExpected(dialected, []string{"x"})
	require.NotSame(t, dialected, expected)
	require.Nil(t, dialected.Expected)
	require.Equal(t, []string{"x"}, expected.Expected)
}

func TestSentinelsAreDistinctDialectFeatureErrors(t *testing.T) {
	sentinels := []*gqlerr.Error{
		gqlerr.ErrUnionNotSupported,
		gqlerr.ErrNullablePostfixNotSupported,
		gqlerr.ErrLabelSetNotSupported,
		gqlerr.ErrMatchWithoutStartNotSupported,
		gqlerr.ErrDeletePropertyNotSupported,
		gqlerr.ErrSchemaDDLNotSupported,
		gqlerr.ErrPatternPredicateNotSupported,
		gqlerr.ErrReduceNotSupported,
		gqlerr.ErrComprehensionNotSupported,
		gqlerr.ErrGenericCaseNotSupported,
		gqlerr.ErrTypeSeparatorMismatch,
	}
	seen := make(map[string]bool)
	for _, s := range sentinels {
		require.Equal(t, gqlerr.DialectFeatureError, s.Kind)
		require.False(t, seen[s.Message], "duplicate sentinel message: %s", s.Message)
		seen[s.Message] = true
	}
}

func TestSemanticArityErrorsAreTagged(t *testing.T) {
	require.Equal(t, gqlerr.SemanticArityError, gqlerr.ErrIndexWithoutProperty.Kind)
	require.Equal(t, gqlerr.SemanticArityError, gqlerr.ErrCompositeIndex.Kind)
}
