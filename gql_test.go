package gql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arbograph/gql"
	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
)

// Scenario 1 (spec §8.1): a bare START/RETURN with no patterns.
func TestParseStartReturn(t *testing.T) {
	tree, err := gql.Parse("start s = NODE(1) return s", gql.Default)
	require.NoError(t, err)
	require.NotNil(t, tree.Query)

	q := tree.Query
	require.Len(t, q.Start, 1)
	require.NotNil(t, q.Start[0].NodeById)
	require.Equal(t, "s", q.Start[0].NodeById.Name)
	require.Equal(t, []int64{1}, q.Start[0].NodeById.IDs)

	require.Equal(t, aqt.ReturnItemsKind, q.Return.Kind)
	require.Len(t, q.Return.Items, 1)
	require.Equal(t, "s", *q.Return.Items[0].Expr.Identifier)
}

// Scenario 2 (spec §8.2): a fixed relationship normalizes direction to OUT
// and carries an offset-derived anonymous relationship name.
func TestParseRelatedToDirectionAndAutoName(t *testing.T) {
	query := "start a = NODE(1) match a -[:KNOWS]-> (b) return a, b"
	tree, err := gql.Parse(query, gql.V2_0)
	require.NoError(t, err)

	q := tree.Query
	require.Len(t, q.Matches, 1)
	rel := q.Matches[0].RelatedTo
	require.NotNil(t, rel)
	require.Equal(t, aqt.Out, rel.Direction)
	require.Equal(t, []string{"KNOWS"}, rel.Types)
	require.Equal(t, "a", rel.From.Single.Name)
	require.Equal(t, "b", rel.To.Single.Name)
	require.Equal(t, aqt.AnonymousPrefix+"26", rel.RelName)
}

// Scenario 3 (spec §8.3): a variable-length optional relationship
// propagates optionality onto its far endpoint under v2_0 but not v1_9.
func TestParseVarLengthOptionalPropagation(t *testing.T) {
	query := "start a=node(0) match a -[r?*1..3]-> x return x"

	v2, err := gql.Parse(query, gql.V2_0)
	require.NoError(t, err)
	vlr := v2.Query.Matches[0].VarLengthRelatedTo
	require.NotNil(t, vlr)
	require.NotNil(t, vlr.To.SingleOptional)
	require.Nil(t, vlr.To.Single)
	require.Equal(t, 1, *vlr.Min)
	require.Equal(t, 3, *vlr.Max)
	require.Equal(t, "r", *vlr.RelBinding)
	require.True(t, vlr.Optional)

	v19, err := gql.Parse(query, gql.V1_9)
	require.NoError(t, err)
	vlr19 := v19.Query.Matches[0].VarLengthRelatedTo
	require.NotNil(t, vlr19)
	require.NotNil(t, vlr19.To.Single)
	require.Nil(t, vlr19.To.SingleOptional)
}

// Scenario 4 (spec §8.4): WITH splits a query into head and tail, and the
// WHERE following WITH filters the tail, not the head.
func TestParseWithBoundarySplitsHeadAndTail(t *testing.T) {
	query := "start n=node(0,1,2) with n order by ID(n) desc limit 2 where ID(n) = 1 return n"
	tree, err := gql.Parse(query, gql.Default)
	require.NoError(t, err)

	head := tree.Query
	require.NotNil(t, head.Start[0].NodeById)
	require.Equal(t, []int64{0, 1, 2}, head.Start[0].NodeById.IDs)
	require.Len(t, head.OrderBy, 1)
	require.True(t, head.OrderBy[0].Desc)
	require.NotNil(t, head.Limit)
	require.Nil(t, head.Where, "WITH's own WHERE belongs to the tail, not the head")

	tail := head.Tail
	require.NotNil(t, tail)
	require.NotNil(t, tail.Where)
	require.NotNil(t, tail.Where.Eq)
}

// Scenario 5 (spec §8.5): boolean-literal comparisons lower to the True()
// predicate form under ≥2.0 and stay plain literals under 1.9.
func TestParseBooleanLoweringByDialect(t *testing.T) {
	query := "start a = NODE(1) return true = false"

	v2, err := gql.Parse(query, gql.V2_0)
	require.NoError(t, err)
	eq := v2.Query.Return.Items[0].Expr.Eq
	require.NotNil(t, eq)
	require.True(t, eq.Left.True_)
	require.NotNil(t, eq.Right.Not)
	require.True(t, eq.Right.Not.True_)

	v19, err := gql.Parse(query, gql.V1_9)
	require.NoError(t, err)
	eq19 := v19.Query.Return.Items[0].Expr.Eq
	require.NotNil(t, eq19)
	require.False(t, eq19.Left.True_)
	require.NotNil(t, eq19.Left.BoolLiteral)
	require.True(t, *eq19.Left.BoolLiteral)
	require.NotNil(t, eq19.Right.BoolLiteral)
	require.False(t, *eq19.Right.BoolLiteral)
}

// Scenario 6 (spec §8.6) / P6: UNION chains fold left-associatively into a
// single Union with a chain-wide distinct flag, and mixing UNION/UNION ALL
// in one chain is rejected.
func TestParseUnionAssociativityAndDistinctCarry(t *testing.T) {
	all, err := gql.Parse("start s=NODE(1) return s UNION all start t=NODE(1) return t", gql.V2_0)
	require.NoError(t, err)
	require.NotNil(t, all.Union)
	require.Len(t, all.Union.Queries, 2)
	require.False(t, all.Union.Distinct)

	distinct, err := gql.Parse("start s=NODE(1) return s UNION start t=NODE(1) return t", gql.V2_0)
	require.NoError(t, err)
	require.NotNil(t, distinct.Union)
	require.True(t, distinct.Union.Distinct)

	_, err = gql.Parse("start s=NODE(1) return s UNION start t=NODE(1) return t UNION all start u=NODE(1) return u", gql.V2_0)
	require.Error(t, err)
	var gerr *gql.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, gqlerr.DialectFeatureError, gerr.Kind)
}

// P1: parse is a pure function — two parses of the same input/dialect
// produce structurally identical trees.
func TestParseIsDeterministic(t *testing.T) {
	query := "start a = NODE(1) match a -[:KNOWS]-> (b) where b.name = 'x' return a, b"
	first, err := gql.Parse(query, gql.V2_0)
	require.NoError(t, err)
	second, err := gql.Parse(query, gql.V2_0)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("parse is not deterministic:\n%s", diff)
	}
}

// P3: a construct gated to v2_0 (label SET) is rejected under v1_9 and
// accepted under v2_0.
func TestDialectGatingLabelSet(t *testing.T) {
	query := "start n = NODE(1) set n:Label"

	_, err := gql.Parse(query, gql.V1_9)
	require.Error(t, err)
	var gerr *gql.Error
	require.ErrorAs(t, err, &gerr)

	_, err = gql.Parse(query, gql.V2_0)
	require.NoError(t, err)
}

// P5: a relationship outside a named path never points IN; a left-pointing
// pattern has its endpoints swapped instead.
func TestDirectionNormalizationSwapsEndpoints(t *testing.T) {
	tree, err := gql.Parse("start a = NODE(1) match (a) <-[:KNOWS]- (b) return a, b", gql.Default)
	require.NoError(t, err)

	rel := tree.Query.Matches[0].RelatedTo
	require.NotNil(t, rel)
	require.NotEqual(t, aqt.In, rel.Direction)
	require.Equal(t, aqt.Out, rel.Direction)
	require.Equal(t, "b", rel.From.Single.Name)
	require.Equal(t, "a", rel.To.Single.Name)
}

// Named paths keep the author-written direction (no normalization).
func TestNamedPathPreservesDirection(t *testing.T) {
	tree, err := gql.Parse("start a = NODE(1) match p = (a) <-[:KNOWS]- (b) return p", gql.Default)
	require.NoError(t, err)

	path, ok := tree.Query.NamedPaths["p"]
	require.True(t, ok)
	require.Len(t, path.Segments, 1)
	rel := path.Segments[0].RelatedTo
	require.NotNil(t, rel)
	require.Equal(t, aqt.In, rel.Direction)
}
