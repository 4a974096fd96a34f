package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbograph/gql/gqlerr"
	"github.com/arbograph/gql/internal/aqt"
	"github.com/arbograph/gql/internal/grammar"
)

func buildQuery(t *testing.T, query string, dialect aqt.Dialect) (*aqt.Root, error) {
	t.Helper()
	doc, err := grammar.Parse("", query)
	require.NoError(t, err)
	return New(dialect).Build(doc)
}

func TestSchemaDDLGatedByDialect(t *testing.T) {
	_, err := buildQuery(t, "create index on :Person(name)", aqt.V1_9)
	require.Error(t, err)
	var gerr *gqlerr.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, gqlerr.DialectFeatureError, gerr.Kind)

	root, err := buildQuery(t, "create index on :Person(name)", aqt.V2_0)
	require.NoError(t, err)
	require.NotNil(t, root.CreateIndex)
	require.Equal(t, "Person", root.CreateIndex.Label)
	require.Equal(t, []string{"name"}, root.CreateIndex.Properties)
}

func TestLabelSetGatedByDialect(t *testing.T) {
	_, err := buildQuery(t, "start n = NODE(1) set n:Label", aqt.V1_9)
	require.Error(t, err)

	_, err = buildQuery(t, "start n = NODE(1) set n:Label", aqt.V2_0)
	require.NoError(t, err)
}

func TestDeletePropertyGatedToV19(t *testing.T) {
	root, err := buildQuery(t, "start n = NODE(1) delete n.name", aqt.V1_9)
	require.NoError(t, err)
	require.NotNil(t, root.Query.Updates[0].DeleteProperty)

	_, err = buildQuery(t, "start n = NODE(1) delete n.name", aqt.V2_0)
	require.Error(t, err)
}

func TestReduceGatedToV20(t *testing.T) {
	query := "start a = NODE(1) return reduce(acc = 0, x IN [1, 2, 3] | acc + x)"

	_, err := buildQuery(t, query, aqt.V1_9)
	require.Error(t, err)

	root, err := buildQuery(t, query, aqt.V2_0)
	require.NoError(t, err)
	require.NotNil(t, root.Query.Return.Items[0].Expr.ReduceFunction)
}

func TestMatchWithoutStartGatedByDialect(t *testing.T) {
	_, err := buildQuery(t, "match (a) return a", aqt.V1_9)
	require.Error(t, err)

	root, err := buildQuery(t, "match (a) return a", aqt.V2_0)
	require.NoError(t, err)
	require.Empty(t, root.Query.Start)
}

func TestRelTypeSeparatorGatedByDialect(t *testing.T) {
	_, err := buildQuery(t, "start a = NODE(1) match a -[:A|B]-> (b) return b", aqt.V1_9)
	require.NoError(t, err)
	_, err = buildQuery(t, "start a = NODE(1) match a -[:A|B]-> (b) return b", aqt.V2_0)
	require.Error(t, err)

	_, err = buildQuery(t, "start a = NODE(1) match a -[:A|:B]-> (b) return b", aqt.V2_0)
	require.NoError(t, err)
	_, err = buildQuery(t, "start a = NODE(1) match a -[:A|:B]-> (b) return b", aqt.V1_9)
	require.Error(t, err)
}

func TestUnionGatedByDialect(t *testing.T) {
	query := "start s = NODE(1) return s UNION start t = NODE(1) return t"
	_, err := buildQuery(t, query, aqt.V1_9)
	require.Error(t, err)

	_, err = buildQuery(t, query, aqt.V2_0)
	require.NoError(t, err)
}

func TestCreateUniquePreservesWrittenDirection(t *testing.T) {
	root, err := buildQuery(t, "start a = NODE(1) create unique (a) <-[:KNOWS]- (b)", aqt.V2_0)
	require.NoError(t, err)

	require.Len(t, root.Query.Updates, 1)
	link := root.Query.Updates[0].UniqueLink
	require.NotNil(t, link)
	require.Equal(t, aqt.In, link.Direction, "CREATE UNIQUE keeps the author-written direction")
}

func TestShortestPathWithVarLengthRange(t *testing.T) {
	root, err := buildQuery(t, "start a = NODE(1) match shortestPath( (a) -[*..15]-> (b) ) return a", aqt.V2_0)
	require.NoError(t, err)

	require.Len(t, root.Query.Matches, 1)
	sp := root.Query.Matches[0].ShortestPath
	require.NotNil(t, sp)
	require.True(t, sp.Single)
	require.NotNil(t, sp.Max)
	require.Equal(t, 15, *sp.Max)
	require.Equal(t, "a", sp.From.Single.Name)
	require.Equal(t, "b", sp.To.Single.Name)
}

func TestIndexWithoutPropertyIsSemanticArityError(t *testing.T) {
	_, err := buildQuery(t, "create index on :Person()", aqt.V2_0)
	require.Error(t, err)
	var gerr *gqlerr.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, gqlerr.SemanticArityError, gerr.Kind)
}

func TestCompositeIndexIsSemanticArityError(t *testing.T) {
	_, err := buildQuery(t, "create index on :Person(name, age)", aqt.V2_0)
	require.Error(t, err)
	var gerr *gqlerr.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, gqlerr.SemanticArityError, gerr.Kind)
}

func TestOptionalPropagationGatedByDialect(t *testing.T) {
	query := "start a = NODE(1) match a -[?:KNOWS]-> (b) return b"

	v2, err := buildQuery(t, query, aqt.V2_0)
	require.NoError(t, err)
	rel := v2.Query.Matches[0].RelatedTo
	require.NotNil(t, rel.To.SingleOptional)
	require.Nil(t, rel.To.Single)

	v19, err := buildQuery(t, query, aqt.V1_9)
	require.NoError(t, err)
	rel19 := v19.Query.Matches[0].RelatedTo
	require.NotNil(t, rel19.To.Single)
	require.Nil(t, rel19.To.SingleOptional)
}
