package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleStartReturn(t *testing.T) {
	doc, err := Parse("", "start s = NODE(1) return s")
	require.NoError(t, err)
	require.Nil(t, doc.Schema)
	require.NotNil(t, doc.Query)

	single := doc.Query.Single
	require.NotNil(t, single.Start)
	require.Len(t, single.Start.Items, 1)
	require.Equal(t, "s", single.Start.Items[0].Name)
	require.NotNil(t, single.Start.Items[0].Node)
	require.NotNil(t, single.Start.Items[0].Node.ByID)
	require.Equal(t, []int64{1}, single.Start.Items[0].Node.ByID.IDs)

	require.NotNil(t, single.Return)
	require.Len(t, single.Return.Items.Items, 1)
}

func TestParseRelationshipPattern(t *testing.T) {
	doc, err := Parse("", "match (a) -[:KNOWS]-> (b) return a")
	require.NoError(t, err)

	reads := doc.Query.Single.Reads
	require.Len(t, reads, 1)
	pattern := reads[0].Match.Pattern
	require.Len(t, pattern.Paths, 1)

	chain := pattern.Paths[0].Chain
	require.NotNil(t, chain)
	require.Len(t, chain.Links, 1)

	link := chain.Links[0]
	require.False(t, link.Rel.Left)
	require.True(t, link.Rel.Right)
	require.Equal(t, "KNOWS", link.Rel.Detail.Types.First)
}

func TestParseLeftPointingRelationship(t *testing.T) {
	doc, err := Parse("", "match (a) <-[:KNOWS]- (b) return a")
	require.NoError(t, err)

	link := doc.Query.Single.Reads[0].Match.Pattern.Paths[0].Chain.Links[0]
	require.True(t, link.Rel.Left)
	require.False(t, link.Rel.Right)
}

func TestParseNamedPath(t *testing.T) {
	doc, err := Parse("", "match p = (a) -[:KNOWS]-> (b) return p")
	require.NoError(t, err)
	require.Equal(t, "p", doc.Query.Single.Reads[0].Match.Pattern.Paths[0].Name)
}

func TestParseVarLengthRange(t *testing.T) {
	doc, err := Parse("", "match (a) -[r?*1..3]-> (b) return b")
	require.NoError(t, err)

	detail := doc.Query.Single.Reads[0].Match.Pattern.Paths[0].Chain.Links[0].Rel.Detail
	require.Equal(t, "r", detail.Variable)
	require.True(t, detail.Optional)
	require.NotNil(t, detail.Range)
	require.Equal(t, int64(1), *detail.Range.Min)
	require.True(t, detail.Range.HasRange)
	require.Equal(t, int64(3), *detail.Range.Max)
}

func TestParseWithAndUnion(t *testing.T) {
	doc, err := Parse("", "start s=NODE(1) with s return s UNION all start t=NODE(1) return t")
	require.NoError(t, err)

	require.NotNil(t, doc.Query.Single.With)
	require.NotNil(t, doc.Query.Single.With.Tail)
	require.Len(t, doc.Query.Unions, 1)
	require.True(t, doc.Query.Unions[0].All)
}

func TestParseSchemaCreateIndex(t *testing.T) {
	doc, err := Parse("", "create index on :Person(name)")
	require.NoError(t, err)
	require.NotNil(t, doc.Schema)
	require.NotNil(t, doc.Schema.CreateIndex)
	require.Equal(t, "Person", doc.Schema.CreateIndex.Label)
	require.Equal(t, []string{"name"}, doc.Schema.CreateIndex.Props)
}

func TestParseSchemaCreateIndexAllowsEmptyPropertyList(t *testing.T) {
	doc, err := Parse("", "create index on :Person()")
	require.NoError(t, err)
	require.NotNil(t, doc.Schema.CreateIndex)
	require.Empty(t, doc.Schema.CreateIndex.Props)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("", "this is not a query (((")
	require.Error(t, err)
}

func TestParseRejectsIncompletePattern(t *testing.T) {
	_, err := Parse("", "match (a) -[:KNOWS]-")
	require.Error(t, err)
}

func TestStripDirectiveRecognizesV19(t *testing.T) {
	dialect, rest := StripDirective("cypher v1_9 start s=NODE(1) return s")
	require.Equal(t, "v1_9", dialect)
	require.Equal(t, "start s=NODE(1) return s", rest)
}

func TestStripDirectiveRecognizesV20(t *testing.T) {
	dialect, rest := StripDirective("cypher 2.0 start s=NODE(1) return s")
	require.Equal(t, "v2_0", dialect)
	require.Equal(t, "start s=NODE(1) return s", rest)
}

func TestStripDirectiveAbsentLeavesQueryUntouched(t *testing.T) {
	query := "start s=NODE(1) return s"
	dialect, rest := StripDirective(query)
	require.Empty(t, dialect)
	require.Equal(t, query, rest)
}
