package graphql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestGet_Build(t *testing.T) {
	tests := []struct {
		name  string
		query *Get
		want  string
	}{
		{
			name: "where equal",
			query: NewGet("Pizza", Fields("name")...).
				WithWhere(NewWhere(Equal, "name").WithString("Hawaii")),
			want: `{Get{Pizza(where:{path:["name"],operator:"Equal",valueString:"Hawaii"}){name}}}`,
		},
		{
			name:  "no clauses omits parentheses",
			query: NewGet("Pizza", Fields("name", "price")...),
			want:  `{Get{Pizza{name price}}}`,
		},
		{
			name: "nested and additional fields",
			query: NewGet("Article",
				NewField("title"),
				NewField("inPublication", NewField("... on Publication", Fields("name")...)),
				Additional(AdditionalID, AdditionalCertainty),
			).WithNearText(NewNearText("fashion").WithCertainty(0.7)).WithLimit(5),
			want: `{Get{Article(nearText:{concepts:["fashion"],certainty:0.7},limit:5)` +
				`{title inPublication{... on Publication{name}} _additional{id certainty}}}}`,
		},
		{
			name: "fixed clause order",
			query: NewGet("Pizza", Fields("name")...).
				WithSort(NewSort(Asc, "name")).
				WithOffset(10).
				WithAfter("cursor").
				WithLimit(2).
				WithNearImage(NewNearImage("img")).
				WithAsk(NewAsk("q")).
				WithGroup(NewGroup(GroupClosest, 0.1)).
				WithNearVector(NewNearVector([]float32{1})).
				WithNearObject(NewNearObject("id")).
				WithHybrid(NewHybrid("h")).
				WithBM25(NewBM25("b")).
				WithNearText(NewNearText("t")).
				WithWhere(NewWhere(Equal, "name")),
			want: `{Get{Pizza(where:{path:["name"],operator:"Equal"},nearText:{concepts:["t"]},bm25:{query:"b"},` +
				`hybrid:{query:"h"},nearObject:{id:"id"},nearVector:{vector:[1]},group:{type:"closest",force:0.1},` +
				`ask:{question:"q"},nearImage:{image:"img"},limit:2,after:"cursor",offset:10,` +
				`sort:[{path:["name"],order:"asc"}]){name}}}`,
		},
		{
			name:  "empty sort list",
			query: NewGet("Pizza", Fields("name")...).WithSort(),
			want:  `{Get{Pizza(sort:[]){name}}}`,
		},
		{
			name: "clauses that render empty are dropped",
			query: NewGet("Pizza", Fields("name")...).
				WithWhere(&Where{Operator: Equal}).
				WithNearText(NewNearText()).
				WithLimit(3),
			want: `{Get{Pizza(limit:3){name}}}`,
		},
		{
			name: "only empty clauses omit parentheses",
			query: NewGet("Pizza", Fields("name")...).
				WithNearVector(NewNearVector(nil)),
			want: `{Get{Pizza{name}}}`,
		},
		{
			name: "duplicate renderings are deduplicated",
			query: NewGet("Pizza", Fields("name")...).
				WithLimit(1).
				WithClause(Raw("limit:1")).
				WithClause(Raw("autocut:1")).
				WithClause(Raw("autocut:1")),
			want: `{Get{Pizza(limit:1,autocut:1){name}}}`,
		},
		{
			name: "several search clauses are all rendered",
			query: NewGet("Pizza", Fields("name")...).
				WithNearText(NewNearText("a")).
				WithNearVector(NewNearVector([]float32{0.5})),
			want: `{Get{Pizza(nearText:{concepts:["a"]},nearVector:{vector:[0.5]}){name}}}`,
		},
		{
			name:  "missing collection",
			query: NewGet("", Fields("name")...),
			want:  "",
		},
		{
			name:  "missing fields",
			query: NewGet("Pizza").WithLimit(1),
			want:  "",
		},
		{
			name:  "nil builder",
			query: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Build())
		})
	}
}

func TestGet_BuildIsIdempotent(t *testing.T) {
	q := NewGet("Pizza", Fields("name")...).
		WithWhere(AnyOf(NewWhere(Equal, "name").WithString("a"), NewWhere(Equal, "name").WithString("b"))).
		WithNearText(NewNearText("x").WithMoveTo(Move{Concepts: []string{"y"}, Force: 1})).
		WithSort(NewSort(Desc, "price"))

	first := q.Build()
	assert.Equal(t, first, q.Build())
	assert.Equal(t, first, q.String())
}

func TestGet_BuildOperation(t *testing.T) {
	q := NewGet("Pizza", Fields("name")...)
	assert.Equal(t, `query{Get{Pizza{name}}}`, q.BuildOperation(""))
	assert.Equal(t, `query Pizzas{Get{Pizza{name}}}`, q.BuildOperation("Pizzas"))
	assert.Equal(t, "", NewGet("Pizza").BuildOperation("Pizzas"))
}

func TestGet_ArgumentsCountMatchesClauses(t *testing.T) {
	q := NewGet("Pizza", Fields("name")...)
	assert.Equal(t, "", q.Arguments())

	q.WithWhere(NewWhere(Equal, "name").WithString("a")).
		WithBM25(NewBM25("b")).
		WithLimit(4)
	args := q.Arguments()
	require.True(t, strings.HasPrefix(args, "(") && strings.HasSuffix(args, ")"))

	doc := mustParse(t, q.Build())
	assert.Len(t, collectionField(t, doc).Arguments, 3)
}

func TestGet_SearchClauseCount(t *testing.T) {
	q := NewGet("Pizza", Fields("name")...).WithWhere(NewWhere(Equal, "a")).WithLimit(1)
	assert.Equal(t, 0, q.SearchClauseCount())

	q.WithNearText(NewNearText("a")).WithHybrid(NewHybrid("b"))
	assert.Equal(t, 2, q.SearchClauseCount())
}

func TestGet_ParsesAsGraphQL(t *testing.T) {
	q := NewGet("Pizza",
		NewField("name"),
		Additional(AdditionalID, AdditionalVector),
	).
		WithWhere(AllOf(
			NewWhere(Like, "name").WithText(`Ha"wa\ii`),
			NewWhere(WithinGeoRange, "location").WithGeoRange(1.5, 2.5, 100),
		)).
		WithNearText(NewNearText(`say "cheese"`, "line\nbreak").
			WithMoveAwayFrom(Move{Objects: []MoveObject{{ID: "x"}}, Force: 0.2})).
		WithGroup(NewGroup(GroupMerge, 0.5)).
		WithSort(NewSort(Desc, "price"), NewSort(Asc, "name")).
		WithAfter("abc").
		WithLimit(10)

	doc := mustParse(t, q.Build())

	field := collectionField(t, doc)
	assert.Equal(t, "Pizza", field.Name)

	concepts := field.Arguments.ForName("nearText").Value.Children.ForName("concepts")
	require.NotNil(t, concepts)
	require.Len(t, concepts.Children, 2)
	assert.Equal(t, `say "cheese"`, concepts.Children[0].Value.Raw)
	assert.Equal(t, "line\nbreak", concepts.Children[1].Value.Raw)

	operands := field.Arguments.ForName("where").Value.Children.ForName("operands")
	require.NotNil(t, operands)
	assert.Equal(t, `Ha"wa\ii`, operands.Children[0].Value.Children.ForName("valueText").Raw)
}

func mustParse(t *testing.T, query string) *ast.QueryDocument {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	require.NoError(t, err, query)
	require.Len(t, doc.Operations, 1)
	return doc
}

// collectionField returns the collection selection nested under Get or Aggregate.
func collectionField(t *testing.T, doc *ast.QueryDocument) *ast.Field {
	t.Helper()
	root, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	field, ok := root.SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	return field
}
