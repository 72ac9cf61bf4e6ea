package graphql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/shipstation/pkg/shipstation"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// fieldArgs parses a one-field query and returns the args reader for it.
func fieldArgs(t *testing.T, query string, vars map[string]any) *args {
	t.Helper()
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	require.Nil(t, err)
	require.Len(t, doc.Operations, 1)
	field, ok := doc.Operations[0].SelectionSet[0].(*ast.Field)
	require.True(t, ok)
	return newArgs(field, vars)
}

func TestArgs_Literals(t *testing.T) {
	a := fieldArgs(t, `{ f(s: "x", n: 3, w: 2.5, l: ["a", "b"], e: PROCESSING) }`, nil)

	assert.Equal(t, "x", a.String("s"))
	assert.Equal(t, 3, a.Int("n"))
	assert.Equal(t, 2.5, a.Float("w"))
	assert.Equal(t, []string{"a", "b"}, a.Strings("l"))
	assert.Equal(t, shipstation.BatchStatusProcessing, enum(a, "e", shipstation.ParseBatchStatus))
	assert.NoError(t, a.err)
}

func TestArgs_Variables(t *testing.T) {
	a := fieldArgs(t, `query($id: String, $n: Int, $ids: [String!], $at: String) { f(id: $id, n: $n, ids: $ids, at: $at) }`,
		map[string]any{
			"id":  "se-1",
			"n":   float64(25), // JSON numbers decode as float64
			"ids": []any{"r1"},
			"at":  "2024-01-02T03:04:05Z",
		})

	assert.Equal(t, "se-1", a.RequiredString("id"))
	assert.Equal(t, 25, a.Int("n"))
	assert.Equal(t, []string{"r1"}, a.Strings("ids"))

	at := a.Time("at")
	require.NotNil(t, at)
	assert.True(t, at.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.NoError(t, a.err)
}

func TestArgs_MissingValues(t *testing.T) {
	a := fieldArgs(t, `query($unset: String) { f(v: $unset) }`, nil)

	assert.Equal(t, "", a.String("v"))
	assert.Equal(t, "", a.String("absent"))
	assert.Nil(t, a.Strings("absent"))
	assert.Nil(t, a.Time("absent"))
	assert.Equal(t, 0, a.Int("absent"))
	assert.NoError(t, a.err)
}

func TestArgs_Dimensions(t *testing.T) {
	a := fieldArgs(t, `query($h: Float) { f(d: {length: 10, width: 5, height: $h}) }`, map[string]any{"h": 2.5})

	assert.Equal(t, &shipstation.Dimensions{Length: 10, Width: 5, Height: 2.5, Unit: shipstation.DimensionInch}, a.Dimensions("d"))
	assert.Nil(t, a.Dimensions("absent"))
	assert.NoError(t, a.err)
}

func TestArgs_SingleValueCoercedToList(t *testing.T) {
	a := fieldArgs(t, `{ f(ids: "only") }`, nil)
	assert.Equal(t, []string{"only"}, a.Strings("ids"))
}

func TestArgs_RequiredString(t *testing.T) {
	a := fieldArgs(t, `{ f }`, nil)
	a.RequiredString("id")
	assert.EqualError(t, a.err, `argument "id" is required`)
}

func TestArgs_KeepsFirstError(t *testing.T) {
	a := fieldArgs(t, `{ f(s: 1, n: 1.5, e: "bogus") }`, nil)

	a.String("s")
	a.Int("n")
	enum(a, "e", shipstation.ParseLabelFormat)

	assert.EqualError(t, a.err, `argument "s" must be a string, got int64`)
}

func TestArgs_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		read  func(a *args)
		want  string
	}{
		{"non integer", `{ f(n: 1.5) }`, func(a *args) { a.Int("n") }, `argument "n" must be an integer`},
		{"integer too large", `{ f(n: 1e20) }`, func(a *args) { a.Int("n") }, `argument "n" is out of range`},
		{"integer too small", `{ f(n: -1e20) }`, func(a *args) { a.Int("n") }, `argument "n" is out of range`},
		{"dimensions not object", `{ f(d: 3) }`, func(a *args) { a.Dimensions("d") }, `argument "d" must be an object`},
		{"bad dimension unit", `{ f(d: {length: 1, unit: "furlong"}) }`, func(a *args) { a.Dimensions("d") }, `argument "d.unit": unknown dimension unit "furlong"`},
		{"bad list item", `{ f(l: ["a", 1]) }`, func(a *args) { a.Strings("l") }, `argument "l" must be a list of strings`},
		{"bad time", `{ f(t: "tomorrow") }`, func(a *args) { a.Time("t") }, `argument "t": invalid timestamp "tomorrow"`},
		{"bad enum", `{ f(e: "gif") }`, func(a *args) { enum(a, "e", shipstation.ParseLabelFormat) }, `argument "e": unknown label format "gif"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fieldArgs(t, tt.query, nil)
			tt.read(a)
			require.Error(t, a.err)
			assert.Contains(t, a.err.Error(), tt.want)
		})
	}
}
