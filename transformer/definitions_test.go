package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/ponterrors"
	"github.com/Saber-Kurama/learn-pont/standard"
)

func TestSortBaseClasses(t *testing.T) {
	classes := []*standard.BaseClass{
		{Name: "Page", TemplateArgs: []*standard.DataType{standard.NewDataType("string")}},
		{Name: "Page", TemplateArgs: []*standard.DataType{standard.Defs("User")}},
		{Name: "Page"},
		{Name: "Page", TemplateArgs: []*standard.DataType{standard.NewDataType("string"), standard.NewDataType("number")}},
		{Name: "Order"},
	}
	SortBaseClasses(classes)

	assert.Equal(t, "Order", classes[0].Name)
	assert.Equal(t, 1, classes[1].DefsArgCount(), "more schema-class arguments sort first")
	assert.Len(t, classes[2].TemplateArgs, 2, "then more arguments")
	assert.Len(t, classes[3].TemplateArgs, 1)
	assert.Empty(t, classes[4].TemplateArgs)

	unique := uniqueClasses(classes)
	require.Len(t, unique, 2)
	assert.Equal(t, 1, unique[1].DefsArgCount(), "most specific overload is kept")
}

func TestGenericOverloadsCollapse(t *testing.T) {
	doc := parseJSON(t, `{
		"swagger": "2.0",
		"definitions": {
			"User": {"type": "object", "properties": {"id": {"type": "integer"}}},
			"Page«string»": {"type": "object", "properties": {"items": {"type": "array", "items": {"type": "string"}}}},
			"Page«User»": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/User"}}}}
		}
	}`)
	ds, err := Transform(doc)
	require.NoError(t, err)
	require.Len(t, ds.BaseClasses, 2)

	page := ds.Class("Page")
	require.NotNil(t, page)
	assert.Equal(t, "defs.User", page.TemplateArgs[0].Code(""))
	assert.Equal(t, "Array<T0>", page.Properties[0].DataType.Code(""))
}

func TestFirstMatchTemplateIndex(t *testing.T) {
	doc := parseJSON(t, `{
		"swagger": "2.0",
		"definitions": {
			"User": {"type": "object"},
			"Pair«User,User»": {"type": "object", "properties": {
				"left": {"$ref": "#/definitions/User"},
				"right": {"$ref": "#/definitions/User"}
			}}
		}
	}`)
	ds, err := Transform(doc)
	require.NoError(t, err)

	pair := ds.Class("Pair")
	require.Len(t, pair.TemplateArgs, 2)
	// Both parameters render identically; the first declared one wins.
	assert.Equal(t, "T0", pair.Properties[0].DataType.Code(""))
	assert.Equal(t, "T0", pair.Properties[1].DataType.Code(""))
}

func TestDefinitionNameSyntaxError(t *testing.T) {
	doc := parseJSON(t, `{"swagger": "2.0", "definitions": {"Page«User": {"type": "object"}}}`)
	_, err := Transform(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ponterrors.ErrReferenceSyntax)

	var refErr *ponterrors.ReferenceSyntaxError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Page«User", refErr.Definition)
	assert.Contains(t, err.Error(), "Page«User")
}

func TestTransformNilDocument(t *testing.T) {
	_, err := Transform(nil)
	assert.Error(t, err)

	_, err = Transform(parseJSON(t, `{"swagger": "2.0"}`), WithCompiler(nil))
	assert.Error(t, err)
}
