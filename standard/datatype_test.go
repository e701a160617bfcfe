package standard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeCode(t *testing.T) {
	tests := []struct {
		name   string
		dt     *DataType
		origin string
		want   string
	}{
		{"nil", nil, "", "any"},
		{"empty", Any(), "", "any"},
		{"primitive", NewDataType("number"), "", "number"},
		{"defs", Defs("User"), "", "defs.User"},
		{"defs qualified", Defs("User"), "petstore", "defs.petstore.User"},
		{"array of defs", ArrayOf(Defs("User")), "", "Array<defs.User>"},
		{"nested generic", Defs("Page", ArrayOf(Defs("User"))), "", "defs.Page<Array<defs.User>>"},
		{"object map", ObjectMapOf(NewDataType("number")), "", "ObjectMap<string, number>"},
		{"enum", EnumOf("'a'", "'b'"), "", "'a' | 'b'"},
		{"empty enum", &DataType{Enum: []string{}, TemplateIndex: -1}, "", "string"},
		{"template param", &DataType{TemplateIndex: 1}, "", "T1"},
		{
			"inline object members carry no optional marker",
			&DataType{TemplateIndex: -1, TypeProperties: []*Property{
				NewProperty("id", "", true, NewDataType("number")),
				NewProperty("name", "", false, NewDataType("string")),
			}},
			"",
			"{ id: number; name: string; }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dt.Code(tt.origin))
		})
	}
}

func TestSetTemplateIndex(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		args := []*DataType{Defs("User"), Defs("User")}
		dt := Defs("User")
		dt.SetTemplateIndex(args)
		assert.Equal(t, 0, dt.TemplateIndex)
		assert.Equal(t, "T0", dt.Code(""))
	})

	t.Run("binds children when node does not match", func(t *testing.T) {
		args := []*DataType{Defs("Order"), Defs("User")}
		dt := ArrayOf(Defs("User"))
		dt.SetTemplateIndex(args)
		assert.Equal(t, -1, dt.TemplateIndex)
		assert.Equal(t, "Array<T1>", dt.Code(""))
	})

	t.Run("matched node drops its arguments", func(t *testing.T) {
		args := []*DataType{Defs("List", Defs("User"))}
		dt := Defs("List", Defs("User"))
		dt.SetTemplateIndex(args)
		assert.Equal(t, 0, dt.TemplateIndex)
		assert.Empty(t, dt.TypeArgs)
	})

	t.Run("no class parameters", func(t *testing.T) {
		dt := Defs("User")
		dt.SetTemplateIndex(nil)
		assert.Equal(t, -1, dt.TemplateIndex)
	})
}

func TestPropertySignature(t *testing.T) {
	p := NewProperty("com.example.user-name", "", false, NewDataType("string"))
	assert.Equal(t, "user-name", p.Name)
	assert.Equal(t, "'user-name'?: string;", p.Signature("", MarkOptional))
	assert.Equal(t, "'user-name': string;", p.Signature("", NoMarker))

	req := NewProperty("id", "", true, NewDataType("number"))
	assert.Equal(t, "id: number;", req.Signature("", MarkOptional))
	assert.Equal(t, "id?: number;", req.Signature("", ForceOptional))
}

func TestLockJSONRoundTrip(t *testing.T) {
	ds := &DataSource{
		Name: "petstore",
		BaseClasses: []*BaseClass{{
			Name:         "Page",
			TemplateArgs: []*DataType{Defs("User")},
			Properties:   []*Property{NewProperty("items", "", false, ArrayOf(&DataType{TemplateIndex: 0}))},
		}},
		Mods: []*Mod{{Name: "user", Interfaces: []*Interface{{Name: "getUser", Method: "get", Path: "/user", Response: Defs("User")}}}},
	}
	data, err := json.Marshal(ds)
	require.NoError(t, err)

	var got DataSource
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Array<T0>", got.BaseClasses[0].Properties[0].DataType.Code(""))
	assert.Equal(t, "defs.petstore.User", got.Mods[0].Interfaces[0].Response.Code("petstore"))
}

func TestSortMods(t *testing.T) {
	ds := &DataSource{Mods: []*Mod{
		{Name: "user", Interfaces: []*Interface{{Path: "/user/{id}", Method: "get"}, {Path: "/user", Method: "post"}}},
		{Name: "pet"},
	}}
	ds.SortMods()
	assert.Equal(t, "pet", ds.Mods[0].Name)
	assert.Equal(t, "/user", ds.Mods[1].Interfaces[0].Path)
	assert.NotNil(t, ds.Mod("user"))
	assert.Len(t, ds.Interfaces(), 2)
}
