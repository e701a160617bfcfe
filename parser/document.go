package parser

import "sort"

// Dialect identifies the schema layout of a document.
type Dialect int

const (
	// DialectSwaggerV2 reads definitions from #/definitions/.
	DialectSwaggerV2 Dialect = iota
	// DialectOpenAPIV3 reads definitions from #/components/schemas/.
	DialectOpenAPIV3
)

// Keyword returns the reference prefix of the dialect.
func (d Dialect) Keyword() string {
	if d == DialectOpenAPIV3 {
		return "#/components/schemas/"
	}
	return "#/definitions/"
}

func (d Dialect) String() string {
	if d == DialectOpenAPIV3 {
		return "SwaggerV3"
	}
	return "SwaggerV2"
}

// Methods lists the HTTP methods read from a path item, in emission order.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// Document is a normalized schema document.
type Document struct {
	Dialect     Dialect
	Version     string
	Title       string
	Definitions map[string]*Schema
	Paths       map[string]*PathItem
	Tags        []Tag
	Consumes    []string
}

// DefinitionNames returns the definition names in sorted order.
func (d *Document) DefinitionNames() []string {
	names := make([]string, 0, len(d.Definitions))
	for name := range d.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathNames returns the paths in sorted order.
func (d *Document) PathNames() []string {
	names := make([]string, 0, len(d.Paths))
	for name := range d.Paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema is the part of a JSON Schema pont reads.
type Schema struct {
	Type        string
	Format      string
	Ref         string
	Description string
	Enum        []any
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string

	// AdditionalProperties is set when additionalProperties holds a schema.
	// AllowsAdditional is also true for additionalProperties: true.
	AdditionalProperties *Schema
	AllowsAdditional     bool
}

// PropertyNames returns the property names in sorted order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRequired reports whether name is listed in Required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Parameter is an operation parameter. Body parameters carry Schema; the
// others describe their type inline.
type Parameter struct {
	Name        string
	In          string
	Description string
	Required    bool
	Type        string
	Format      string
	Ref         string
	Enum        []any
	Items       *Schema
	Schema      *Schema
}

// AsSchema returns the schema describing the parameter's value.
func (p *Parameter) AsSchema() *Schema {
	if p.In == "body" && p.Schema != nil {
		return p.Schema
	}
	return &Schema{
		Type:  p.Type,
		Enum:  p.Enum,
		Items: p.Items,
		Ref:   p.Ref,
	}
}

// Operation is one method under a path.
type Operation struct {
	OperationID string
	Summary     string
	Description string
	Tags        []string
	Consumes    []string
	Parameters  []*Parameter

	// Responses maps status codes to the response schema; a nil value means
	// the response has no body.
	Responses map[string]*Schema
}

// PathItem groups the operations of one path.
type PathItem struct {
	Parameters []*Parameter
	Operations map[string]*Operation
}

// Tag is a named operation group.
type Tag struct {
	Name        string
	Description string
}
