package standard

import (
	"strconv"
	"strings"
)

// Structural type names produced by the compiler and transformer.
const (
	TypeArray     = "Array"
	TypeObjectMap = "ObjectMap"
	TypeFile      = "File"
	TypeString    = "string"
	TypeNumber    = "number"
	TypeBoolean   = "boolean"
	TypeObject    = "object"
	TypeAny       = "any"
)

// DataType is one node of a type expression.
//
// A node with TemplateIndex >= 0 is a bound generic parameter of its
// enclosing class and has no TypeArgs.
type DataType struct {
	TypeArgs       []*DataType `json:"typeArgs"`
	TypeName       string      `json:"typeName"`
	IsDefsType     bool        `json:"isDefsType"`
	TemplateIndex  int         `json:"templateIndex"`
	Enum           []string    `json:"enum,omitempty"`
	TypeProperties []*Property `json:"typeProperties,omitempty"`
}

// NewDataType returns a non-class type node.
func NewDataType(name string, args ...*DataType) *DataType {
	return &DataType{TypeName: name, TypeArgs: args, TemplateIndex: -1}
}

// Defs returns a node referencing a schema-defined class.
func Defs(name string, args ...*DataType) *DataType {
	return &DataType{TypeName: name, TypeArgs: args, IsDefsType: true, TemplateIndex: -1}
}

// Any returns the untyped node.
func Any() *DataType {
	return NewDataType("")
}

// ArrayOf returns Array<elem>.
func ArrayOf(elem *DataType) *DataType {
	return NewDataType(TypeArray, elem)
}

// ObjectMapOf returns ObjectMap<string, value>.
func ObjectMapOf(value *DataType) *DataType {
	return NewDataType(TypeObjectMap, NewDataType(TypeString), value)
}

// EnumOf returns a literal union of already rendered literals. An empty
// literal set degrades to string.
func EnumOf(literals ...string) *DataType {
	if len(literals) == 0 {
		return NewDataType(TypeString)
	}
	return &DataType{Enum: literals, TemplateIndex: -1}
}

// IsArray reports whether the node is an Array instantiation.
func (t *DataType) IsArray() bool {
	return t != nil && t.TypeName == TypeArray && !t.IsDefsType
}

// IsEnum reports whether the node is a literal union.
func (t *DataType) IsEnum() bool {
	return t != nil && len(t.Enum) > 0
}

// QualifiedName returns the class reference for a defs type, or the plain
// type name otherwise.
func (t *DataType) QualifiedName(origin string) string {
	if !t.IsDefsType {
		return t.TypeName
	}
	if origin != "" {
		return "defs." + origin + "." + t.TypeName
	}
	return "defs." + t.TypeName
}

// Code renders the node as a TypeScript type expression. Class references
// are qualified with origin when it is non-empty.
func (t *DataType) Code(origin string) string {
	if t == nil {
		return TypeAny
	}
	if t.TemplateIndex >= 0 {
		return "T" + strconv.Itoa(t.TemplateIndex)
	}
	if t.Enum != nil {
		if len(t.Enum) == 0 {
			return TypeString
		}
		return strings.Join(t.Enum, " | ")
	}

	name := t.QualifiedName(origin)
	if len(t.TypeArgs) > 0 {
		args := make([]string, len(t.TypeArgs))
		for i, arg := range t.TypeArgs {
			args[i] = arg.Code(origin)
		}
		return name + "<" + strings.Join(args, ", ") + ">"
	}
	if len(t.TypeProperties) > 0 {
		var b strings.Builder
		b.WriteString("{ ")
		for _, p := range t.TypeProperties {
			b.WriteString(p.Signature(origin, NoMarker))
			b.WriteByte(' ')
		}
		b.WriteString("}")
		if name != "" {
			return name + "<" + b.String() + ">"
		}
		return b.String()
	}
	if name == "" {
		return TypeAny
	}
	return name
}

// String renders the node without origin qualification.
func (t *DataType) String() string {
	return t.Code("")
}

// SetTemplateIndex binds the node to one of the enclosing class's generic
// parameters. The node's rendered code, taken before its children are bound,
// is compared with the rendered code of each parameter in declaration order
// and the first match wins. An unmatched node binds its children instead.
func (t *DataType) SetTemplateIndex(classTemplateArgs []*DataType) {
	if t == nil || len(classTemplateArgs) == 0 {
		return
	}
	code := t.Code("")
	for i, arg := range classTemplateArgs {
		if arg.Code("") == code {
			t.TemplateIndex = i
			t.TypeArgs = nil
			return
		}
	}
	for _, child := range t.TypeArgs {
		child.SetTemplateIndex(classTemplateArgs)
	}
}

// Walk calls fn for the node and every descendant, including inline
// property types.
func (t *DataType) Walk(fn func(*DataType)) {
	if t == nil {
		return
	}
	fn(t)
	for _, arg := range t.TypeArgs {
		arg.Walk(fn)
	}
	for _, p := range t.TypeProperties {
		p.DataType.Walk(fn)
	}
}
