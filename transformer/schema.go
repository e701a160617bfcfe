package transformer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Saber-Kurama/learn-pont/compiler"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
)

// typeResolver resolves schema nodes of one document.
type typeResolver struct {
	compiler *compiler.Compiler
	keyword  string
	defs     compiler.DefSet
	logger   parser.Logger
}

// SchemaType resolves a schema node. Arrays, enums, maps and inline objects
// are handled here; $ref strings go through the compiler and are bound
// against classTemplateArgs.
func (r *typeResolver) SchemaType(s *parser.Schema, classTemplateArgs []*standard.DataType) *standard.DataType {
	if s == nil {
		return standard.Any()
	}
	switch {
	case s.Type == "array":
		if s.Items == nil {
			return standard.ArrayOf(standard.Any())
		}
		return standard.ArrayOf(r.SchemaType(s.Items, classTemplateArgs))

	case s.Ref != "":
		dt, err := r.compiler.Type(s.Ref, r.keyword, r.defs, classTemplateArgs)
		if err != nil {
			r.logger.Warn("unparseable $ref, using any", "ref", s.Ref, "error", err)
			return standard.Any()
		}
		return dt

	case len(s.Enum) > 0:
		return standard.EnumOf(EnumLiterals(s.Enum)...)

	case s.AllowsAdditional && (s.Type == "object" || s.Type == ""):
		value := standard.Any()
		if s.AdditionalProperties != nil {
			value = r.SchemaType(s.AdditionalProperties, classTemplateArgs)
		}
		return standard.ObjectMapOf(value)

	case len(s.Properties) > 0:
		return &standard.DataType{
			TemplateIndex:  -1,
			TypeProperties: r.properties(s, classTemplateArgs),
		}
	}
	return standard.NewDataType(primitiveName(s.Type))
}

// properties resolves the members of an object schema, sorted by name.
func (r *typeResolver) properties(s *parser.Schema, classTemplateArgs []*standard.DataType) []*standard.Property {
	props := make([]*standard.Property, 0, len(s.Properties))
	for _, name := range s.PropertyNames() {
		prop := s.Properties[name]
		props = append(props, standard.NewProperty(
			name,
			prop.Description,
			s.IsRequired(name),
			r.SchemaType(prop, classTemplateArgs),
		))
	}
	return props
}

func primitiveName(schemaType string) string {
	switch schemaType {
	case "integer", "number":
		return standard.TypeNumber
	case "file":
		return standard.TypeFile
	default:
		// "" renders as any
		return schemaType
	}
}

// EnumLiterals renders enum values as TypeScript literals. Strings are
// single-quoted; duplicates are removed keeping the first occurrence.
func EnumLiterals(values []any) []string {
	literals := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		lit := enumLiteral(v)
		if seen[lit] {
			continue
		}
		seen[lit] = true
		literals = append(literals, lit)
	}
	return literals
}

func enumLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(x)
		return "'" + escaped + "'"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
