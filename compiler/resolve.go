package compiler

import (
	"github.com/Saber-Kurama/learn-pont/standard"
)

// PrimitiveTypeMap maps the type names emitted by Java and JSON Schema
// tooling to TypeScript types.
var PrimitiveTypeMap = map[string]string{
	"Long":       standard.TypeNumber,
	"long":       standard.TypeNumber,
	"Integer":    standard.TypeNumber,
	"integer":    standard.TypeNumber,
	"int":        standard.TypeNumber,
	"Int":        standard.TypeNumber,
	"short":      standard.TypeNumber,
	"Short":      standard.TypeNumber,
	"Double":     standard.TypeNumber,
	"double":     standard.TypeNumber,
	"Float":      standard.TypeNumber,
	"float":      standard.TypeNumber,
	"BigDecimal": standard.TypeNumber,
	"Number":     standard.TypeNumber,
	"number":     standard.TypeNumber,
	"String":     standard.TypeString,
	"string":     standard.TypeString,
	"Boolean":    standard.TypeBoolean,
	"boolean":    standard.TypeBoolean,
	"Map":        standard.TypeObjectMap,
	"map":        standard.TypeObjectMap,
	"HashMap":    standard.TypeObjectMap,
	"List":       standard.TypeArray,
	"list":       standard.TypeArray,
	"Set":        standard.TypeArray,
	"Collection": standard.TypeArray,
	"array":      standard.TypeArray,
	"Array":      standard.TypeArray,
	"Object":     standard.TypeObject,
	"object":     standard.TypeObject,
	"file":       standard.TypeFile,
	"File":       standard.TypeFile,
}

// DefSet is the set of known definition names.
type DefSet map[string]struct{}

// NewDefSet builds a DefSet from names.
func NewDefSet(names ...string) DefSet {
	s := make(DefSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is a known definition.
func (s DefSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Resolve converts ast into a data type. Names in defs become class
// references; other names are mapped through PrimitiveTypeMap or kept
// verbatim. When classTemplateArgs is non-empty the result is bound against
// the enclosing class's generic parameters.
func Resolve(ast *AST, defs DefSet, classTemplateArgs []*standard.DataType) *standard.DataType {
	dt := resolve(ast, defs)
	dt.SetTemplateIndex(classTemplateArgs)
	return dt
}

func resolve(ast *AST, defs DefSet) *standard.DataType {
	if ast == nil {
		return standard.Any()
	}
	args := make([]*standard.DataType, 0, len(ast.TypeArgs))
	for _, arg := range ast.TypeArgs {
		args = append(args, resolve(arg, defs))
	}

	if defs.Has(ast.Name) {
		return standard.Defs(ast.Name, args...)
	}
	name := ast.Name
	if mapped, ok := PrimitiveTypeMap[name]; ok {
		name = mapped
	}
	if name == standard.TypeArray && len(args) == 0 {
		args = append(args, standard.Any())
	}
	return standard.NewDataType(name, args...)
}
