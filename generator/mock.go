package generator

import (
	"strconv"
	"strings"

	"github.com/Saber-Kurama/learn-pont/standard"
)

// maxMockDepth bounds class expansion for recursive shapes.
const maxMockDepth = 4

// MockValue builds a JSON-encodable sample value for dt. Class references
// are expanded from classes; generic members take the reference's type
// arguments.
func MockValue(dt *standard.DataType, classes []*standard.BaseClass) any {
	index := make(map[string]*standard.BaseClass, len(classes))
	for _, cls := range classes {
		index[cls.Name] = cls
	}
	return mock(dt, index, nil, 0)
}

func mock(dt *standard.DataType, classes map[string]*standard.BaseClass, bindings []*standard.DataType, depth int) any {
	if dt == nil {
		return nil
	}
	if dt.TemplateIndex >= 0 {
		if dt.TemplateIndex < len(bindings) {
			return mock(bindings[dt.TemplateIndex], classes, nil, depth)
		}
		return nil
	}
	if dt.IsEnum() {
		return enumValue(dt.Enum[0])
	}
	if len(dt.TypeProperties) > 0 {
		obj := make(map[string]any, len(dt.TypeProperties))
		for _, p := range dt.TypeProperties {
			obj[p.Name] = mock(p.DataType, classes, bindings, depth+1)
		}
		return obj
	}
	if dt.IsDefsType {
		cls, ok := classes[dt.TypeName]
		if !ok || depth >= maxMockDepth {
			return map[string]any{}
		}
		obj := make(map[string]any, len(cls.Properties))
		for _, p := range cls.Properties {
			obj[p.Name] = mock(p.DataType, classes, bind(dt.TypeArgs, bindings), depth+1)
		}
		return obj
	}

	switch dt.TypeName {
	case standard.TypeArray:
		if len(dt.TypeArgs) == 0 || depth >= maxMockDepth {
			return []any{}
		}
		return []any{mock(dt.TypeArgs[0], classes, bindings, depth+1)}
	case standard.TypeObjectMap, standard.TypeObject:
		return map[string]any{}
	case standard.TypeString, standard.TypeFile:
		return ""
	case standard.TypeNumber:
		return 0
	case standard.TypeBoolean:
		return false
	}
	return nil
}

// bind substitutes bound generic parameters in args with the enclosing
// bindings.
func bind(args, bindings []*standard.DataType) []*standard.DataType {
	if len(bindings) == 0 {
		return args
	}
	out := make([]*standard.DataType, len(args))
	for i, arg := range args {
		switch {
		case arg == nil:
		case arg.TemplateIndex >= 0 && arg.TemplateIndex < len(bindings):
			out[i] = bindings[arg.TemplateIndex]
			continue
		case len(arg.TypeArgs) > 0:
			cp := *arg
			cp.TypeArgs = bind(arg.TypeArgs, bindings)
			out[i] = &cp
			continue
		}
		out[i] = arg
	}
	return out
}

// enumValue turns a rendered literal back into a JSON value.
func enumValue(literal string) any {
	if len(literal) >= 2 && literal[0] == '\'' && literal[len(literal)-1] == '\'' {
		return strings.ReplaceAll(literal[1:len(literal)-1], `\'`, "'")
	}
	switch literal {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseFloat(literal, 64); err == nil {
		return n
	}
	return literal
}
