package standard

import "strings"

// InitialValue returns the runtime initializer expression for a member of
// this type. Class references are qualified with origin when qualified is
// true.
func (t *DataType) InitialValue(origin string, qualified bool) string {
	if t == nil {
		return "undefined"
	}
	switch {
	case t.TypeName == TypeArray && !t.IsDefsType:
		return "[]"
	case t.IsDefsType:
		if !qualified {
			return "new " + t.TypeName + "()"
		}
		return "new " + t.QualifiedName(origin) + "()"
	case t.TemplateIndex >= 0:
		return "undefined"
	case t.TypeName == TypeString:
		return "''"
	case t.TypeName == TypeBoolean:
		return "false"
	case t.IsEnum():
		return t.Enum[0]
	}
	return "undefined"
}

// Comment renders the one-line doc comment used above members and
// declarations. The name stands in for a missing description.
func Comment(description, name string) string {
	text := strings.TrimSpace(description)
	if text == "" {
		text = name
	}
	text = strings.Join(strings.Fields(text), " ")
	return "/** " + strings.ReplaceAll(text, "*/", `*\/`) + " */"
}

// Code renders the member declaration with its doc comment.
func (p *Property) Code(origin string, mode Optionality) string {
	return Comment(p.Description, p.Name) + "\n" + p.Signature(origin, mode)
}

// CodeWithInitValue renders the member as a runnable class field. A member
// typed as its own enclosing class initializes to an empty object.
func (p *Property) CodeWithInitValue(origin, className string) string {
	value := p.DataType.InitialValue(origin, false)
	if p.DataType != nil && p.DataType.IsDefsType && p.DataType.TypeName == className {
		value = "{}"
	}
	return p.Identifier() + " = " + value + ";"
}
