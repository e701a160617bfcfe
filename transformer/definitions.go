package transformer

import (
	"errors"
	"slices"
	"strings"

	"github.com/Saber-Kurama/learn-pont/compiler"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
	"github.com/Saber-Kurama/learn-pont/standard"
)

// transformDefinitions runs the definitions pass and prepares the type
// resolver used by the operations pass.
func (t *transformer) transformDefinitions() ([]*standard.BaseClass, error) {
	names := t.doc.DefinitionNames()
	asts := make([]*compiler.AST, len(names))
	baseNames := make([]string, len(names))
	for i, name := range names {
		ast, err := t.cfg.compiler.Compile(name, "")
		if err != nil {
			var refErr *ponterrors.ReferenceSyntaxError
			if errors.As(err, &refErr) {
				named := *refErr
				named.Definition = name
				return nil, &named
			}
			return nil, err
		}
		asts[i] = ast
		baseNames[i] = ast.Name
	}

	defs := compiler.NewDefSet(baseNames...)
	t.resolver = &typeResolver{
		compiler: t.cfg.compiler,
		keyword:  t.doc.Dialect.Keyword(),
		defs:     defs,
		logger:   t.logger,
	}

	classes := make([]*standard.BaseClass, 0, len(names))
	for i, name := range names {
		schema := t.doc.Definitions[name]
		templateArgs := compiler.Resolve(asts[i], defs, nil).TypeArgs
		class := &standard.BaseClass{
			Name:         asts[i].Name,
			Description:  schema.Description,
			Properties:   t.resolver.properties(schema, templateArgs),
			TemplateArgs: templateArgs,
		}
		if class.TemplateArgs == nil {
			class.TemplateArgs = []*standard.DataType{}
		}
		class.SortProperties()
		classes = append(classes, class)
	}

	SortBaseClasses(classes)
	return uniqueClasses(classes), nil
}

// SortBaseClasses orders classes by name. Overloads sharing a name are
// ordered most specific first: more schema-class template arguments, then
// more template arguments.
func SortBaseClasses(classes []*standard.BaseClass) {
	slices.SortStableFunc(classes, func(a, b *standard.BaseClass) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		if da, db := a.DefsArgCount(), b.DefsArgCount(); da != db {
			return db - da
		}
		return len(b.TemplateArgs) - len(a.TemplateArgs)
	})
}

// uniqueClasses keeps the first class of every name.
func uniqueClasses(classes []*standard.BaseClass) []*standard.BaseClass {
	seen := make(map[string]bool, len(classes))
	out := classes[:0]
	for _, c := range classes {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c)
	}
	return out
}
