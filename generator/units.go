package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Saber-Kurama/learn-pont/standard"
)

// DefaultClassDeclaration renders
//
//	/** description */
//	export class Name<T0 = any> {
//	  /** member */
//	  member?: type;
//	}
func DefaultClassDeclaration(cls *standard.BaseClass, origin string) string {
	var b strings.Builder
	b.WriteString(standard.Comment(cls.Description, cls.Name))
	b.WriteString("\nexport class ")
	b.WriteString(cls.Name)
	b.WriteString(generics(len(cls.TemplateArgs)))
	b.WriteString(" {")
	for _, p := range cls.Properties {
		b.WriteByte('\n')
		b.WriteString(indent(2, p.Code(origin, standard.MarkOptional)))
	}
	b.WriteString("\n}")
	return b.String()
}

// generics renders "<T0 = any, T1 = any>" for n parameters.
func generics(n int) string {
	if n == 0 {
		return ""
	}
	params := make([]string, n)
	for i := range params {
		params[i] = "T" + strconv.Itoa(i) + " = any"
	}
	return "<" + strings.Join(params, ", ") + ">"
}

type namespaceView struct {
	Outer  string
	Origin string
	Body   string
}

func wrapNamespace(outer, origin, body string) (string, error) {
	view := namespaceView{Outer: outer, Origin: origin, Body: strings.TrimRight(body, "\n")}
	return executeTemplate("namespace.tmpl", view)
}

// ClassUnit renders the declaration unit of one class.
func (g *Generator) ClassUnit(ds *standard.DataSource, cls *standard.BaseClass) (string, error) {
	origin := g.Origin(ds)
	out, err := wrapNamespace("defs", origin, g.template.ClassDeclaration(cls, origin))
	if err != nil {
		return "", fmt.Errorf("generator: class %s: %w", cls.Name, err)
	}
	return out, nil
}

// ClassesUnit renders every class of ds in one namespace.
func (g *Generator) ClassesUnit(ds *standard.DataSource) (string, error) {
	origin := g.Origin(ds)
	decls := make([]string, len(ds.BaseClasses))
	for i, cls := range ds.BaseClasses {
		decls[i] = g.template.ClassDeclaration(cls, origin)
	}
	out, err := wrapNamespace("defs", origin, strings.Join(decls, "\n\n"))
	if err != nil {
		return "", fmt.Errorf("generator: classes of %q: %w", ds.Name, err)
	}
	return out, nil
}

type interfaceView struct {
	Name     string
	Comment  string
	Params   []string
	Response string
	Args     string
}

type modView struct {
	Name       string
	Comment    string
	Interfaces []interfaceView
}

func newModView(mod *standard.Mod, origin string) modView {
	view := modView{
		Name:       mod.Name,
		Comment:    standard.Comment(mod.Description, mod.Name),
		Interfaces: make([]interfaceView, len(mod.Interfaces)),
	}
	for i, inter := range mod.Interfaces {
		params := inter.NonBodyParams()
		iv := interfaceView{
			Name:     inter.Name,
			Comment:  standard.Comment(inter.Description, inter.Name),
			Params:   make([]string, len(params)),
			Response: inter.Response.Code(origin),
			Args:     "params: Params, options?: any",
		}
		for j, p := range params {
			iv.Params[j] = p.Code(origin, standard.MarkOptional)
		}
		if body := inter.BodyParam(); body != nil {
			iv.Args = "params: Params, bodyParams: " + body.DataType.Code(origin) + ", options?: any"
		}
		view.Interfaces[i] = iv
	}
	return view
}

// ModUnit renders the declaration unit of one operation group.
func (g *Generator) ModUnit(ds *standard.DataSource, mod *standard.Mod) (string, error) {
	origin := g.Origin(ds)
	body, err := executeTemplate("mod.tmpl", newModView(mod, origin))
	if err != nil {
		return "", fmt.Errorf("generator: mod %s: %w", mod.Name, err)
	}
	out, err := wrapNamespace("API", origin, body)
	if err != nil {
		return "", fmt.Errorf("generator: mod %s: %w", mod.Name, err)
	}
	return out, nil
}

// ModsUnit renders every operation group of ds in one namespace.
func (g *Generator) ModsUnit(ds *standard.DataSource) (string, error) {
	origin := g.Origin(ds)
	bodies := make([]string, len(ds.Mods))
	for i, mod := range ds.Mods {
		body, err := executeTemplate("mod.tmpl", newModView(mod, origin))
		if err != nil {
			return "", fmt.Errorf("generator: mod %s: %w", mod.Name, err)
		}
		bodies[i] = strings.TrimRight(body, "\n")
	}
	out, err := wrapNamespace("API", origin, strings.Join(bodies, "\n\n"))
	if err != nil {
		return "", fmt.Errorf("generator: mods of %q: %w", ds.Name, err)
	}
	return out, nil
}

type classView struct {
	Name     string
	Generics string
	Fields   []string
}

type baseClassView struct {
	Origin  string
	Classes []classView
}

// BaseClassUnit renders the runnable class bodies of ds with initial
// values. Descriptions are left out so that they only affect declaration
// units.
func (g *Generator) BaseClassUnit(ds *standard.DataSource) (string, error) {
	origin := g.Origin(ds)
	view := baseClassView{Origin: origin, Classes: make([]classView, len(ds.BaseClasses))}
	for i, cls := range ds.BaseClasses {
		cv := classView{Name: cls.Name, Fields: make([]string, len(cls.Properties))}
		if g.surrounding == TypeScript {
			cv.Generics = generics(len(cls.TemplateArgs))
		}
		for j, p := range cls.Properties {
			cv.Fields[j] = p.CodeWithInitValue(origin, cls.Name)
		}
		view.Classes[i] = cv
	}
	out, err := executeTemplate("baseClass.tmpl", view)
	if err != nil {
		return "", fmt.Errorf("generator: base classes of %q: %w", ds.Name, err)
	}
	return out, nil
}

type indexView struct {
	Origin  string
	Origins []string
	TS      bool
}

// IndexUnit renders the entry unit of ds.
func (g *Generator) IndexUnit(ds *standard.DataSource) (string, error) {
	out, err := executeTemplate("index.tmpl", indexView{Origin: g.Origin(ds), TS: g.surrounding == TypeScript})
	if err != nil {
		return "", fmt.Errorf("generator: index of %q: %w", ds.Name, err)
	}
	return out, nil
}

// RootIndexUnit renders the entry unit aggregating every origin.
func (g *Generator) RootIndexUnit() (string, error) {
	view := indexView{TS: g.surrounding == TypeScript}
	for _, ds := range g.sources {
		view.Origins = append(view.Origins, ds.Name)
	}
	out, err := executeTemplate("rootIndex.tmpl", view)
	if err != nil {
		return "", fmt.Errorf("generator: root index: %w", err)
	}
	return out, nil
}

type declarationView struct {
	References []string
	Inline     []string
}

// Declaration renders the root declaration unit. references are emitted as
// triple-slash references; inline units are appended verbatim.
func Declaration(references, inline []string) (string, error) {
	out, err := executeTemplate("api.d.ts.tmpl", declarationView{References: references, Inline: inline})
	if err != nil {
		return "", fmt.Errorf("generator: declaration: %w", err)
	}
	return out, nil
}
