package standard

import (
	"cmp"
	"slices"
	"strings"
)

// BaseClass is a schema-defined class. Generic classes carry one
// TemplateArgs entry per parameter.
type BaseClass struct {
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Properties   []*Property `json:"properties"`
	TemplateArgs []*DataType `json:"templateArgs"`
}

// GetDescription implements Described.
func (c *BaseClass) GetDescription() string {
	return c.Description
}

// SortProperties orders properties by name.
func (c *BaseClass) SortProperties() {
	slices.SortStableFunc(c.Properties, func(a, b *Property) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// DefsArgCount returns how many template arguments are schema classes.
func (c *BaseClass) DefsArgCount() int {
	n := 0
	for _, arg := range c.TemplateArgs {
		if arg.IsDefsType {
			n++
		}
	}
	return n
}

// Interface is one HTTP operation.
type Interface struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Consumes    []string    `json:"consumes,omitempty"`
	Parameters  []*Property `json:"parameters"`
	Response    *DataType   `json:"response"`

	// Tags is only used while grouping operations into mods.
	Tags []string `json:"-"`
}

// GetDescription implements Described.
func (i *Interface) GetDescription() string {
	return i.Description
}

// BodyParam returns the body parameter, or nil.
func (i *Interface) BodyParam() *Property {
	for _, p := range i.Parameters {
		if p.In == "body" {
			return p
		}
	}
	return nil
}

// NonBodyParams returns every parameter not sent in the request body.
func (i *Interface) NonBodyParams() []*Property {
	params := make([]*Property, 0, len(i.Parameters))
	for _, p := range i.Parameters {
		if p.In != "body" {
			params = append(params, p)
		}
	}
	return params
}

// Mod is a named group of operations.
type Mod struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Interfaces  []*Interface `json:"interfaces"`
}

// GetDescription implements Described.
func (m *Mod) GetDescription() string {
	return m.Description
}

// SortInterfaces orders operations by path, then method, then name.
func (m *Mod) SortInterfaces() {
	slices.SortStableFunc(m.Interfaces, func(a, b *Interface) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.Method, b.Method),
			cmp.Compare(a.Name, b.Name),
		)
	})
}

// DataSource is the transformed model of one origin.
type DataSource struct {
	Name        string       `json:"name"`
	BaseClasses []*BaseClass `json:"baseClasses"`
	Mods        []*Mod       `json:"mods"`
}

// Class returns the class named name, or nil.
func (ds *DataSource) Class(name string) *BaseClass {
	for _, c := range ds.BaseClasses {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Mod returns the mod named name, or nil.
func (ds *DataSource) Mod(name string) *Mod {
	for _, m := range ds.Mods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Interfaces returns every operation across all mods.
func (ds *DataSource) Interfaces() []*Interface {
	var all []*Interface
	for _, m := range ds.Mods {
		all = append(all, m.Interfaces...)
	}
	return all
}

// SortMods orders mods by name and their operations by path.
func (ds *DataSource) SortMods() {
	slices.SortStableFunc(ds.Mods, func(a, b *Mod) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, m := range ds.Mods {
		m.SortInterfaces()
	}
}

var (
	_ Described = (*BaseClass)(nil)
	_ Described = (*Interface)(nil)
	_ Described = (*Mod)(nil)
)
