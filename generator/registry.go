package generator

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
)

// Template customizes code emission. A nil field falls back to the default
// behavior.
type Template struct {
	// ClassDeclaration renders one class declaration, without the enclosing
	// namespace.
	ClassDeclaration func(cls *standard.BaseClass, origin string) string
	// FileStructure shapes the generated tree.
	FileStructure func(g *Generator) syncer.Dir
}

// Built-in template names.
const (
	TemplateDefault    = "default"
	TemplateSingleFile = "single-file"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]Template{
		TemplateDefault:    {ClassDeclaration: DefaultClassDeclaration, FileStructure: DefaultFileStructure},
		TemplateSingleFile: {ClassDeclaration: DefaultClassDeclaration, FileStructure: SingleFileStructure},
	}
)

// RegisterTemplate makes t selectable by name. Registering an existing name
// replaces it.
func RegisterTemplate(name string, t Template) error {
	if name == "" {
		return fmt.Errorf("generator: template name cannot be empty")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = t.withDefaults()
	return nil
}

// LookupTemplate returns the template registered under name. The empty name
// selects the default template.
func LookupTemplate(name string) (Template, bool) {
	if name == "" {
		name = TemplateDefault
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[name]
	return t, ok
}

// TemplateNames returns the registered names in sorted order.
func TemplateNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (t Template) withDefaults() Template {
	if t.ClassDeclaration == nil {
		t.ClassDeclaration = DefaultClassDeclaration
	}
	if t.FileStructure == nil {
		t.FileStructure = DefaultFileStructure
	}
	return t
}
