package generator

import (
	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
)

// DefaultFileStructure lays out one declaration unit per class and per
// operation group:
//
//	defs/{Class}.d.ts
//	mods/{mod}.d.ts
//	baseClass.ts
//	index.ts
//	api.d.ts
//	api-lock.json
//
// In multiple-origin mode the first four entries are nested under a
// directory per origin and index.ts aggregates the origins.
func DefaultFileStructure(g *Generator) syncer.Dir {
	if !g.MultipleOrigins() {
		ds := g.DataSources()[0]
		dir := g.OriginDir(ds)
		dir[DeclarationFile] = syncer.Lazy(func() (string, error) {
			return Declaration(g.references(ds, "./"), nil)
		})
		dir[LockFile] = syncer.Lazy(g.Lock)
		return dir
	}

	root := syncer.Dir{}
	var refs []string
	for _, ds := range g.DataSources() {
		root[ds.Name] = g.OriginDir(ds)
		refs = append(refs, g.references(ds, "./"+ds.Name+"/")...)
	}
	root[g.FileName("index")] = syncer.Lazy(g.RootIndexUnit)
	root[DeclarationFile] = syncer.Lazy(func() (string, error) {
		return Declaration(refs, nil)
	})
	root[LockFile] = syncer.Lazy(g.Lock)
	return root
}

// OriginDir returns the per-origin part of the default layout.
func (g *Generator) OriginDir(ds *standard.DataSource) syncer.Dir {
	defs := make(syncer.Dir, len(ds.BaseClasses))
	for _, cls := range ds.BaseClasses {
		defs[cls.Name+".d.ts"] = syncer.Lazy(func() (string, error) {
			return g.ClassUnit(ds, cls)
		})
	}
	mods := make(syncer.Dir, len(ds.Mods))
	for _, mod := range ds.Mods {
		mods[mod.Name+".d.ts"] = syncer.Lazy(func() (string, error) {
			return g.ModUnit(ds, mod)
		})
	}
	return syncer.Dir{
		"defs": defs,
		"mods": mods,
		g.FileName("baseClass"): syncer.Lazy(func() (string, error) {
			return g.BaseClassUnit(ds)
		}),
		g.FileName("index"): syncer.Lazy(func() (string, error) {
			return g.IndexUnit(ds)
		}),
	}
}

func (g *Generator) references(ds *standard.DataSource, prefix string) []string {
	refs := make([]string, 0, len(ds.BaseClasses)+len(ds.Mods))
	for _, cls := range ds.BaseClasses {
		refs = append(refs, prefix+"defs/"+cls.Name+".d.ts")
	}
	for _, mod := range ds.Mods {
		refs = append(refs, prefix+"mods/"+mod.Name+".d.ts")
	}
	return refs
}

// SingleFileStructure puts every declaration into api.d.ts. Runnable units
// keep the default layout.
func SingleFileStructure(g *Generator) syncer.Dir {
	declaration := syncer.Lazy(func() (string, error) {
		var inline []string
		for _, ds := range g.DataSources() {
			classes, err := g.ClassesUnit(ds)
			if err != nil {
				return "", err
			}
			mods, err := g.ModsUnit(ds)
			if err != nil {
				return "", err
			}
			inline = append(inline, classes, mods)
		}
		return Declaration(nil, inline)
	})
	runnable := func(ds *standard.DataSource) syncer.Dir {
		return syncer.Dir{
			g.FileName("baseClass"): syncer.Lazy(func() (string, error) {
				return g.BaseClassUnit(ds)
			}),
			g.FileName("index"): syncer.Lazy(func() (string, error) {
				return g.IndexUnit(ds)
			}),
		}
	}

	var root syncer.Dir
	if g.MultipleOrigins() {
		root = syncer.Dir{g.FileName("index"): syncer.Lazy(g.RootIndexUnit)}
		for _, ds := range g.DataSources() {
			root[ds.Name] = runnable(ds)
		}
	} else {
		root = runnable(g.DataSources()[0])
	}
	root[DeclarationFile] = declaration
	root[LockFile] = syncer.Lazy(g.Lock)
	return root
}
