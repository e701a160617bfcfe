// Package generator renders TypeScript declaration and runnable units from
// transformed data sources.
//
// # Quick Start
//
//	g, err := generator.New([]*standard.DataSource{ds},
//		generator.WithTemplate(generator.TemplateDefault),
//		generator.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, _ := syncer.New()
//	report, err := s.Sync(ctx, "src/service", g.Files())
//
// # Generated Files
//
// The default template produces, per origin:
//   - defs/{Class}.d.ts: one class declaration in the defs namespace
//   - mods/{mod}.d.ts: one operation group in the API namespace
//   - baseClass.ts: runnable classes with initial values
//   - index.ts: the entry unit
//
// plus api.d.ts, which references every unit and declares ObjectMap, and
// api-lock.json, the snapshot of the model used for incremental
// regeneration. Splitting declarations per class and per group keeps a
// change to one definition confined to its own unit.
//
// # Templates
//
// A Template replaces the class declaration renderer, the tree layout, or
// both. Templates are registered by name with RegisterTemplate and chosen
// with WithTemplate. The built-in "single-file" template inlines every
// declaration into api.d.ts.
//
// # Formatting
//
// Every unit except JSON files passes through a Formatter, BasicFormatter
// by default. A formatter failure keeps the unformatted output and logs a
// warning.
package generator
