// Package pont generates typed TypeScript API clients from Swagger 2.0 and
// OpenAPI 3 documents and keeps them in sync with the backend contract.
//
// # Overview
//
// A run flows through these packages:
//
//   - parser: reads a JSON or YAML document into a dialect-neutral Document
//   - compiler: parses generic type references such as Page«User»
//   - transformer: turns a Document into a standard.DataSource model
//   - generator: renders declaration and runnable units as a virtual tree
//   - syncer: writes the tree to disk, touching only changed files
//
// The manager package ties them together for a pont-config.json file,
// including lock snapshots, drift detection and polling. The pont command
// exposes it on the command line.
//
// # Quick Start
//
//	doc, err := parser.ParseFile("swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ds, err := transformer.Transform(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g, err := generator.New([]*standard.DataSource{ds})
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, _ := syncer.New()
//	if _, err := s.Sync(ctx, "src/service", g.Files()); err != nil {
//		log.Fatal(err)
//	}
package pont
