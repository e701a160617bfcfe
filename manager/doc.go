// Package manager runs the generation pipeline for a configuration.
//
// A Manager fetches every configured origin concurrently, parses and
// transforms each document into a [standard.DataSource], renders the code
// tree with the generator and materializes it through the syncer. Snapshots
// of changed models are recorded in a [history.Store] when one is
// configured.
//
// Typical use:
//
//	cfg, err := config.Load("pont-config.json")
//	m, err := manager.New(cfg, manager.WithLogger(logger))
//	result, err := m.Generate(ctx)
//
// Watch repeats Generate every pollingTime seconds until its context is
// canceled; unchanged models produce no writes.
package manager
