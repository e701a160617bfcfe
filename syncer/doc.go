// Package syncer materializes a generated file tree on disk, writing only
// the files whose content changed.
//
// A tree is a Dir mapping entry names to File (literal content), Lazy
// (content rendered at sync time) or nested Dir nodes:
//
//	tree := syncer.Dir{
//		"api.d.ts": syncer.File(decl),
//		"mods": syncer.Dir{
//			"user.d.ts": syncer.Lazy(renderUser),
//		},
//	}
//	report, err := syncer.New(syncer.WithLogger(logger)).Sync(ctx, "src/service", tree)
//
// When the root directory does not exist yet every node is written without
// reading anything back. Otherwise each file is compared against its current
// content and rewritten only on a difference. An existing node of the wrong
// kind (a file where a directory is expected, or the reverse) is removed
// first.
//
// Siblings are synced concurrently. The first failure is returned as a
// *ponterrors.SyncError; files written before it are left in place.
package syncer
