// Package fileutil holds the permission modes used for generated output.
package fileutil

import "os"

// OwnerReadWrite is the mode for private state such as history snapshots.
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the mode for generated source files consumed by build
// tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirMode is the mode for directories created while writing output.
const DirMode os.FileMode = 0o755
