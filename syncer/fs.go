package syncer

import (
	"io/fs"
	"os"

	"github.com/Saber-Kurama/learn-pont/internal/fileutil"
)

// FS is the file system a Syncer writes to.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	MkdirAll(name string) error
	RemoveAll(name string) error
}

// OSFS writes to the host file system.
type OSFS struct{}

var _ FS = OSFS{}

// Stat implements FS.
func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// ReadFile implements FS.
func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile implements FS. Generated files are readable by all.
func (OSFS) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, fileutil.ReadableByAll)
}

// MkdirAll implements FS.
func (OSFS) MkdirAll(name string) error { return os.MkdirAll(name, fileutil.DirMode) }

// RemoveAll implements FS.
func (OSFS) RemoveAll(name string) error { return os.RemoveAll(name) }
