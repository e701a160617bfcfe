package syncer

import (
	"maps"
	"slices"
)

// Node is one entry of a generated tree: File, Lazy or Dir.
type Node interface {
	node()
}

// File is literal file content.
type File string

// Lazy renders file content when the tree is synced.
type Lazy func() (string, error)

// Dir maps entry names to nodes.
type Dir map[string]Node

func (File) node() {}
func (Lazy) node() {}
func (Dir) node()  {}

// Names returns the entry names in sorted order.
func (d Dir) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// Content returns the content of a File or Lazy node.
func Content(n Node) (string, error) {
	switch n := n.(type) {
	case File:
		return string(n), nil
	case Lazy:
		return n()
	}
	return "", nil
}

// Walk calls fn for every file of the tree with its slash-separated path,
// in sorted order.
func (d Dir) Walk(fn func(path string, n Node) error) error {
	return d.walk("", fn)
}

func (d Dir) walk(prefix string, fn func(path string, n Node) error) error {
	for _, name := range d.Names() {
		p := name
		if prefix != "" {
			p = prefix + "/" + name
		}
		if sub, ok := d[name].(Dir); ok {
			if err := sub.walk(p, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(p, d[name]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the node at a slash-separated path, or nil.
func (d Dir) Lookup(path string) Node {
	var cur Node = d
	for _, part := range splitPath(path) {
		dir, ok := cur.(Dir)
		if !ok {
			return nil
		}
		if cur, ok = dir[part]; !ok {
			return nil
		}
	}
	return cur
}

func splitPath(p string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(p); i++ {
		if i == len(p) || p[i] == '/' {
			if i > start {
				parts = append(parts, p[start:i])
			}
			start = i + 1
		}
	}
	return parts
}
