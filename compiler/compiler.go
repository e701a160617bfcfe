package compiler

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Saber-Kurama/learn-pont/standard"
)

// DefaultCacheSize bounds the number of parsed references a Compiler keeps.
const DefaultCacheSize = 4096

// Compiler compiles references through an LRU cache. Large documents
// reference the same handful of classes from hundreds of members.
type Compiler struct {
	cache *lru.Cache[string, *AST]
}

// New returns a Compiler caching up to size parsed references. A size <= 0
// uses DefaultCacheSize.
func New(size int) *Compiler {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, *AST](size)
	return &Compiler{cache: cache}
}

// Compile is the cached form of the package-level Compile. Failed
// references are not cached. The returned AST is shared and must not be
// modified.
func (c *Compiler) Compile(ref, keyword string) (*AST, error) {
	key := keyword + "\x00" + ref
	if ast, ok := c.cache.Get(key); ok {
		return ast, nil
	}
	ast, err := Compile(ref, keyword)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, ast)
	return ast, nil
}

// Type compiles ref and resolves it in one step.
func (c *Compiler) Type(ref, keyword string, defs DefSet, classTemplateArgs []*standard.DataType) (*standard.DataType, error) {
	ast, err := c.Compile(ref, keyword)
	if err != nil {
		return nil, err
	}
	return Resolve(ast, defs, classTemplateArgs), nil
}

// Len returns the number of cached references.
func (c *Compiler) Len() int {
	return c.cache.Len()
}
