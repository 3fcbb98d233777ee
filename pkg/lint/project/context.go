package project

import (
	"sync"

	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/source"
)

// Context provides all data needed for batch analysis: the project root,
// the ordered file set and the lazily built import graph.
type Context struct {
	root  string
	files []*lint.File
	cfg   *lint.Config

	importsOnce sync.Once
	imports     map[string][]string // rel path -> raw import specifiers
}

// NewContext creates a context for one batch analysis pass.
func NewContext(root string, files []*lint.File, cfg *lint.Config) *Context {
	if cfg == nil {
		cfg = lint.NewConfig()
	}
	return &Context{root: root, files: files, cfg: cfg}
}

// Root returns the absolute project root.
func (c *Context) Root() string {
	return c.root
}

// Files returns the ordered file set.
func (c *Context) Files() []*lint.File {
	return c.files
}

// Config returns the resolved run configuration.
func (c *Context) Config() *lint.Config {
	return c.cfg
}

// Imports returns the import graph: each file's raw import specifiers,
// keyed by relative path. The graph is built on the first call, exactly
// once per run, and is read-only afterwards. Files whose content cannot
// be read contribute no edges.
func (c *Context) Imports() map[string][]string {
	c.importsOnce.Do(func() {
		c.imports = make(map[string][]string, len(c.files))
		for _, f := range c.files {
			content, err := f.Content()
			if err != nil {
				continue
			}
			if specs := source.ImportSpecifiers(content); len(specs) > 0 {
				c.imports[f.RelPath] = specs
			}
		}
	})
	return c.imports
}
