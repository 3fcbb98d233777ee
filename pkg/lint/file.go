package lint

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is one candidate file produced by the walker.
//
// Paths and extension are fixed at construction. Content is loaded from
// disk at most once, on first request, no matter how many rules inspect
// the file.
type File struct {
	// Path is the absolute path on disk.
	Path string
	// RelPath is the slash-separated path relative to the project root.
	RelPath string
	// Ext is the extension without the leading dot, e.g. "tsx".
	Ext string

	once    sync.Once
	content string
	readErr error
}

// NewFile constructs a File for path under root.
func NewFile(root, path string) *File {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return &File{
		Path:    path,
		RelPath: filepath.ToSlash(rel),
		Ext:     strings.TrimPrefix(filepath.Ext(path), "."),
	}
}

// Content returns the file text, reading it on first call.
func (f *File) Content() (string, error) {
	f.once.Do(func() {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			f.readErr = err
			return
		}
		f.content = string(data)
	})
	return f.content, f.readErr
}

// Name returns the base filename, e.g. "Button.tsx".
func (f *File) Name() string {
	return filepath.Base(f.Path)
}

// Stem returns the filename without its final extension, e.g. "Button" for
// "Button.tsx" and "next.config" for "next.config.js".
func (f *File) Stem() string {
	name := f.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Dir returns the absolute directory containing the file.
func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// RelDir returns the slash-separated directory relative to the project
// root, or "" for files directly under the root.
func (f *File) RelDir() string {
	dir := filepath.ToSlash(filepath.Dir(f.RelPath))
	if dir == "." {
		return ""
	}
	return dir
}
