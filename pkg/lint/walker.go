package lint

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
)

// IORuleID is the rule id attached to non-blocking traversal diagnostics.
// They are always warnings and never affect the exit status.
const IORuleID = "io-error"

// Walk produces the deterministically ordered file set for a run.
//
// It recursively enumerates candidate files under root, skipping subtrees
// whose directory name is in the ignore set. Permission errors and broken
// entries are non-fatal: the offending path is skipped, a warn diagnostic
// is recorded, and the walk continues. The returned files are sorted
// lexicographically by relative path so that run output is independent of
// filesystem enumeration order.
func Walk(root string, cfg *Config, logger *slog.Logger) ([]*File, []Diagnostic, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	var files []*File
	var diags []Diagnostic

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			rel, relErr := filepath.Rel(absRoot, path)
			if relErr != nil {
				rel = path
			}
			logger.Debug("skipping unreadable path", "path", path, "error", err)
			diags = append(diags, Diagnostic{
				Severity: SeverityWarn,
				Rule:     IORuleID,
				Message:  fmt.Sprintf("Skipped unreadable path: %v", err),
				File:     filepath.ToSlash(rel),
			})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != absRoot && cfg.IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinked files and directories are not followed.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		f := NewFile(absRoot, path)
		if !cfg.IsCandidateExt(f.Ext) {
			return nil
		}
		files = append(files, f)
		return nil
	})
	if walkErr != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", root, walkErr)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	logger.Debug("walked project tree", "root", absRoot, "files", len(files))
	return files, diags, nil
}
