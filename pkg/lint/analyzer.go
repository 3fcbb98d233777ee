package lint

import (
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Analyzer runs per-file rules against the walked file set.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration. A nil
// logger discards log output.
func NewAnalyzer(config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{config: config, logger: logger}
}

// AnalyzeFile runs all enabled per-file rules against one file.
func (a *Analyzer) AnalyzeFile(f *File) []Diagnostic {
	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		opts := a.config.GetRuleOptions(rule.ID)
		diags := rule.Check(f, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

// AnalyzeFiles runs per-file rules over the whole file set.
//
// Files are evaluated concurrently: rules are pure functions of the file
// and their options, and the collection is sorted before any output, so
// parallelism cannot change the result. Per-file results are still
// flattened in file order.
func (a *Analyzer) AnalyzeFiles(files []*File) []Diagnostic {
	results := make([][]Diagnostic, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			results[i] = a.AnalyzeFile(f)
			return nil
		})
	}
	// Workers never return errors; violations are data, not failures.
	_ = g.Wait()

	var diagnostics []Diagnostic
	for _, diags := range results {
		diagnostics = append(diagnostics, diags...)
	}
	a.logger.Debug("per-file analysis complete", "files", len(files), "diagnostics", len(diagnostics))
	return diagnostics
}
