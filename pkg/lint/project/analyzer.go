package project

import (
	"io"
	"log/slog"

	"github.com/treelint/treelint/pkg/lint"
)

// Analyzer runs batch rules against a project context. Batch rules run
// after all per-file evaluation has finished.
type Analyzer struct {
	config *lint.Config
	logger *slog.Logger
}

// NewAnalyzer creates a batch analyzer with optional configuration. A nil
// logger discards log output.
func NewAnalyzer(config *lint.Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = lint.NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{config: config, logger: logger}
}

// Analyze runs all registered batch rules against the context.
func (a *Analyzer) Analyze(ctx *Context) []lint.Diagnostic {
	if ctx == nil {
		return nil
	}

	var diagnostics []lint.Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(ctx)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		diagnostics = append(diagnostics, diags...)
	}

	a.logger.Debug("batch analysis complete", "rules", Count(), "diagnostics", len(diagnostics))
	return diagnostics
}
