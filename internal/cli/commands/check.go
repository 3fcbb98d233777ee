package commands

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/treelint/treelint/internal/cli/output"
	"github.com/treelint/treelint/internal/config"
	"github.com/treelint/treelint/pkg/lint"
	"github.com/treelint/treelint/pkg/lint/project"
	_ "github.com/treelint/treelint/pkg/lint/project/rules" // register batch rules
	_ "github.com/treelint/treelint/pkg/lint/rules"         // register per-file rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path   string // Project directory
	Config string // Config file path
	Format string // Output format: text, json
	Watch  bool   // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check a source tree against its conventions",
		Long: `Walk a project directory and report convention violations.

Rules are configured in .treelintrc.yaml (or .yml/.json) in the project
root. The command exits with code 1 when any error-severity diagnostic
is reported; warnings alone do not fail the run.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON: Machine-readable format`,
		Example: `  # Check the current directory
  treelint check

  # Check a specific project
  treelint check ./apps/web

  # Output as JSON
  treelint check --format json

  # Re-run on file changes
  treelint check --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = "."
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and re-run")
	cmd.Flags().BoolP("verbose", "v", false, "Verbose logging")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve project path: %w", err)
	}

	cfgFile := config.FindConfigFile(root, opts.Config)
	raw, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	lintCfg, err := raw.Compile()
	if err != nil {
		return err
	}

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(raw.Format))
	logger := newLogger(raw.Verbose, cmd.ErrOrStderr())

	if opts.Watch {
		return watchProject(cmd, root, lintCfg, r, logger)
	}

	coll, err := checkProject(root, lintCfg, logger)
	if err != nil {
		return err
	}
	renderCollection(r, coll)
	if coll.HasErrors() {
		return fmt.Errorf("%d convention error(s) found", coll.ErrorCount())
	}
	return nil
}

// checkProject runs one full pass: walk, per-file rules, batch rules.
func checkProject(root string, cfg *lint.Config, logger *slog.Logger) (*lint.Collection, error) {
	files, walkDiags, err := lint.Walk(root, cfg, logger)
	if err != nil {
		return nil, err
	}

	coll := lint.NewCollection()
	coll.Add(walkDiags...)

	analyzer := lint.NewAnalyzer(cfg, logger)
	coll.Add(analyzer.AnalyzeFiles(files)...)

	ctx := project.NewContext(root, files, cfg)
	coll.Add(project.NewAnalyzer(cfg, logger).Analyze(ctx)...)

	coll.Finalize()
	return coll, nil
}

// renderCollection writes diagnostics in the renderer's effective mode.
func renderCollection(r *output.Renderer, coll *lint.Collection) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(coll)
		return
	}

	if coll.Len() == 0 {
		r.Success("No issues found!")
		return
	}

	st := r.Styles()
	for _, d := range coll.Diagnostics {
		sev := st.Warning.Render("warn")
		if d.Severity == lint.SeverityError {
			sev = st.Error.Render("error")
		}
		location := d.File
		if d.Line > 0 {
			location = fmt.Sprintf("%s:%d", d.File, d.Line)
		}
		r.Printf("%s: %s [%s]\n", sev, d.Message, st.RuleID.Render(d.Rule))
		r.Printf("  %s %s\n", st.FilePath.Render("-->"), location)
		r.Println("")
	}

	if coll.ErrorCount() > 0 {
		r.Printf("%s %d error(s), %d warning(s) found\n",
			st.Error.Render("✗"), coll.ErrorCount(), coll.WarnCount())
	} else {
		r.Printf("%s %d warning(s) found\n", st.Warning.Render("⚠"), coll.WarnCount())
	}
}

// watchDebounce coalesces editor save bursts into a single re-run.
const watchDebounce = 300 * time.Millisecond

// watchProject re-runs the check whenever files under root change. It
// returns when the command context is cancelled.
func watchProject(cmd *cobra.Command, root string, cfg *lint.Config, r *output.Renderer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchRecursive(watcher, root, cfg); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	run := func() {
		coll, err := checkProject(root, cfg, logger)
		if err != nil {
			r.Errorf("check failed: %v\n", err)
			return
		}
		renderCollection(r, coll)
	}
	run()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	done := cmd.Context().Done()
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				_ = addWatchRecursive(watcher, ev.Name, cfg)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, run)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// addWatchRecursive watches root and every non-ignored directory under
// it. Unreadable paths are skipped, as in the walker.
func addWatchRecursive(w *fsnotify.Watcher, root string, cfg *lint.Config) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && cfg.IsIgnoredDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// newLogger returns a debug-level text logger when verbose, a discard
// logger otherwise.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
