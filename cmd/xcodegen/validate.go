package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arunabhdas/xcodegen/internal/cache"
	"github.com/arunabhdas/xcodegen/internal/watch"
	"github.com/arunabhdas/xcodegen/pkg/cli"
	specErrors "github.com/arunabhdas/xcodegen/pkg/spec/errors"
	"github.com/arunabhdas/xcodegen/pkg/spec/parser"
	"github.com/arunabhdas/xcodegen/pkg/spec/validator"
)

var validateFlags struct {
	spec      string
	format    string
	watch     bool
	cachePath string
	noCache   bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a project spec",
	Long: `Load a project spec from YAML and check every reference in it.

The validate command parses the spec (merging any includes) and runs the
full consistency pass: target dependencies, configuration references,
settings-group includes, scheme targets and configs, and the existence of
every referenced path under the spec's directory. Every defect found is
reported; validation never stops at the first problem.

A byte-identical spec that validated cleanly before is skipped using a
local cache; pass --no-cache to force a full run (for example after files
were moved without editing the spec).

Examples:
  # Validate a spec
  xcodegen validate --spec project.yml

  # JSON output for CI
  xcodegen validate --spec project.yml --format json

  # Re-validate on every change, until interrupted
  xcodegen validate --spec project.yml --watch`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.spec, "spec", "s", "project.yml", "path to the spec file")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().BoolVarP(&validateFlags.watch, "watch", "w", false, "re-validate when spec files change")
	validateCmd.Flags().StringVar(&validateFlags.cachePath, "cache-path", "", "validation cache database (default: .xcodegen-cache.db next to the spec)")
	validateCmd.Flags().BoolVar(&validateFlags.noCache, "no-cache", false, "ignore and do not update the validation cache")
}

// validationResult is the renderable outcome of one validation run.
type validationResult struct {
	Spec    string               `json:"spec"`
	Valid   bool                 `json:"valid"`
	RunID   string               `json:"run_id,omitempty"`
	Cached  bool                 `json:"cached,omitempty"`
	Defects []*specErrors.Defect `json:"defects,omitempty"`
}

func (r validationResult) String() string {
	if r.Valid {
		return fmt.Sprintf("✓ %s is valid\n", r.Spec)
	}
	s := fmt.Sprintf("✗ %s has %d defect(s):\n", r.Spec, len(r.Defects))
	for _, d := range r.Defects {
		s += "\t- " + d.Error() + "\n"
	}
	return s
}

func runValidate(cmd *cobra.Command, args []string) error {
	specPath, err := filepath.Abs(validateFlags.spec)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	if !validateFlags.watch {
		return validateOnce(specPath)
	}

	// Watch mode: report each run but keep running until interrupted.
	if err := validateOnce(specPath); err != nil {
		slog.Warn("spec is invalid, watching for changes", "error", errSummary(err))
	}

	watcher, err := watch.NewWatcher(watch.DefaultConfig(filepath.Dir(specPath)), slog.Default())
	if err != nil {
		return cli.NewCommandError("validate", err)
	}
	defer watcher.Close()

	ctx := cli.SetupSignalHandler()
	return watcher.Watch(ctx, func() error {
		if err := validateOnce(specPath); err != nil {
			slog.Warn("spec is invalid", "error", errSummary(err))
		}
		return nil
	})
}

// validateOnce runs a single parse+validate pass and renders the result.
// It returns an error iff the spec failed to load or had defects.
func validateOnce(specPath string) error {
	formatter := cli.NewFormatter(cli.OutputFormat(validateFlags.format))

	data, err := os.ReadFile(specPath)
	if err != nil {
		return cli.NewSpecError(specPath, err.Error())
	}
	specHash := cache.HashSpec(data)

	store := openCache(specPath)
	if store != nil {
		defer store.Close()

		if entry, err := store.Lookup(context.Background(), specHash); err != nil {
			slog.Debug("cache lookup failed", "error", err)
		} else if entry != nil && entry.Valid() {
			// Only clean runs are replayed; anything else gets a
			// full pass so fixes on disk are picked up.
			slog.Debug("cache hit", "run_id", entry.RunID, "validated_at", entry.ValidatedAt)
			return renderCached(formatter, specPath, entry)
		}
	}

	project, err := parser.NewParser().Parse(specPath)
	if err != nil {
		return cli.NewSpecError(specPath, err.Error())
	}

	result := validationResult{Spec: specPath, Valid: true}
	if err := validator.NewValidator().Validate(project); err != nil {
		list := err.(*specErrors.ValidationErrorList)
		result.Valid = false
		result.Defects = list.Defects
	}

	if store != nil {
		report := ""
		if !result.Valid {
			report = (&specErrors.ValidationErrorList{Defects: result.Defects}).Error()
		}
		if entry, err := store.Record(context.Background(), specHash, len(result.Defects), report); err != nil {
			slog.Debug("cache record failed", "error", err)
		} else {
			result.RunID = entry.RunID
		}
	}

	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return cli.NewCommandError("validate", err)
	}
	if !result.Valid {
		return cli.NewCommandError("validate", fmt.Errorf("spec validation failed with %d defect(s)", len(result.Defects)))
	}
	return nil
}

// renderCached replays a recorded clean outcome for an unchanged spec.
func renderCached(formatter cli.Formatter, specPath string, entry *cache.Entry) error {
	result := validationResult{
		Spec:   specPath,
		Valid:  true,
		RunID:  entry.RunID,
		Cached: true,
	}
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return cli.NewCommandError("validate", err)
	}
	return nil
}

// openCache returns the run cache, or nil when caching is disabled or the
// database cannot be opened. Cache trouble never fails validation.
func openCache(specPath string) *cache.Store {
	if validateFlags.noCache {
		return nil
	}
	path := validateFlags.cachePath
	if path == "" {
		path = filepath.Join(filepath.Dir(specPath), ".xcodegen-cache.db")
	}
	store, err := cache.Open(path)
	if err != nil {
		slog.Debug("validation cache unavailable", "path", path, "error", err)
		return nil
	}
	return store
}

func errSummary(err error) string {
	if cmdErr, ok := err.(*cli.CommandError); ok {
		return cmdErr.Err.Error()
	}
	return err.Error()
}
