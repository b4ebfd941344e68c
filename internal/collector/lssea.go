package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/lssea"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/util"
)

func init() {
	Register(func() RegisteredCollector { return &LsseaCollector{} })
}

// LsseaCollector parses lssea diagnostic logs from a directory.
// Files are processed in sorted-filename order; a file that cannot be
// read is recorded as a warning and skipped, never aborting the batch.
type LsseaCollector struct {
	Dir    string
	Prefix string
	Suffix string

	warnings []string
}

func (lc *LsseaCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "lssea",
		DisplayName: "lssea Logs",
		Description: "Parses VIOS lssea diagnostic logs into SEA topology records",
		ConfigKey:   "lssea",
		DetectHint:  "lssea*log",
	}
}

func (lc *LsseaCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["lssea"].(map[string]any)
	if !ok {
		return false
	}
	dir, _ := section["dir"].(string)
	return dir != ""
}

func (lc *LsseaCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["dir"].(string); ok {
		lc.Dir = v
	}
	if v, ok := section["prefix"].(string); ok {
		lc.Prefix = v
	}
	if v, ok := section["suffix"].(string); ok {
		lc.Suffix = v
	}
	return nil
}

func (lc *LsseaCollector) Validate() []ValidationError {
	var errs []ValidationError
	if lc.Dir == "" {
		errs = append(errs, ValidationError{
			Field:      "sources.lssea.dir",
			Message:    "log directory is required",
			Suggestion: "set the directory containing lssea*log files",
		})
		return errs
	}
	info, err := os.Stat(lc.Dir)
	if err != nil || !info.IsDir() {
		errs = append(errs, ValidationError{
			Field:      "sources.lssea.dir",
			Message:    fmt.Sprintf("directory not found: %s", lc.Dir),
			Suggestion: "check the path or run 'hmcscannerdraw init' to reconfigure",
		})
		return errs
	}
	files, err := lc.globFiles()
	if err == nil && len(files) == 0 {
		errs = append(errs, ValidationError{
			Field:      "sources.lssea.dir",
			Message:    fmt.Sprintf("no %s files in %s", lc.pattern(), lc.Dir),
			Suggestion: "copy the lssea logs into the directory or adjust prefix/suffix",
		})
	}
	return errs
}

func (lc *LsseaCollector) Collect(topo *model.Topology) error {
	files, err := lc.globFiles()
	if err != nil {
		return fmt.Errorf("listing %s: %w", lc.pattern(), err)
	}
	sort.Strings(files)

	for _, path := range files {
		name := filepath.Base(path)

		text, err := util.ReadTextFile(path)
		if err != nil {
			lc.warnings = append(lc.warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		hc := lssea.ParseReport(lssea.Lines(text))
		hc.SourceFile = name
		topo.AddHost(hc)
	}

	return nil
}

// Warnings returns the per-file problems recorded during the last run.
func (lc *LsseaCollector) Warnings() []string {
	return lc.warnings
}

func (lc *LsseaCollector) pattern() string {
	prefix := lc.Prefix
	if prefix == "" {
		prefix = "lssea"
	}
	suffix := lc.Suffix
	if suffix == "" {
		suffix = "log"
	}
	return prefix + "*" + suffix
}

func (lc *LsseaCollector) globFiles() ([]string, error) {
	return filepath.Glob(filepath.Join(lc.Dir, lc.pattern()))
}
