package collector

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

func init() {
	Register(func() RegisteredCollector { return &SnapshotCollector{} })
}

// SnapshotCollector loads a previously extracted JSON batch back into
// the topology, so diagrams can be regenerated without the original
// logs.
type SnapshotCollector struct {
	File string
}

func (sc *SnapshotCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "snapshot",
		DisplayName: "JSON Snapshot",
		Description: "Loads a previously extracted network_config.json",
		ConfigKey:   "snapshot",
		DetectHint:  "network_config.json",
	}
}

func (sc *SnapshotCollector) Enabled(sources map[string]any) bool {
	section, ok := sources["snapshot"].(map[string]any)
	if !ok {
		return false
	}
	file, _ := section["file"].(string)
	return file != ""
}

func (sc *SnapshotCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["file"].(string); ok {
		sc.File = v
	}
	return nil
}

func (sc *SnapshotCollector) Validate() []ValidationError {
	var errs []ValidationError
	if sc.File != "" {
		if _, err := os.Stat(sc.File); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.snapshot.file",
				Message:    fmt.Sprintf("file not found: %s", sc.File),
				Suggestion: "run 'hmcscannerdraw extract' first or fix the path",
			})
		}
	}
	return errs
}

func (sc *SnapshotCollector) Collect(topo *model.Topology) error {
	data, err := os.ReadFile(sc.File)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var hosts []*model.HostConfig
	if err := json.Unmarshal(data, &hosts); err != nil {
		return fmt.Errorf("parsing snapshot json: %w", err)
	}

	for _, hc := range hosts {
		topo.AddHost(hc)
	}

	return nil
}
