package collector

import (
	"fmt"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/config"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

// CollectResult holds the result of a single collector run.
type CollectResult struct {
	Name     string
	Skipped  bool
	Detail   string
	Warnings []string
	Err      error
}

// warner is implemented by collectors that accumulate non-fatal
// per-file problems during a run.
type warner interface {
	Warnings() []string
}

// Collect runs all registered collectors and assembles the topology.
func Collect(cfg *config.Config) (*model.Topology, []CollectResult, error) {
	topo := model.NewTopology()
	rawSources := cfg.RawSources

	var results []CollectResult

	for _, c := range All() {
		meta := c.Metadata()

		if !c.Enabled(rawSources) {
			results = append(results, CollectResult{Name: meta.DisplayName, Skipped: true})
			continue
		}

		// Extract this collector's config section
		section, _ := rawSources[meta.ConfigKey].(map[string]any)
		if err := c.Configure(section); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		before := len(topo.Hosts)
		if err := c.Collect(topo); err != nil {
			cerr := &CollectorError{Collector: meta.DisplayName, Err: err}
			results = append(results, CollectResult{Name: meta.DisplayName, Err: cerr})
			return nil, results, cerr
		}

		res := CollectResult{
			Name:   meta.DisplayName,
			Detail: fmt.Sprintf("%d host(s)", len(topo.Hosts)-before),
		}
		if w, ok := c.(warner); ok {
			res.Warnings = w.Warnings()
		}
		results = append(results, res)
	}

	Finalize(topo)

	return topo, results, nil
}
