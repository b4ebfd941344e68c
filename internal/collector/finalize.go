package collector

import (
	"sort"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

// Finalize normalizes the assembled topology after all collectors ran:
// hosts in stable sorted-filename order and no nil collections, so the
// persisted shape always carries empty arrays rather than null.
func Finalize(topo *model.Topology) {
	sort.SliceStable(topo.Hosts, func(i, j int) bool {
		return topo.Hosts[i].SourceFile < topo.Hosts[j].SourceFile
	})

	for _, hc := range topo.Hosts {
		if hc.SeaSections == nil {
			hc.SeaSections = []*model.SeaRecord{}
		}
		for _, rec := range hc.SeaSections {
			if rec.Properties == nil {
				rec.Properties = model.NewProperties()
			}
			if rec.RealAdapters == nil {
				rec.RealAdapters = []model.AdapterRef{}
			}
			if rec.VirtualAdapters == nil {
				rec.VirtualAdapters = []model.AdapterRef{}
			}
			if rec.Etherchannel != nil && rec.Etherchannel.Adapters == nil {
				rec.Etherchannel.Adapters = []string{}
			}
		}
	}
}
