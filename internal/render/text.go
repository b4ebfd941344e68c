package render

import (
	"fmt"
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

// RenderText generates a plain-text tree of the topology, a fallback
// for terminals where no D2 toolchain is available.
func RenderText(topo *model.Topology) string {
	var b strings.Builder

	b.WriteString("NETWORK CONFIGURATION DIAGRAM\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, hc := range topo.Hosts {
		fmt.Fprintf(&b, "HOSTNAME: %s\n", hc.HostLabel())
		b.WriteString(strings.Repeat("-", 30) + "\n\n")

		for i, rec := range hc.SeaSections {
			fmt.Fprintf(&b, "SEA %d: %s\n", i+1, rec.SeaName)

			if rec.Etherchannel != nil && len(rec.Etherchannel.Adapters) > 0 {
				fmt.Fprintf(&b, "  └── ETHERCHANNEL: %s\n", strings.Join(rec.Etherchannel.Adapters, ", "))
			}

			if len(rec.RealAdapters) > 0 {
				b.WriteString("  └── REAL ADAPTERS:\n")
				for _, a := range rec.RealAdapters {
					fmt.Fprintf(&b, "      ├── %s (%s)\n", a.AdapterName, a.HardwarePath)
				}
			}

			if len(rec.VirtualAdapters) > 0 {
				b.WriteString("  └── VIRTUAL ADAPTERS:\n")
				for _, a := range rec.VirtualAdapters {
					fmt.Fprintf(&b, "      ├── %s (%s)\n", a.AdapterName, a.HardwarePath)
				}
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}
