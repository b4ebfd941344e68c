package render

import (
	"fmt"
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/config"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/util"
)

// D2Renderer generates D2 diagram text from the SEA topology.
type D2Renderer struct {
	DetailLevel string // minimal, standard, detailed
}

func (r *D2Renderer) detail() string {
	if r.DetailLevel == "" {
		return "standard"
	}
	return r.DetailLevel
}

func (r *D2Renderer) Render(topo *model.Topology, cfg *config.Config) string {
	r.DetailLevel = cfg.Render.DetailLevel
	theme := GetTheme(cfg.Theme)
	var b strings.Builder

	direction := cfg.Direction
	if direction == "" {
		direction = "down"
	}

	fmt.Fprintf(&b, "direction: %s\n\n", direction)

	// Hosts without a hostname all sanitize to "unknown"; suffix them
	// to keep D2 identifiers unique.
	seen := make(map[string]int)

	for _, hc := range topo.Hosts {
		id := util.SanitizeID(hc.HostLabel())
		seen[id]++
		if seen[id] > 1 {
			id = fmt.Sprintf("%s-%d", id, seen[id])
		}
		r.renderHost(&b, hc, theme, cfg, id)
	}

	return b.String()
}

func (r *D2Renderer) renderHost(b *strings.Builder, hc *model.HostConfig, theme *Theme, cfg *config.Config, id string) {
	color := theme.ColorForElement("host")

	fmt.Fprintf(b, "%s: %s {\n", id, util.Quote(hc.HostLabel()))
	fmt.Fprintf(b, "  style.fill: %q\n", color.Fill)
	fmt.Fprintf(b, "  style.stroke: %q\n", color.Stroke)

	if hc.SourceFile != "" && r.detail() != "minimal" {
		fmt.Fprintf(b, "  tooltip: %q\n", fmt.Sprintf("source: %s", hc.SourceFile))
	}

	for _, rec := range hc.SeaSections {
		b.WriteString("\n")
		r.renderSea(b, rec, theme, cfg, "  ")
	}

	b.WriteString("}\n\n")
}

func (r *D2Renderer) renderSea(b *strings.Builder, rec *model.SeaRecord, theme *Theme, cfg *config.Config, indent string) {
	id := util.SanitizeID(rec.SeaName)
	color := theme.ColorForElement("sea")

	fmt.Fprintf(b, "%s%s: %s {\n", indent, id, util.Quote("SEA "+rec.SeaName))
	if shape := LookupShape("sea"); shape != "" {
		fmt.Fprintf(b, "%s  shape: %s\n", indent, shape)
	}
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)

	if r.detail() == "detailed" && cfg.Display.ShowProperties && rec.Properties != nil && rec.Properties.Len() > 0 {
		fmt.Fprintf(b, "%s  tooltip: %q\n", indent, propertiesTooltip(rec.Properties))
	}

	if r.detail() != "minimal" {
		if rec.Etherchannel != nil {
			r.renderEtherchannel(b, rec.Etherchannel, theme, indent+"  ")
		}
		if len(rec.RealAdapters) > 0 {
			r.renderAdapterGroup(b, "real", "REAL ADAPTERS", rec.RealAdapters, theme, cfg, indent+"  ")
		}
		if len(rec.VirtualAdapters) > 0 {
			r.renderAdapterGroup(b, "virtual", "VIRTUAL ADAPTERS", rec.VirtualAdapters, theme, cfg, indent+"  ")
		}
		r.renderMemberLinks(b, rec, indent+"  ")
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *D2Renderer) renderEtherchannel(b *strings.Builder, ec *model.Etherchannel, theme *Theme, indent string) {
	color := theme.ColorForElement("etherchannel")

	fmt.Fprintf(b, "%setherchannel: %s {\n", indent, util.Quote("ETHERCHANNEL"))
	if shape := LookupShape("etherchannel"); shape != "" {
		fmt.Fprintf(b, "%s  shape: %s\n", indent, shape)
	}
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)

	for _, name := range ec.Adapters {
		fmt.Fprintf(b, "%s  %s: %s\n", indent, util.SanitizeID(name), util.Quote(name))
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *D2Renderer) renderAdapterGroup(b *strings.Builder, kind, label string, adapters []model.AdapterRef, theme *Theme, cfg *config.Config, indent string) {
	color := theme.ColorForElement(kind)

	fmt.Fprintf(b, "%s%s: %s {\n", indent, kind, util.Quote(label))
	fmt.Fprintf(b, "%s  style.fill: %q\n", indent, color.Fill)
	fmt.Fprintf(b, "%s  style.stroke: %q\n", indent, color.Stroke)

	for _, a := range adapters {
		nodeLabel := a.AdapterName
		if cfg.Display.ShowHardwarePaths && a.HardwarePath != "" && r.detail() != "minimal" {
			// D2 renders the \n escape as a line break inside a label
			nodeLabel = a.AdapterName + `\n` + a.HardwarePath
		}
		fmt.Fprintf(b, "%s  %s: %s", indent, util.SanitizeID(a.AdapterName), util.Quote(nodeLabel))
		if shape := LookupShape(kind); shape != "" {
			fmt.Fprintf(b, " { shape: %s }", shape)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

// renderMemberLinks connects etherchannel members to the matching
// entries of the real adapter list, mirroring the aggregation lines of
// the legacy diagrams.
func (r *D2Renderer) renderMemberLinks(b *strings.Builder, rec *model.SeaRecord, indent string) {
	if rec.Etherchannel == nil || len(rec.RealAdapters) == 0 {
		return
	}

	real := make(map[string]bool, len(rec.RealAdapters))
	for _, a := range rec.RealAdapters {
		real[a.AdapterName] = true
	}

	for _, name := range rec.Etherchannel.Adapters {
		if real[name] {
			id := util.SanitizeID(name)
			fmt.Fprintf(b, "%setherchannel.%s -> real.%s\n", indent, id, id)
		}
	}
}

func propertiesTooltip(props *model.Properties) string {
	var parts []string
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		parts = append(parts, fmt.Sprintf("%s: %s", key, value))
	}
	return strings.Join(parts, "\n")
}
