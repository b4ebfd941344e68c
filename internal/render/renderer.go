package render

import (
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/config"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
)

// Renderer defines the interface for diagram generators.
type Renderer interface {
	Render(topo *model.Topology, cfg *config.Config) string
}

// RenderD2 generates a D2 diagram from the extracted topology.
func RenderD2(topo *model.Topology, cfg *config.Config) string {
	r := &D2Renderer{
		DetailLevel: cfg.Render.DetailLevel,
	}
	return r.Render(topo, cfg)
}
