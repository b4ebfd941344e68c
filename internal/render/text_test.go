package render

import (
	"testing"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	output := RenderText(testTopology())

	assert.Contains(t, output, "NETWORK CONFIGURATION DIAGRAM")
	assert.Contains(t, output, "HOSTNAME: vios1a")
	assert.Contains(t, output, "SEA 1: ent5")
	assert.Contains(t, output, "ETHERCHANNEL: ent0, ent1")
	assert.Contains(t, output, "ent0 (U78CB.001.WZS0043-P1-C6-T1)")
	assert.Contains(t, output, "ent4 (U8286.41A.21FD4BV-V1-C20-T1)")
}

func TestRenderTextEmptySections(t *testing.T) {
	topo := model.NewTopology()
	hc := model.NewHostConfig()
	hc.SeaSections = append(hc.SeaSections, model.NewSeaRecord("ent5"))
	topo.AddHost(hc)

	output := RenderText(topo)

	assert.Contains(t, output, "HOSTNAME: unknown")
	assert.Contains(t, output, "SEA 1: ent5")
	assert.NotContains(t, output, "ETHERCHANNEL")
	assert.NotContains(t, output, "REAL ADAPTERS")
}
