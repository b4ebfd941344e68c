package collector

import (
	"testing"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalizeSortsBySourceFile(t *testing.T) {
	topo := model.NewTopology()

	b := model.NewHostConfig()
	b.SourceFile = "lssea_b.log"
	a := model.NewHostConfig()
	a.SourceFile = "lssea_a.log"
	topo.AddHost(b)
	topo.AddHost(a)

	Finalize(topo)

	assert.Equal(t, "lssea_a.log", topo.Hosts[0].SourceFile)
	assert.Equal(t, "lssea_b.log", topo.Hosts[1].SourceFile)
}

func TestFinalizeNormalizesNilCollections(t *testing.T) {
	topo := model.NewTopology()

	hc := &model.HostConfig{
		SeaSections: []*model.SeaRecord{
			{
				SeaName:      "ent5",
				Etherchannel: &model.Etherchannel{},
			},
		},
	}
	topo.AddHost(hc)
	topo.AddHost(&model.HostConfig{})

	Finalize(topo)

	rec := topo.Hosts[0].SeaSections[0]
	require.NotNil(t, rec.Properties)
	assert.NotNil(t, rec.RealAdapters)
	assert.NotNil(t, rec.VirtualAdapters)
	assert.NotNil(t, rec.Etherchannel.Adapters)
	assert.NotNil(t, topo.Hosts[1].SeaSections)
}
