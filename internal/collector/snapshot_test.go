package collector

import (
	"testing"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCollector(t *testing.T) {
	topo := model.NewTopology()

	sc := &SnapshotCollector{File: "../../testdata/snapshot/network_config.json"}

	err := sc.Collect(topo)
	require.NoError(t, err)
	require.Len(t, topo.Hosts, 2)

	first := topo.Hosts[0]
	require.NotNil(t, first.Hostname)
	assert.Equal(t, "vios3a", *first.Hostname)
	require.Len(t, first.SeaSections, 1)

	sea := first.SeaSections[0]
	assert.Equal(t, "ent5", sea.SeaName)
	// Snapshot property order survives the round trip
	assert.Equal(t, []string{"State", "Control Channel", "PVID"}, sea.Properties.Keys())
	require.NotNil(t, sea.Etherchannel)
	assert.Equal(t, []string{"ent0", "ent1"}, sea.Etherchannel.Adapters)
	assert.Len(t, sea.RealAdapters, 2)
	assert.Len(t, sea.VirtualAdapters, 1)

	second := topo.Hosts[1]
	assert.Nil(t, second.Hostname)
	assert.Empty(t, second.SeaSections)
}

func TestSnapshotCollectorMissingFile(t *testing.T) {
	sc := &SnapshotCollector{File: "does-not-exist.json"}
	err := sc.Collect(model.NewTopology())
	assert.Error(t, err)
}

func TestSnapshotCollectorEnabled(t *testing.T) {
	sc := &SnapshotCollector{}
	assert.False(t, sc.Enabled(map[string]any{}))
	assert.True(t, sc.Enabled(map[string]any{"snapshot": map[string]any{"file": "x.json"}}))
}

func TestSnapshotCollectorValidate(t *testing.T) {
	sc := &SnapshotCollector{File: "does-not-exist.json"}
	errs := sc.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "sources.snapshot.file", errs[0].Field)

	sc.File = "../../testdata/snapshot/network_config.json"
	assert.Empty(t, sc.Validate())
}
