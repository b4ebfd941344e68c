package collector

import (
	"testing"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLsseaCollector(t *testing.T) {
	topo := model.NewTopology()

	lc := &LsseaCollector{Dir: "../../testdata/logs"}

	err := lc.Collect(topo)
	require.NoError(t, err)
	assert.Empty(t, lc.Warnings())

	// Sorted-filename order
	require.Len(t, topo.Hosts, 3)
	assert.Equal(t, "lssea_vios1a.log", topo.Hosts[0].SourceFile)
	assert.Equal(t, "lssea_vios1b.log", topo.Hosts[1].SourceFile)
	assert.Equal(t, "lssea_vios2a.log", topo.Hosts[2].SourceFile)

	require.NotNil(t, topo.Hosts[0].Hostname)
	assert.Equal(t, "vios1a", *topo.Hosts[0].Hostname)
	assert.Len(t, topo.Hosts[0].SeaSections, 2)

	require.NotNil(t, topo.Hosts[1].Hostname)
	assert.Equal(t, "vios1b", *topo.Hosts[1].Hostname)

	// The marker is missing from vios2a's log
	assert.Nil(t, topo.Hosts[2].Hostname)
	assert.Len(t, topo.Hosts[2].SeaSections, 1)
}

func TestLsseaCollectorEmptyDir(t *testing.T) {
	topo := model.NewTopology()

	lc := &LsseaCollector{Dir: t.TempDir()}

	err := lc.Collect(topo)
	require.NoError(t, err)
	assert.Empty(t, topo.Hosts)
}

func TestLsseaCollectorEnabled(t *testing.T) {
	lc := &LsseaCollector{}

	assert.False(t, lc.Enabled(map[string]any{}))
	assert.False(t, lc.Enabled(map[string]any{"lssea": map[string]any{}}))
	assert.True(t, lc.Enabled(map[string]any{"lssea": map[string]any{"dir": "logs"}}))
}

func TestLsseaCollectorConfigure(t *testing.T) {
	lc := &LsseaCollector{}

	err := lc.Configure(map[string]any{
		"dir":    "captures",
		"prefix": "lssea_",
		"suffix": ".txt",
	})
	require.NoError(t, err)

	assert.Equal(t, "captures", lc.Dir)
	assert.Equal(t, "lssea_*.txt", lc.pattern())
}

func TestLsseaCollectorDefaultPattern(t *testing.T) {
	lc := &LsseaCollector{}
	assert.Equal(t, "lssea*log", lc.pattern())
}

func TestLsseaCollectorValidate(t *testing.T) {
	lc := &LsseaCollector{}
	errs := lc.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "sources.lssea.dir", errs[0].Field)

	lc.Dir = "does-not-exist"
	errs = lc.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "directory not found")

	lc.Dir = "../../testdata/logs"
	assert.Empty(t, lc.Validate())

	lc.Dir = t.TempDir()
	errs = lc.Validate()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "no lssea*log files")
}
