package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostConfigMarshalShape(t *testing.T) {
	hc := NewHostConfig()
	hc.SetHostname("vios1a")

	rec := NewSeaRecord("ent5")
	rec.Properties.Set("Control Channel", "ent6")
	rec.Etherchannel = &Etherchannel{Adapters: []string{"ent3"}}
	rec.RealAdapters = append(rec.RealAdapters, AdapterRef{
		AdapterName:  "ent0",
		HardwarePath: "U78CB.001.WZS0043-P1-C6-T1",
	})
	hc.SeaSections = append(hc.SeaSections, rec)

	data, err := json.Marshal(hc)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"hostname": "vios1a",
		"sea_sections": [
			{
				"sea_name": "ent5",
				"properties": {"Control Channel": "ent6"},
				"etherchannel": {"adapters": ["ent3"]},
				"real_adapters": [
					{"adapter_name": "ent0", "hardware_path": "U78CB.001.WZS0043-P1-C6-T1"}
				],
				"virtual_adapters": []
			}
		]
	}`, string(data))
}

func TestHostConfigMarshalNullHostname(t *testing.T) {
	hc := NewHostConfig()

	data, err := json.Marshal(hc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hostname": null, "sea_sections": []}`, string(data))
}

func TestHostConfigEmptySectionsNotNull(t *testing.T) {
	hc := NewHostConfig()
	data, err := json.Marshal(hc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sea_sections":[]`)
}

func TestHostConfigRoundTrip(t *testing.T) {
	hc := NewHostConfig()
	hc.SetHostname("vios1a")

	rec := NewSeaRecord("ent5")
	rec.Properties.Set("State", "PRIMARY_SH")
	rec.Properties.Set("PVID", "1")
	rec.Etherchannel = &Etherchannel{Adapters: []string{"ent3"}}
	rec.RealAdapters = append(rec.RealAdapters, AdapterRef{AdapterName: "ent0", HardwarePath: "U78CB.001.WZS0043-P1-C6-T1"})
	rec.VirtualAdapters = append(rec.VirtualAdapters, AdapterRef{AdapterName: "ent4", HardwarePath: "U8286.41A.21FD4BV-V1-C20-T1"})
	hc.SeaSections = append(hc.SeaSections, rec)

	data, err := json.Marshal(hc)
	require.NoError(t, err)

	var out HostConfig
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, hc.Hostname, out.Hostname)
	require.Len(t, out.SeaSections, 1)
	assert.Equal(t, rec.SeaName, out.SeaSections[0].SeaName)
	assert.Equal(t, rec.Properties.Keys(), out.SeaSections[0].Properties.Keys())
	assert.Equal(t, rec.Etherchannel, out.SeaSections[0].Etherchannel)
	assert.Equal(t, rec.RealAdapters, out.SeaSections[0].RealAdapters)
	assert.Equal(t, rec.VirtualAdapters, out.SeaSections[0].VirtualAdapters)
}

func TestHostLabel(t *testing.T) {
	hc := NewHostConfig()
	assert.Equal(t, "unknown", hc.HostLabel())

	hc.SetHostname("vios1a")
	assert.Equal(t, "vios1a", hc.HostLabel())
}

func TestTopologySeaCount(t *testing.T) {
	topo := NewTopology()

	a := NewHostConfig()
	a.SeaSections = append(a.SeaSections, NewSeaRecord("ent5"), NewSeaRecord("ent8"))
	b := NewHostConfig()
	b.SeaSections = append(b.SeaSections, NewSeaRecord("ent5"))

	topo.AddHost(a)
	topo.AddHost(b)

	assert.Equal(t, 3, topo.SeaCount())
	assert.Len(t, topo.Hosts, 2)
}
