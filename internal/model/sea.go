package model

// SeaRecord is one parsed Shared Ethernet Adapter block.
type SeaRecord struct {
	SeaName         string        `json:"sea_name"`
	Properties      *Properties   `json:"properties"`
	Etherchannel    *Etherchannel `json:"etherchannel"`
	RealAdapters    []AdapterRef  `json:"real_adapters"`
	VirtualAdapters []AdapterRef  `json:"virtual_adapters"`
}

// NewSeaRecord creates a SeaRecord with initialized collections so the
// persisted shape always carries empty arrays, never null.
func NewSeaRecord(name string) *SeaRecord {
	return &SeaRecord{
		SeaName:         name,
		Properties:      NewProperties(),
		RealAdapters:    []AdapterRef{},
		VirtualAdapters: []AdapterRef{},
	}
}

// Etherchannel is a link-aggregation group of adapters backing a SEA.
type Etherchannel struct {
	Adapters []string `json:"adapters"`
}

// AdapterRef identifies a real or virtual adapter by name and
// hardware location code.
type AdapterRef struct {
	AdapterName  string `json:"adapter_name"`
	HardwarePath string `json:"hardware_path"`
}
