package model

// Topology is the top-level aggregate of all extracted host configurations.
type Topology struct {
	Hosts []*HostConfig
}

// NewTopology creates an initialized Topology.
func NewTopology() *Topology {
	return &Topology{
		Hosts: []*HostConfig{},
	}
}

// AddHost appends a host configuration to the topology.
func (t *Topology) AddHost(hc *HostConfig) {
	t.Hosts = append(t.Hosts, hc)
}

// SeaCount returns the total number of SEA sections across all hosts.
func (t *Topology) SeaCount() int {
	count := 0
	for _, hc := range t.Hosts {
		count += len(hc.SeaSections)
	}
	return count
}
