package model

// HostConfig is the extracted configuration of a single VIOS host,
// one per input log file.
type HostConfig struct {
	Hostname    *string      `json:"hostname"`
	SeaSections []*SeaRecord `json:"sea_sections"`

	// SourceFile is the log file this config came from. Not part of
	// the persisted shape, used for stable ordering and reporting.
	SourceFile string `json:"-"`
}

// NewHostConfig creates a HostConfig with an empty section list.
func NewHostConfig() *HostConfig {
	return &HostConfig{
		SeaSections: []*SeaRecord{},
	}
}

// SetHostname records the extracted hostname. A missing hostname stays nil
// and serializes as null.
func (hc *HostConfig) SetHostname(name string) {
	hc.Hostname = &name
}

// HostLabel returns the hostname or a placeholder when none was found.
func (hc *HostConfig) HostLabel() string {
	if hc.Hostname == nil || *hc.Hostname == "" {
		return "unknown"
	}
	return *hc.Hostname
}
