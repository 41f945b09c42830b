package config

// RelayregFileConfig represents the relayreg.toml configuration file
type RelayregFileConfig struct {
	Limits  *LimitsConfig  `toml:"limits"`
	Storage *StorageConfig `toml:"storage"`
}

// LimitsConfig represents the [limits] section. Unset fields keep their default.
type LimitsConfig struct {
	MaxSupportedChains *int `toml:"max_supported_chains,omitempty"`
	MaxMetadataLength  *int `toml:"max_metadata_length,omitempty"`
	MaxRelayers        *int `toml:"max_relayers,omitempty"`
}

// StorageConfig represents the [storage] section
type StorageConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// Apply overlays the configured limits on top of base
func (l *LimitsConfig) Apply(base Limits) Limits {
	if l == nil {
		return base
	}
	if l.MaxSupportedChains != nil {
		base.MaxSupportedChains = *l.MaxSupportedChains
	}
	if l.MaxMetadataLength != nil {
		base.MaxMetadataLength = *l.MaxMetadataLength
	}
	if l.MaxRelayers != nil {
		base.MaxRelayers = *l.MaxRelayers
	}
	return base
}
