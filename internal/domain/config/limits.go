package config

import "fmt"

// Limits holds the registry bounds. They are fixed once a registry is built.
type Limits struct {
	MaxSupportedChains int `toml:"max_supported_chains" json:"maxSupportedChains"`
	MaxMetadataLength  int `toml:"max_metadata_length" json:"maxMetadataLength"`
	MaxRelayers        int `toml:"max_relayers" json:"maxRelayers"`
}

// DefaultLimits returns the bounds used when no configuration overrides them
func DefaultLimits() Limits {
	return Limits{
		MaxSupportedChains: 10,
		MaxMetadataLength:  256,
		MaxRelayers:        100,
	}
}

// Validate checks that every bound is positive
func (l Limits) Validate() error {
	if l.MaxSupportedChains <= 0 {
		return fmt.Errorf("max_supported_chains must be positive, got %d", l.MaxSupportedChains)
	}
	if l.MaxMetadataLength <= 0 {
		return fmt.Errorf("max_metadata_length must be positive, got %d", l.MaxMetadataLength)
	}
	if l.MaxRelayers <= 0 {
		return fmt.Errorf("max_relayers must be positive, got %d", l.MaxRelayers)
	}
	return nil
}
