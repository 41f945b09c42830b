package models

import (
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ChainID identifies a blockchain network a relayer can service
type ChainID = uint32

// BlockNumber is the logical timestamp supplied by the environment
type BlockNumber = uint64

// Relayer represents a registered relayer entry
type Relayer struct {
	// Account that registered the relayer. Immutable.
	Account common.Address `json:"account" yaml:"account"`

	// SupportedChains lists the chains serviced by the relayer, in caller order
	SupportedChains []ChainID `json:"supportedChains" yaml:"supportedChains"`

	// RegisteredAt is the block number at registration time. Immutable.
	RegisteredAt BlockNumber `json:"registeredAt" yaml:"registeredAt"`

	// Metadata is caller controlled (e.g. endpoint URL, contact info)
	Metadata hexutil.Bytes `json:"metadata" yaml:"metadata"`
}

// Clone returns a deep copy of the relayer
func (r *Relayer) Clone() *Relayer {
	return &Relayer{
		Account:         r.Account,
		SupportedChains: slices.Clone(r.SupportedChains),
		RegisteredAt:    r.RegisteredAt,
		Metadata:        slices.Clone(r.Metadata),
	}
}

// Supports reports whether the relayer services the given chain
func (r *Relayer) Supports(chainID ChainID) bool {
	return slices.Contains(r.SupportedChains, chainID)
}

// MetadataString returns the metadata as text
func (r *Relayer) MetadataString() string {
	return string(r.Metadata)
}
