package models

// RegistryState is the persisted form of a registry.
// Relayers are stored in registration order.
type RegistryState struct {
	// Height is the last block number handed out by the block clock
	Height BlockNumber `json:"height"`

	// EventSeq is the sequence number of the last emitted event
	EventSeq uint64 `json:"eventSeq"`

	Relayers []*Relayer `json:"relayers"`
}
