package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

type EventKind string

const (
	EventKindRegistered   EventKind = "RelayerRegistered"
	EventKindDeregistered EventKind = "RelayerDeregistered"
	EventKindUpdated      EventKind = "RelayerUpdated"
)

// ParseEventKind accepts either the full kind or its short form (e.g. "registered")
func ParseEventKind(s string) (EventKind, bool) {
	switch s {
	case "registered", string(EventKindRegistered):
		return EventKindRegistered, true
	case "deregistered", string(EventKindDeregistered):
		return EventKindDeregistered, true
	case "updated", string(EventKindUpdated):
		return EventKindUpdated, true
	default:
		return "", false
	}
}

// Event is emitted by the registry after every successful mutation
type Event interface {
	Kind() EventKind
	// Sequence orders events emitted by one registry
	Sequence() uint64
	Account() common.Address
	String() string
}

// RelayerRegisteredEvent is emitted when a new relayer has been registered
type RelayerRegisteredEvent struct {
	Seq             uint64           `json:"seq"`
	Relayer         common.Address   `json:"relayer"`
	SupportedChains []models.ChainID `json:"supportedChains"`
}

func (RelayerRegisteredEvent) Kind() EventKind { return EventKindRegistered }

func (e *RelayerRegisteredEvent) Sequence() uint64        { return e.Seq }
func (e *RelayerRegisteredEvent) Account() common.Address { return e.Relayer }

func (e *RelayerRegisteredEvent) String() string {
	return fmt.Sprintf("%s: relayer=%s, chains=%v", e.Kind(), e.Relayer.Hex(), e.SupportedChains)
}

// RelayerDeregisteredEvent is emitted when a relayer has been removed
type RelayerDeregisteredEvent struct {
	Seq     uint64         `json:"seq"`
	Relayer common.Address `json:"relayer"`
}

func (RelayerDeregisteredEvent) Kind() EventKind { return EventKindDeregistered }

func (e *RelayerDeregisteredEvent) Sequence() uint64        { return e.Seq }
func (e *RelayerDeregisteredEvent) Account() common.Address { return e.Relayer }

func (e *RelayerDeregisteredEvent) String() string {
	return fmt.Sprintf("%s: relayer=%s", e.Kind(), e.Relayer.Hex())
}

// RelayerUpdatedEvent is emitted when a relayer's chains and metadata have been replaced
type RelayerUpdatedEvent struct {
	Seq     uint64         `json:"seq"`
	Relayer common.Address `json:"relayer"`
}

func (RelayerUpdatedEvent) Kind() EventKind { return EventKindUpdated }

func (e *RelayerUpdatedEvent) Sequence() uint64        { return e.Seq }
func (e *RelayerUpdatedEvent) Account() common.Address { return e.Relayer }

func (e *RelayerUpdatedEvent) String() string {
	return fmt.Sprintf("%s: relayer=%s", e.Kind(), e.Relayer.Hex())
}

// JournalEntry is an event as recorded by the event journal
type JournalEntry struct {
	ID        string         `json:"id" yaml:"id"`
	Seq       uint64         `json:"seq" yaml:"seq"`
	Kind      EventKind      `json:"kind" yaml:"kind"`
	Relayer   common.Address `json:"relayer" yaml:"relayer"`
	Detail    string         `json:"detail" yaml:"detail"`
	Timestamp int64          `json:"timestamp" yaml:"timestamp"`
}
