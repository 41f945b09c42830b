package domain

import (
	"errors"
)

// Sentinel errors for registry operations
var (
	// ErrAlreadyRegistered is returned when registering an account that is already registered
	ErrAlreadyRegistered = errors.New("relayer already registered")

	// ErrNotRegistered is returned when deregistering or updating an unknown account
	ErrNotRegistered = errors.New("relayer not registered")

	// ErrEmptyChainList is returned when no supported chain is provided
	ErrEmptyChainList = errors.New("supported chain list is empty")

	// ErrTooManySupportedChains is returned when the chain list exceeds the configured bound
	ErrTooManySupportedChains = errors.New("too many supported chains")

	// ErrMetadataTooLong is returned when metadata exceeds the configured bound
	ErrMetadataTooLong = errors.New("metadata too long")

	// ErrCapacityExceeded is returned when the registry already holds the maximum number of relayers
	ErrCapacityExceeded = errors.New("relayer capacity exceeded")

	// ErrInvalidLimits is returned when a registry is built with non-positive bounds
	ErrInvalidLimits = errors.New("invalid registry limits")

	// ErrCorruptState is returned when restored state violates the registry invariants
	ErrCorruptState = errors.New("corrupt registry state")

	// ErrNoOrigin is returned when a mutating call cannot be attributed to an account
	ErrNoOrigin = errors.New("no authenticated origin")
)
