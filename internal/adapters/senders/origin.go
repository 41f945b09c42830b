package senders

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// KeyOrigin resolves the caller account from the configured private key
type KeyOrigin struct {
	privateKey string
}

// NewKeyOrigin creates a new KeyOrigin
func NewKeyOrigin(cfg *config.RuntimeConfig) *KeyOrigin {
	return &KeyOrigin{privateKey: cfg.PrivateKey}
}

// Origin derives the caller address. The key is parsed on every call so a
// missing key only fails commands that need a caller.
func (o *KeyOrigin) Origin(_ context.Context) (common.Address, error) {
	if o.privateKey == "" {
		return common.Address{}, fmt.Errorf("%w: set RELAYREG_PRIVATE_KEY or pass --private-key", domain.ErrNoOrigin)
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(o.privateKey, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: invalid private key: %v", domain.ErrNoOrigin, err)
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey), nil
}

// Ensure KeyOrigin implements OriginResolver
var _ usecase.OriginResolver = (*KeyOrigin)(nil)
