package senders

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
)

// Well-known anvil development key #0
const (
	anvilKey     = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	anvilAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestKeyOrigin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		want    common.Address
		wantErr bool
	}{
		{name: "with prefix", key: anvilKey, want: common.HexToAddress(anvilAddress)},
		{name: "without prefix", key: anvilKey[2:], want: common.HexToAddress(anvilAddress)},
		{name: "missing", key: "", wantErr: true},
		{name: "too short", key: "0x1234", wantErr: true},
		{name: "not hex", key: "0xzz74bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", wantErr: true},
		{name: "too long", key: anvilKey + "00", wantErr: true},
		{name: "zero scalar", key: "0x0000000000000000000000000000000000000000000000000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := NewKeyOrigin(&config.RuntimeConfig{PrivateKey: tt.key})
			got, err := origin.Origin(ctx)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrNoOrigin)
				if tt.key != "" {
					assert.ErrorContains(t, err, "invalid private key")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
