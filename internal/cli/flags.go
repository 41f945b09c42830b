package cli

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
)

// relayerFlags holds the chain list and metadata shared by register and update
type relayerFlags struct {
	chains   []uint
	metadata string
}

func (f *relayerFlags) bind(cmd *cobra.Command) {
	cmd.Flags().UintSliceVarP(&f.chains, "chains", "c", nil, "Chain IDs serviced by the relayer (comma separated)")
	cmd.Flags().StringVarP(&f.metadata, "metadata", "m", "", "Relayer metadata, e.g. an endpoint URL")
}

// chainIDs converts the parsed flag values, rejecting ids that do not fit a chain id
func (f *relayerFlags) chainIDs() ([]models.ChainID, error) {
	return toChainIDs(f.chains)
}

func toChainIDs(values []uint) ([]models.ChainID, error) {
	ids := make([]models.ChainID, 0, len(values))
	for _, v := range values {
		if uint64(v) > math.MaxUint32 {
			return nil, fmt.Errorf("chain id %d out of range", v)
		}
		ids = append(ids, models.ChainID(v))
	}
	return ids, nil
}

// parseAccount validates a hex address argument
func parseAccount(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid account address: %s", s)
	}
	return common.HexToAddress(s), nil
}
