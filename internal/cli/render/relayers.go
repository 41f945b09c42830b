package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"github.com/trebuchet-org/relayer-registry/internal/domain/models"
	"github.com/trebuchet-org/relayer-registry/internal/usecase"
)

// Color styles for table format
var (
	accountStyle       = color.New(color.FgWhite, color.Bold)
	chainStyle         = color.New(color.FgCyan)
	blockStyle         = color.New(color.Faint)
	metadataStyle      = color.New(color.FgWhite)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
)

// RelayerListOutput is the structured form of a relayer listing
type RelayerListOutput struct {
	Relayers []*models.Relayer `json:"relayers" yaml:"relayers"`
	Summary  SummaryOutput     `json:"summary" yaml:"summary"`
}

// SummaryOutput is the structured form of the listing summary
type SummaryOutput struct {
	Total       int                    `json:"total" yaml:"total"`
	Registered  int                    `json:"registered" yaml:"registered"`
	MaxRelayers int                    `json:"maxRelayers" yaml:"maxRelayers"`
	ByChain     map[models.ChainID]int `json:"byChain" yaml:"byChain"`
}

// RelayersRenderer renders relayer entries
type RelayersRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewRelayersRenderer creates a new relayers renderer
func NewRelayersRenderer(out io.Writer, format config.OutputFormat) *RelayersRenderer {
	return &RelayersRenderer{out: out, format: format}
}

// RenderList renders a relayer listing with its summary
func (r *RelayersRenderer) RenderList(result *usecase.RelayerListResult) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, RelayerListOutput{
			Relayers: result.Relayers,
			Summary: SummaryOutput{
				Total:       result.Summary.Total,
				Registered:  result.Summary.Registered,
				MaxRelayers: result.Summary.MaxRelayers,
				ByChain:     result.Summary.ByChain,
			},
		})
	}

	if len(result.Relayers) == 0 {
		fmt.Fprintln(r.out, "No relayers found")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"ACCOUNT", "CHAINS", "REGISTERED", "METADATA"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, WidthMax: 48},
	})

	for _, relayer := range result.Relayers {
		t.AppendRow(table.Row{
			accountStyle.Sprint(relayer.Account.Hex()),
			chainStyle.Sprint(FormatChains(relayer.SupportedChains)),
			blockStyle.Sprintf("#%d", relayer.RegisteredAt),
			metadataStyle.Sprint(relayer.MetadataString()),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)
	r.renderSummary(result.Summary)
	return nil
}

func (r *RelayersRenderer) renderSummary(summary usecase.RelayerSummary) {
	fmt.Fprintf(r.out, "%s %d shown, %d/%d registered (%d slots left)\n",
		sectionHeaderStyle.Sprint("Total:"),
		summary.Total, summary.Registered, summary.MaxRelayers, summary.Remaining())

	if len(summary.ByChain) == 0 {
		return
	}

	chains := lo.Keys(summary.ByChain)
	slices.Sort(chains)
	parts := lo.Map(chains, func(c models.ChainID, _ int) string {
		return fmt.Sprintf("%s=%d", chainStyle.Sprint(c), summary.ByChain[c])
	})
	fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint("By chain:"), strings.Join(parts, " "))
}

// RenderRelayer renders a single relayer entry
func (r *RelayersRenderer) RenderRelayer(relayer *models.Relayer) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, relayer)
	}

	fmt.Fprintf(r.out, "%s\n", sectionHeaderStyle.Sprint("Relayer"))
	r.field("Account", accountStyle.Sprint(relayer.Account.Hex()))
	r.field("Chains", chainStyle.Sprint(FormatChains(relayer.SupportedChains)))
	r.field("Registered", blockStyle.Sprintf("block #%d", relayer.RegisteredAt))
	if meta := relayer.MetadataString(); meta != "" {
		r.field("Metadata", metadataStyle.Sprint(meta))
	} else {
		r.field("Metadata", labelStyle.Sprint("(none)"))
	}
	return nil
}

// RenderRegistered renders the outcome of a registration
func (r *RelayersRenderer) RenderRegistered(result *usecase.RegisterRelayerResult) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, result.Relayer)
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Registered relayer %s at block #%d", result.Relayer.Account.Hex(), result.Block)))
	return r.RenderRelayer(result.Relayer)
}

// RenderUpdated renders the outcome of an update
func (r *RelayersRenderer) RenderUpdated(result *usecase.UpdateRelayerResult) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, result.Current)
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Updated relayer %s", result.Current.Account.Hex())))
	if result.Previous != nil && !slices.Equal(result.Previous.SupportedChains, result.Current.SupportedChains) {
		r.field("Chains", fmt.Sprintf("%s → %s",
			labelStyle.Sprint(FormatChains(result.Previous.SupportedChains)),
			chainStyle.Sprint(FormatChains(result.Current.SupportedChains))))
	}
	if result.Previous != nil && result.Previous.MetadataString() != result.Current.MetadataString() {
		r.field("Metadata", fmt.Sprintf("%q → %q", result.Previous.MetadataString(), result.Current.MetadataString()))
	}
	return nil
}

// RenderDeregistered renders the outcome of a deregistration
func (r *RelayersRenderer) RenderDeregistered(result *usecase.DeregisterRelayerResult) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, map[string]string{"deregistered": result.Account.Hex()})
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deregistered relayer %s", result.Account.Hex())))
	return nil
}

// RenderWhoami renders the caller identity
func (r *RelayersRenderer) RenderWhoami(result *usecase.WhoamiResult) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, struct {
			Account    string          `json:"account" yaml:"account"`
			Registered bool            `json:"registered" yaml:"registered"`
			Relayer    *models.Relayer `json:"relayer,omitempty" yaml:"relayer,omitempty"`
		}{result.Account.Hex(), result.Registered, result.Relayer})
	}

	if !result.Registered {
		fmt.Fprintf(r.out, "%s is not registered\n", accountStyle.Sprint(result.Account.Hex()))
		return nil
	}
	return r.RenderRelayer(result.Relayer)
}

func (r *RelayersRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-11s", label+":"), value)
}

// FormatChains renders a chain list as "1, 10, 137"
func FormatChains(chains []models.ChainID) string {
	return strings.Join(lo.Map(chains, func(c models.ChainID, _ int) string {
		return fmt.Sprint(c)
	}), ", ")
}
