package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/relayer-registry/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	cfg := result.Config

	fmt.Fprintln(r.out, "📋 Current config:")

	if cfg.ConfigSource != "" {
		fmt.Fprintf(r.out, "Source:        %s\n", getRelativePath(cfg.ConfigSource))
	} else {
		fmt.Fprintf(r.out, "Source:        %s\n", "(defaults)")
	}
	fmt.Fprintf(r.out, "Project root:  %s\n", cfg.ProjectRoot)
	fmt.Fprintf(r.out, "State file:    %s\n", getRelativePath(result.StatePath))
	fmt.Fprintf(r.out, "Journal:       %s\n", getRelativePath(cfg.JournalFile()))
	fmt.Fprintf(r.out, "Output:        %s\n", cases.Title(language.English).String(string(cfg.Output)))

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Limits"))
	fmt.Fprintf(r.out, "  Max supported chains: %d\n", cfg.Limits.MaxSupportedChains)
	fmt.Fprintf(r.out, "  Max metadata length:  %d bytes\n", cfg.Limits.MaxMetadataLength)
	fmt.Fprintf(r.out, "  Max relayers:         %d\n", cfg.Limits.MaxRelayers)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Registry"))
	fmt.Fprintf(r.out, "  Height:   #%d\n", result.Height)
	fmt.Fprintf(r.out, "  Relayers: %d/%d\n", result.Relayers, cfg.Limits.MaxRelayers)

	return nil
}
