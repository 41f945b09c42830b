package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Encode writes v in a structured format. Table output is handled by the
// individual renderers.
func Encode(out io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}
