package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/relayer-registry/internal/domain"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EventsRenderer renders journal entries
type EventsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewEventsRenderer creates a new events renderer
func NewEventsRenderer(out io.Writer, format config.OutputFormat) *EventsRenderer {
	return &EventsRenderer{out: out, format: format}
}

// RenderEvents renders journal entries, newest first
func (r *EventsRenderer) RenderEvents(entries []*domain.JournalEntry) error {
	if r.format != config.OutputTable {
		return Encode(r.out, r.format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No events recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"SEQ", "EVENT", "RELAYER", "TIME"})

	for _, entry := range entries {
		t.AppendRow(table.Row{
			entry.Seq,
			kindStyle(entry.Kind).Sprint(KindLabel(entry.Kind)),
			accountStyle.Sprint(entry.Relayer.Hex()),
			blockStyle.Sprint(time.Unix(entry.Timestamp, 0).Format(time.DateTime)),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// KindLabel turns "RelayerRegistered" into "Registered"
func KindLabel(kind domain.EventKind) string {
	short := strings.ToLower(strings.TrimPrefix(string(kind), "Relayer"))
	return cases.Title(language.English).String(short)
}

func kindStyle(kind domain.EventKind) *color.Color {
	switch kind {
	case domain.EventKindRegistered:
		return color.New(color.FgGreen)
	case domain.EventKindDeregistered:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}
