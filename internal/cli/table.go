package cli

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/forPelevin/vidtext/internal/types"
)

// renderTranscriptTable renders the transcript as a terminal table with a
// title/language header row above the timed segments.
func renderTranscriptTable(tr types.Transcript) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("%s (%s)", tr.Title, tr.Language)

	tw.AppendHeader(table.Row{"Start", "End", "Text"})
	for _, seg := range tr.Segments {
		tw.AppendRow(table.Row{fmtSeconds(seg.Start), fmtSeconds(seg.End), seg.Text})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 80},
	})

	return tw.Render()
}

func fmtSeconds(s float64) string {
	ms := int(math.Round(s * 1000))
	hours := ms / 3600000
	minutes := ms % 3600000 / 60000
	seconds := ms % 60000 / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
