package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

// renderStages formats the pipeline trace of input as a table. Outputs are
// quoted so that spaces and invisible characters stay visible.
func renderStages(input string, results []filenamify.StageResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Stage", "Output", "Changed"})

	tw.AppendRow(table.Row{0, "input", strconv.Quote(input), ""})
	prev := input
	for i, r := range results {
		changed := ""
		if r.Output != prev {
			changed = "*"
		}
		tw.AppendRow(table.Row{i + 1, r.Stage, strconv.Quote(r.Output), changed})
		prev = r.Output
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignCenter},
	})
	return tw.Render()
}
