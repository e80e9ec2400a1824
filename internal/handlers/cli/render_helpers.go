package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/frequency"
	"github.com/AntonioJCosta/mostactive/internal/core/domain/settings"
	"github.com/AntonioJCosta/mostactive/internal/core/ports"
	"github.com/AntonioJCosta/mostactive/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
)

// renderWinners prints the winners in the requested format.
// Plain output is undecorated so it can be piped; nothing is printed when there are no winners.
func renderWinners(w io.Writer, result ports.FrequencyResult, format string) {
	if format != settings.OutputTable {
		for _, id := range result.Identifiers {
			fmt.Fprintln(w, id)
		}
		return
	}

	if len(result.Identifiers) == 0 {
		fmt.Fprintln(w, ui.InfoColor(fmt.Sprintf("No identifiers found on %s (%s).", result.Date, result.Timezone)))
		return
	}

	entries := make([]frequency.IdentifierCount, 0, len(result.Identifiers))
	for _, id := range result.Identifiers {
		entries = append(entries, frequency.IdentifierCount{Identifier: id, Count: result.Count})
	}
	renderTallyTable(w, entries)
}

func renderTallyTable(w io.Writer, entries []frequency.IdentifierCount) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Identifier", "Count"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, e := range entries {
		table.Append([]string{e.Identifier, strconv.Itoa(e.Count)})
	}
	table.Render()
}

// printRunSummary writes run statistics for --verbose.
func printRunSummary(w io.Writer, result ports.FrequencyResult, configPath string) {
	if configPath == "" {
		configPath = "none"
	}
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Source: %s", result.SourceDetails)))
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Config: %s", configPath)))
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Date: %s (%s)", result.Date, result.Timezone)))
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Records scanned: %d, on date: %d, distinct identifiers: %d",
		result.Scanned, result.Matched, result.Distinct)))
	if len(result.Identifiers) == 0 {
		fmt.Fprintln(w, ui.InfoColor("No identifiers found on the requested date."))
		return
	}
	fmt.Fprintln(w, ui.SuccessColor(fmt.Sprintf("Most frequent: %d identifier(s) with %s occurrence(s)",
		len(result.Identifiers), ui.CountColor(strconv.Itoa(result.Count)))))
}
