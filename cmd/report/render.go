package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const emptyCell = "-"

func renderTable(w io.Writer, state domain.ChartState) {
	fmt.Fprintf(w, "%s (%s) %s\n", text.Bold.Sprint(state.Dataset), state.Kind, state.Window)
	fmt.Fprintf(w, "Range: %s to %s\n\n", state.StartLabel, state.EndLabel)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	header := table.Row{"LABEL"}
	configs := make([]table.ColumnConfig, 0, len(state.Series))
	for i, series := range state.Series {
		header = append(header, series.Label)
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for i, label := range state.Labels {
		row := table.Row{label}
		for _, series := range state.Series {
			row = append(row, cellValue(series.Data, i))
		}
		t.AppendRow(row)
	}

	t.AppendFooter(footerRow(state))

	t.Render()
}

// footerRow resume a janela de acordo com o que cada coluna do gráfico representa
func footerRow(state domain.ChartState) table.Row {
	switch state.Kind {
	case domain.ChartAverage, domain.ChartTotal:
		return table.Row{"Total", utils.FormatCurrency(state.Totals.All), utils.FormatCurrency(state.Totals.Subset)}
	case domain.ChartChannel:
		return table.Row{"Total", utils.FormatCurrency(state.Totals.All)}
	default:
		return table.Row{"Sales in window", utils.FormatCurrency(state.Totals.All)}
	}
}

func renderJSON(w io.Writer, state domain.ChartState) error {
	out, err := utils.PrettyJson(state)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func cellValue(data []*float64, i int) string {
	if i >= len(data) || data[i] == nil {
		return emptyCell
	}
	return utils.FormatCurrency(*data[i])
}
