package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

type Params struct {
	File   string `descr:"Path to the dataset file (.json, .yaml, .yml or .xlsx)" positional:"true"`
	Kind   string `descr:"Chart kind" alts:"average,total,channel,pie,bubble" strict:"true" default:"average"`
	Window int    `descr:"Window preset in months (-1 for all time, -2 for custom)" default:"-1"`
	Custom int    `descr:"Custom window in months, used with --window=-2" default:"0"`
	Format string `descr:"Output format" alts:"table,json" strict:"true" default:"table"`
}

func main() {
	boa.NewCmdT[Params]("sales-report").
		WithShort("Compute a dashboard chart offline from a dataset file").
		WithLong("Loads a customer dataset file, builds the chart state for the given kind and window, and prints it as a table or as JSON.").
		WithRunFunc(func(params *Params) {
			state, err := buildState(params, time.Now())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if params.Format == "json" {
				err = renderJSON(os.Stdout, state)
			} else {
				renderTable(os.Stdout, state)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func buildState(params *Params, now time.Time) (domain.ChartState, error) {
	raw, err := datasource.ReadFile(params.File)
	if err != nil {
		return domain.ChartState{}, fmt.Errorf("reading %s: %w", params.File, err)
	}

	name := strings.TrimSuffix(filepath.Base(params.File), filepath.Ext(params.File))
	dataset, err := ingesting.Normalize(name, raw)
	if err != nil {
		return domain.ChartState{}, err
	}

	chart, err := charting.Initialize(domain.ChartKind(params.Kind), dataset, now)
	if err != nil {
		return domain.ChartState{}, err
	}

	switch {
	case params.Window == domain.WindowAllTime:
		return chart.State(), nil
	case params.Window == domain.WindowCustom:
		return chart.ApplyCustomWindow(params.Custom), nil
	default:
		return chart.SelectWindow(params.Window)
	}
}
