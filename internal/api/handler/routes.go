package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func logParams(names ...string) []alice.Constructor {
	return []alice.Constructor{middleware.RouteParams(names...)}
}

func Healthcheck(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Datasets(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:        "/api/:dataset",
			Method:      http.MethodGet,
			Handler:     GetRawDataset(service),
			Middlewares: logParams("dataset"),
		},
		{
			Path:    "/v1/datasets",
			Method:  http.MethodGet,
			Handler: ListDatasets(service),
		},
		{
			Path:        "/v1/datasets/:dataset/aggregates",
			Method:      http.MethodGet,
			Handler:     GetAggregates(service),
			Middlewares: logParams("dataset"),
		},
	}
}

func Charts(service charting.Charter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/charts/:dataset/:kind",
			Method:      http.MethodGet,
			Handler:     GetChart(service),
			Middlewares: logParams("dataset", "kind"),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: logParams("type"),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
