package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/performance-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/performance-forecast-api/internal/usecases/forecasting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Performance(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/performance",
			Method:  http.MethodPost,
			Handler: PerformanceForecast(service),
		},
		{
			Path:    "/api/performance",
			Method:  http.MethodPost,
			Handler: PerformanceForecast(service),
		},
		{
			Path:    "/v1/performance/industries",
			Method:  http.MethodGet,
			Handler: Industries(service),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
