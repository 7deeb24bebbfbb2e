package handler

import (
	"net/http"

	"github.com/vfg2006/custom-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/custom-dashboard-api/internal/config"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/ingesting"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Uploads(service ingesting.Ingester, cfg config.Upload) []router.Route {
	return []router.Route{
		{
			Path:    "/upload-excel",
			Method:  http.MethodPost,
			Handler: UploadExcel(service, cfg),
		},
	}
}

func Dashboards(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/get-column-names",
			Method:  http.MethodGet,
			Handler: GetColumnNames(service),
		},
		{
			Path:    "/dashboard",
			Method:  http.MethodPost,
			Handler: CreateDashboard(service),
		},
		{
			Path:    "/view-details",
			Method:  http.MethodGet,
			Handler: ViewDetails(service),
		},
		{
			Path:    "/create-drilldown-chart",
			Method:  http.MethodPost,
			Handler: CreateDrilldownChart(service),
		},
		{
			Path:    "/fetch-details",
			Method:  http.MethodPost,
			Handler: FetchDetails(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
