package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/composing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
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

func Authentication(session sessioning.SessionStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(session),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(session),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(session),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(session),
		},
	}
}

func Dashboard(dashboard composing.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(dashboard),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(dashboard),
		},
	}
}

func Sales(sales salesdata.SalesRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/refresh",
			Method:  http.MethodPost,
			Handler: RefreshSales(sales),
		},
	}
}

func State(store *filtering.Store, dashboard composing.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilters(store),
		},
		{
			Path:    "/v1/filters",
			Method:  http.MethodPut,
			Handler: PutFilters(store),
		},
		{
			Path:    "/v1/layout",
			Method:  http.MethodGet,
			Handler: GetLayout(dashboard),
		},
		{
			Path:    "/v1/layout",
			Method:  http.MethodPut,
			Handler: PutLayout(dashboard),
		},
		{
			Path:    "/v1/layout",
			Method:  http.MethodDelete,
			Handler: DeleteLayout(dashboard),
		},
		{
			Path:    "/v1/preferences/sidenav",
			Method:  http.MethodGet,
			Handler: GetSidenav(store),
		},
		{
			Path:    "/v1/preferences/sidenav",
			Method:  http.MethodPut,
			Handler: PutSidenav(store),
		},
	}
}
