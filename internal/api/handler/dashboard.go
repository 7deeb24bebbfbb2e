package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/custom-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/custom-dashboard-api/pkg/log"
)

type columnsResponse struct {
	HeaderCode int      `json:"headerCode"`
	Columns    []string `json:"columns"`
}

type viewDetailsResponse struct {
	HeaderCode int `json:"headerCode"`
	*domain.PagedRecords
}

func GetColumnNames(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		columns, err := service.ListColumnNames(r.Context())
		if err != nil {
			logger.WithError(err).Error("columns: erro ao listar colunas")
			code := errorCode(err)
			apiErrors.WriteError(w, code, clientMessage(code, err, "Error fetching column names"), nil)
			return
		}

		writeJSON(w, http.StatusOK, columnsResponse{
			HeaderCode: apiErrors.HeaderCodeSuccess,
			Columns:    columns,
		})
	})
}

func CreateDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateDashboard")

		var request domain.CreateDashboardRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteEnvelopeError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error())
			return
		}

		dashboard, err := service.CreateDashboard(r.Context(), &request)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao criar configuração")
			writeEnvelopeFailure(w, err)
			return
		}

		apiErrors.WriteEnvelope(w, dashboard)
	})
}

func CreateDrilldownChart(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.DrilldownChartRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteEnvelopeError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error())
			return
		}

		chart, err := service.CreateDrilldownChart(r.Context(), &request)
		if err != nil {
			logger.WithError(err).Error("drilldown: erro ao montar gráfico")
			writeEnvelopeFailure(w, err)
			return
		}

		apiErrors.WriteEnvelope(w, chart)
	})
}

// FetchDetails reexecuta os dashboards salvos. Corpo vazio equivale a {}.
func FetchDetails(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.FetchDetailsRequest
		if err := decodeBody(r, &request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteEnvelopeError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error())
			return
		}

		results, err := service.FetchDetails(r.Context(), &request)
		if err != nil {
			fields := log.Fields{}
			var dashErr *dashboarding.DashboardError
			if errors.As(err, &dashErr) && dashErr.DashboardID != 0 {
				fields["dashboard_id"] = dashErr.DashboardID
			}
			logger.WithFields(fields).WithError(err).Error("fetch-details: erro ao reexecutar dashboards")
			writeEnvelopeFailure(w, err)
			return
		}

		apiErrors.WriteEnvelope(w, results)
	})
}

func ViewDetails(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request, err := parseViewDetails(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		page, err := service.ViewDetails(r.Context(), request)
		if err != nil {
			logger.WithError(err).Error("view-details: erro ao buscar registros")
			code := errorCode(err)
			apiErrors.WriteError(w, code, clientMessage(code, err, "Error fetching data"), nil)
			return
		}

		writeJSON(w, http.StatusOK, viewDetailsResponse{
			HeaderCode:   apiErrors.HeaderCodeSuccess,
			PagedRecords: page,
		})
	})
}

// parseViewDetails lê fieldname, fieldvalue, page e limit da query string.
// Parâmetros ausentes ficam vazios para a validação do serviço.
func parseViewDetails(r *http.Request) (*domain.ViewDetailsRequest, error) {
	query := r.URL.Query()

	request := &domain.ViewDetailsRequest{
		FieldName:  query.Get("fieldname"),
		FieldValue: query.Get("fieldvalue"),
	}

	var err error
	if request.Page, err = intParam(query.Get("page"), "page"); err != nil {
		return nil, err
	}
	if request.Limit, err = intParam(query.Get("limit"), "limit"); err != nil {
		return nil, err
	}

	return request, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("parâmetro " + name + " deve ser um número inteiro")
	}
	return value, nil
}

func writeEnvelopeFailure(w http.ResponseWriter, err error) {
	code := errorCode(err)
	apiErrors.WriteEnvelopeError(w, code, clientMessage(code, err, "Error fetching data"))
}
