package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/custom-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type envelopeResponse struct {
	Header struct {
		Code int `json:"code"`
	} `json:"header"`
	Body struct {
		Value map[string]any `json:"value"`
		Error *string        `json:"error"`
	} `json:"body"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeResponse {
	t.Helper()
	var envelope envelopeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestGetColumnNames(t *testing.T) {
	tests := []struct {
		name           string
		columns        []string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Lista as colunas com headerCode 600",
			columns:        []string{"Project", "Building"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"headerCode":600,"columns":["Project","Building"]}`,
		},
		{
			name:           "Falha no banco devolve mensagem genérica",
			err:            fmt.Errorf("%w: conexão recusada", domain.ErrStoreFailure),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"headerCode":500,"code":"SRV_002","message":"Error fetching column names"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			service.EXPECT().ListColumnNames(gomock.Any()).Return(tt.columns, tt.err)

			rec := httptest.NewRecorder()
			GetColumnNames(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get-column-names", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestCreateDashboard(t *testing.T) {
	t.Run("Sucesso devolve a configuração no envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			CreateDashboard(gomock.Any(), &domain.CreateDashboardRequest{Rows: "Project", Value: "SaleValue", Operation: "SUM"}).
			Return(&domain.DashboardConfig{ID: 7, AxisColumn: "Project", ValueColumn: "SaleValue", Operation: domain.OperationSum}, nil)

		body := `{"rows":"Project","value":"SaleValue","operation":"SUM"}`
		rec := httptest.NewRecorder()
		CreateDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, apiErrors.HeaderCodeSuccess, envelope.Header.Code)
		assert.Nil(t, envelope.Body.Error)
		assert.EqualValues(t, 7, envelope.Body.Value["id"])
		assert.Equal(t, "Project", envelope.Body.Value["x_axis"])
	})

	t.Run("JSON inválido não chega ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)

		rec := httptest.NewRecorder()
		CreateDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(`{"rows":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusBadRequest, envelope.Header.Code)
		assert.Nil(t, envelope.Body.Value)
		require.NotNil(t, envelope.Body.Error)
	})

	t.Run("Erro de validação devolve 400 com a mensagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			CreateDashboard(gomock.Any(), gomock.Any()).
			Return(nil, dashboarding.NewDashboardError(fmt.Errorf("%w: Foo", domain.ErrUnknownColumn), ""))

		body := `{"rows":"Foo","value":"SaleValue","operation":"SUM"}`
		rec := httptest.NewRecorder()
		CreateDashboard(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		envelope := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusBadRequest, envelope.Header.Code)
		require.NotNil(t, envelope.Body.Error)
		assert.Contains(t, *envelope.Body.Error, "Foo")
	})
}

func TestFetchDetails(t *testing.T) {
	t.Run("Corpo vazio equivale a requisição sem parâmetros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			FetchDetails(gomock.Any(), &domain.FetchDetailsRequest{}).
			Return([]*domain.DashboardResult{}, nil)

		rec := httptest.NewRecorder()
		FetchDetails(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fetch-details", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"header":{"code":600},"body":{"value":[],"error":null}}`, rec.Body.String())
	})

	t.Run("Falha em uma configuração aborta com erro genérico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboarder(ctrl)
		service.EXPECT().
			FetchDetails(gomock.Any(), gomock.Any()).
			Return(nil, dashboarding.NewDashboardErrorWithID(fmt.Errorf("%w: timeout", domain.ErrStoreFailure), 2, ""))

		rec := httptest.NewRecorder()
		FetchDetails(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fetch-details", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"header":{"code":500},"body":{"value":null,"error":"Error fetching data"}}`, rec.Body.String())
	})
}

func TestCreateDrilldownChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().
		CreateDrilldownChart(gomock.Any(), &domain.DrilldownChartRequest{
			DrilldownValue: "Building",
			Rows:           "Project",
			Values:         "SaleValue",
			FieldValue:     "Alpha",
			Operator:       "COUNT",
		}).
		Return(&domain.DrilldownChart{Chart: []domain.ChartPoint{
			{AxisColumn: "Building", Axis: domain.NewFilterValue("B1"), Value: domain.AggregateValue{Raw: "3", Numeric: true}},
		}}, nil)

	body := `{"drilldownvalue":"Building","rows":"Project","values":"SaleValue","fieldvalue":"Alpha","operator":"COUNT"}`
	rec := httptest.NewRecorder()
	CreateDrilldownChart(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-drilldown-chart", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"header":{"code":600},"body":{"value":{"chart":[{"Building":"B1","calculatedValue":3}]},"error":null}}`, rec.Body.String())
}

func TestViewDetails(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(service *mocks.MockDashboarder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Converte a query string e devolve a página",
			query: "fieldname=Project&fieldvalue=Alpha&page=2&limit=10",
			setupMock: func(service *mocks.MockDashboarder) {
				service.EXPECT().
					ViewDetails(gomock.Any(), &domain.ViewDetailsRequest{FieldName: "Project", FieldValue: "Alpha", Page: 2, Limit: 10}).
					Return(&domain.PagedRecords{
						TotalRecords: 11,
						TotalPages:   2,
						CurrentPage:  2,
						Records:      []domain.Record{{"Project": domain.StringCell("Alpha")}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"headerCode":600,"totalRecords":11,"totalPages":2,"currentPage":2,"records":[{"Project":"Alpha"}]}`,
		},
		{
			name:           "page não numérico é rejeitado antes do serviço",
			query:          "fieldname=Project&fieldvalue=Alpha&page=abc&limit=10",
			setupMock:      func(service *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_003","message":"parâmetro page deve ser um número inteiro"}`,
		},
		{
			name:  "Nenhum registro encontrado devolve 404",
			query: "fieldname=Project&fieldvalue=Zeta&page=1&limit=10",
			setupMock: func(service *mocks.MockDashboarder) {
				service.EXPECT().
					ViewDetails(gomock.Any(), gomock.Any()).
					Return(nil, dashboarding.NewDashboardError(domain.ErrNotFound, ""))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"headerCode":404,"code":"QRY_001","message":"not found"}`,
		},
		{
			name:  "Parâmetro obrigatório ausente",
			query: "fieldvalue=Alpha&page=1&limit=10",
			setupMock: func(service *mocks.MockDashboarder) {
				service.EXPECT().
					ViewDetails(gomock.Any(), &domain.ViewDetailsRequest{FieldValue: "Alpha", Page: 1, Limit: 10}).
					Return(nil, dashboarding.NewDashboardError(fmt.Errorf("%w: fieldname", domain.ErrMissingParameter), ""))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_002","message":"missing parameter: fieldname"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			ViewDetails(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view-details?"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestErrorCode_PrefersDashboardErrorCode(t *testing.T) {
	err := &dashboarding.DashboardError{Err: errors.New("boom"), Code: apiErrors.ErrUnknownColumn}
	assert.Equal(t, apiErrors.ErrUnknownColumn, errorCode(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(domain.ErrNotFound))
}
