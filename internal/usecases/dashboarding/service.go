package dashboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/internal/querybuilder"
	"github.com/vfg2006/custom-dashboard-api/pkg/utils"
)

type Service struct {
	excelData   repository.ExcelDataRepository
	configs     repository.DashboardConfigRepository
	builder     *querybuilder.Builder
	maxPageSize int
}

func NewService(
	excelData repository.ExcelDataRepository,
	configs repository.DashboardConfigRepository,
	builder *querybuilder.Builder,
	maxPageSize int,
) Dashboarder {
	return &Service{
		excelData:   excelData,
		configs:     configs,
		builder:     builder,
		maxPageSize: maxPageSize,
	}
}

func (s *Service) ListColumnNames(ctx context.Context) ([]string, error) {
	columns, err := s.excelData.ListColumnNames(ctx)
	if err != nil {
		return nil, NewDashboardError(classify(ErrListColumns, err), "Falha ao consultar colunas da tabela")
	}
	return columns, nil
}

// CreateDashboard só persiste depois que operação e colunas foram validadas
// e a filtração foi capturada.
func (s *Service) CreateDashboard(ctx context.Context, request *domain.CreateDashboardRequest) (*domain.DashboardConfig, error) {
	if request == nil {
		return nil, NewDashboardError(domain.ErrMissingParameter, "rows, value e operation são obrigatórios")
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, NewDashboardError(err, "rows, value e operation são obrigatórios")
	}

	operation, err := domain.ParseOperation(request.Operation)
	if err != nil {
		return nil, NewDashboardError(err, "")
	}

	columns, err := s.builder.Columns(ctx)
	if err != nil {
		return nil, NewDashboardError(classify(ErrCreateDashboard, err), "Falha ao consultar colunas da tabela")
	}

	for _, column := range []string{request.Rows, request.Value} {
		if _, err := columns.Identifier(column); err != nil {
			return nil, NewDashboardError(err, "")
		}
	}

	var filtration domain.Filtration
	if len(request.Filtration) > 0 {
		filtration, err = s.builder.DiscoverFiltrationOptions(ctx, request.Filtration)
		if err != nil {
			return nil, NewDashboardError(classify(ErrCreateDashboard, err), "")
		}
	}

	config, err := s.configs.Create(ctx, domain.DashboardConfigInput{
		AxisColumn:  request.Rows,
		ValueColumn: request.Value,
		Operation:   operation,
		Filtration:  filtration,
		Drilldown:   normalizeDrilldown(request.Drilldown),
		ChartType:   request.ChartType,
	})
	if err != nil {
		logrus.WithError(err).Error("dashboard: erro ao salvar configuração")
		return nil, NewDashboardError(classify(ErrCreateDashboard, err), "Falha ao salvar configuração do dashboard")
	}

	logrus.WithFields(logrus.Fields{
		"dashboard_id": config.ID,
		"rows":         config.AxisColumn,
		"operation":    config.Operation,
	}).Info("dashboard: configuração criada")

	return config, nil
}

// FetchDetails percorre as configurações na ordem em que foram criadas. Um
// erro em qualquer configuração interrompe toda a execução.
func (s *Service) FetchDetails(ctx context.Context, request *domain.FetchDetailsRequest) ([]*domain.DashboardResult, error) {
	if request == nil {
		request = &domain.FetchDetailsRequest{}
	}

	configs, err := s.loadConfigs(ctx, request.ID)
	if err != nil {
		return nil, NewDashboardError(classify(ErrReplayDashboard, err), "Falha ao carregar configurações")
	}

	results := make([]*domain.DashboardResult, 0, len(configs))
	if len(configs) == 0 {
		return results, nil
	}

	columns, err := s.builder.Columns(ctx)
	if err != nil {
		return nil, NewDashboardError(classify(ErrReplayDashboard, err), "Falha ao consultar colunas da tabela")
	}

	for i, config := range configs {
		result, err := s.replay(ctx, columns, config, request, i == 0)
		if err != nil {
			logrus.WithError(err).WithField("dashboard_id", config.ID).Error("dashboard: erro no replay")
			return nil, NewDashboardErrorWithID(classify(ErrReplayDashboard, err), config.ID, fmt.Sprintf("dashboard %d", config.ID))
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) loadConfigs(ctx context.Context, id *int64) ([]*domain.DashboardConfig, error) {
	if id == nil {
		return s.configs.ListAll(ctx)
	}

	config, err := s.configs.FindByID(ctx, *id)
	if err != nil {
		// Um id inexistente resulta em lista vazia, como a filtragem da lista completa
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.DashboardConfig{}, nil
		}
		return nil, err
	}

	return []*domain.DashboardConfig{config}, nil
}

func (s *Service) replay(
	ctx context.Context,
	columns querybuilder.ColumnSet,
	config *domain.DashboardConfig,
	request *domain.FetchDetailsRequest,
	first bool,
) (*domain.DashboardResult, error) {
	if err := checkStoredConfig(columns, config); err != nil {
		return nil, err
	}

	where, err := s.builder.WhereClause(columns, querybuilder.WhereParams{
		Filtration: config.Filtration,
		Overrides:  request.SelectedFiltration,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		DateRange:  request.DateRange,
	})
	if err != nil {
		return nil, err
	}

	// O primeiro gráfico conduz os demais e nunca recebe o filtro de link
	if !first && request.LinkChart != "" && request.LinkChartValue != nil {
		linkColumn, err := columns.Identifier(request.LinkChart)
		if err != nil {
			return nil, err
		}
		where = where.And(querybuilder.EqualsCondition(linkColumn, *request.LinkChartValue))
	}

	options, err := s.builder.DiscoverFiltrationOptions(ctx, config.Filtration.Columns())
	if err != nil {
		return nil, err
	}

	operation, err := domain.ParseOperation(config.Operation.String())
	if err != nil {
		return nil, err
	}

	axis, err := columns.Identifier(config.AxisColumn)
	if err != nil {
		return nil, err
	}

	value, err := columns.Identifier(config.ValueColumn)
	if err != nil {
		return nil, err
	}

	chart, err := s.excelData.Aggregate(ctx, querybuilder.AggregateQuery{
		Axis:      axis,
		Value:     value,
		Operation: operation,
		Where:     where,
	})
	if err != nil {
		return nil, err
	}

	return &domain.DashboardResult{
		ID:         config.ID,
		Chart:      chart,
		Filtration: options,
		Drilldown:  normalizeDrilldown(config.Drilldown),
		Rows:       config.AxisColumn,
		Operation:  operation,
		Values:     config.ValueColumn,
		ChartType:  config.ChartType,
	}, nil
}

// checkStoredConfig confere eixo, valor, colunas de filtro e operação da
// configuração salva contra o schema atual.
func checkStoredConfig(columns querybuilder.ColumnSet, config *domain.DashboardConfig) error {
	names := append([]string{config.AxisColumn, config.ValueColumn}, config.Filtration.Columns()...)
	for _, name := range names {
		if _, err := columns.Identifier(name); err != nil {
			return staleConfig(config.ID, err)
		}
	}

	if _, err := domain.ParseOperation(config.Operation.String()); err != nil {
		return staleConfig(config.ID, err)
	}

	return nil
}

func (s *Service) CreateDrilldownChart(ctx context.Context, request *domain.DrilldownChartRequest) (*domain.DrilldownChart, error) {
	if request == nil {
		return nil, NewDashboardError(domain.ErrMissingParameter, "drilldownvalue, rows, values, fieldvalue e operator são obrigatórios")
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, NewDashboardError(err, "drilldownvalue, rows, values, fieldvalue e operator são obrigatórios")
	}

	operation, err := domain.ParseOperation(request.Operator)
	if err != nil {
		return nil, NewDashboardError(err, "")
	}

	columns, err := s.builder.Columns(ctx)
	if err != nil {
		return nil, NewDashboardError(classify(ErrDrilldownChart, err), "Falha ao consultar colunas da tabela")
	}

	identifiers := make([]querybuilder.Identifier, 0, 3)
	for _, column := range []string{request.DrilldownValue, request.Values, request.Rows} {
		id, err := columns.Identifier(column)
		if err != nil {
			return nil, NewDashboardError(err, "")
		}
		identifiers = append(identifiers, id)
	}

	chart, err := s.excelData.Aggregate(ctx, querybuilder.AggregateQuery{
		Axis:      identifiers[0],
		Value:     identifiers[1],
		Operation: operation,
		Where:     querybuilder.Clause{querybuilder.EqualsCondition(identifiers[2], request.FieldValue)},
	})
	if err != nil {
		logrus.WithError(err).Error("dashboard: erro ao montar drilldown")
		return nil, NewDashboardError(classify(ErrDrilldownChart, err), "Falha ao montar gráfico de drilldown")
	}

	return &domain.DrilldownChart{Chart: chart}, nil
}

// ViewDetails retorna NotFound quando nenhuma linha casa, independente da página pedida.
func (s *Service) ViewDetails(ctx context.Context, request *domain.ViewDetailsRequest) (*domain.PagedRecords, error) {
	if request == nil {
		return nil, NewDashboardError(domain.ErrMissingParameter, "fieldname, fieldvalue, page e limit são obrigatórios")
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, NewDashboardError(err, "fieldname, fieldvalue, page e limit são obrigatórios")
	}

	if s.maxPageSize > 0 && request.Limit > s.maxPageSize {
		return nil, NewDashboardError(
			fmt.Errorf("%w: limit above %d", domain.ErrInvalidParameter, s.maxPageSize),
			"",
		)
	}

	column, err := s.builder.ValidateColumnExists(ctx, request.FieldName)
	if err != nil {
		return nil, NewDashboardError(classify(ErrViewDetails, err), "")
	}

	records, total, err := s.excelData.SelectWhere(ctx, column, request.FieldValue, request.Page, request.Limit)
	if err != nil {
		logrus.WithError(err).Error("dashboard: erro ao buscar detalhes")
		return nil, NewDashboardError(classify(ErrViewDetails, err), "Falha ao buscar registros")
	}

	if total == 0 {
		return nil, NewDashboardError(
			fmt.Errorf("%w: no rows where %s = %q", domain.ErrNotFound, request.FieldName, request.FieldValue),
			"",
		)
	}

	limit := int64(request.Limit)
	return &domain.PagedRecords{
		TotalRecords: total,
		TotalPages:   (total + limit - 1) / limit,
		CurrentPage:  request.Page,
		Records:      records,
	}, nil
}

// normalizeDrilldown trata ausência e null literal da mesma forma
func normalizeDrilldown(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
