package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dashboardConfigTable = "dashboard_config dc"
	dashboardConfigCols  = "dc.id, dc.x_axis, dc.y_axis, dc.operation, dc.filtration, dc.drilldown, dc.chart_type, dc.created_at"
)

type DashboardConfigRepository interface {
	Create(ctx context.Context, input domain.DashboardConfigInput) (*domain.DashboardConfig, error)
	ListAll(ctx context.Context) ([]*domain.DashboardConfig, error)
	FindByID(ctx context.Context, id int64) (*domain.DashboardConfig, error)
}

type dashboardConfigRepository struct {
	conn postgres.Conn
}

func NewDashboardConfigRepository(conn postgres.Conn) DashboardConfigRepository {
	return &dashboardConfigRepository{
		conn: conn,
	}
}

func (r *dashboardConfigRepository) Create(ctx context.Context, input domain.DashboardConfigInput) (*domain.DashboardConfig, error) {
	var filtrationJSON interface{}
	if input.Filtration != nil {
		raw, err := json.Marshal(input.Filtration)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar filtration para JSON")
		}
		filtrationJSON = string(raw)
	}

	var drilldown interface{}
	if len(input.Drilldown) > 0 {
		drilldown = string(input.Drilldown)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("dashboard_config").
		Columns("x_axis", "y_axis", "operation", "filtration", "drilldown", "chart_type").
		Values(
			input.AxisColumn,
			input.ValueColumn,
			input.Operation.String(),
			filtrationJSON,
			drilldown,
			input.ChartType,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	cfg := &domain.DashboardConfig{
		AxisColumn:  input.AxisColumn,
		ValueColumn: input.ValueColumn,
		Operation:   input.Operation,
		Filtration:  input.Filtration,
		Drilldown:   input.Drilldown,
		ChartType:   input.ChartType,
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &cfg.CreatedAt); err != nil {
		return nil, wrapDBError(err, "erro ao salvar configuração do dashboard")
	}

	return cfg, nil
}

// ListAll retorna todas as configurações na ordem de criação.
func (r *dashboardConfigRepository) ListAll(ctx context.Context) ([]*domain.DashboardConfig, error) {
	query, args, err := squirrel.
		Select(dashboardConfigCols).
		From(dashboardConfigTable).
		OrderBy("dc.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao executar a query")
	}
	defer rows.Close()

	configs := make([]*domain.DashboardConfig, 0)
	for rows.Next() {
		cfg, err := scanDashboardConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return configs, nil
}

func (r *dashboardConfigRepository) FindByID(ctx context.Context, id int64) (*domain.DashboardConfig, error) {
	query, args, err := squirrel.
		Select(dashboardConfigCols).
		From(dashboardConfigTable).
		Where(squirrel.Eq{"dc.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	cfg, err := scanDashboardConfig(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(domain.ErrNotFound, "dashboard %d", id)
		}
		return nil, err
	}

	return cfg, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDashboardConfig(row scanner) (*domain.DashboardConfig, error) {
	cfg := &domain.DashboardConfig{}
	var operation string
	var filtrationJSON, drilldownJSON, chartType sql.NullString

	err := row.Scan(
		&cfg.ID,
		&cfg.AxisColumn,
		&cfg.ValueColumn,
		&operation,
		&filtrationJSON,
		&drilldownJSON,
		&chartType,
		&cfg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "erro ao escanear configuração do dashboard")
	}

	cfg.Operation = domain.Operation(operation)
	cfg.ChartType = chartType.String

	if filtrationJSON.Valid && filtrationJSON.String != "" {
		filtration := make(domain.Filtration)
		if err := json.Unmarshal([]byte(filtrationJSON.String), &filtration); err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar JSON de filtration")
		}
		cfg.Filtration = filtration
	}

	if drilldownJSON.Valid && drilldownJSON.String != "" {
		cfg.Drilldown = []byte(drilldownJSON.String)
	}

	return cfg, nil
}
