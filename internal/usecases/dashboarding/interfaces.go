package dashboarding

import (
	"context"

	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

// Dashboarder define os casos de uso de definição e consulta de dashboards
type Dashboarder interface {
	// ListColumnNames retorna as colunas atuais da tabela de dados
	ListColumnNames(ctx context.Context) ([]string, error)

	// CreateDashboard valida e persiste uma nova configuração, com o snapshot da filtração
	CreateDashboard(ctx context.Context, request *domain.CreateDashboardRequest) (*domain.DashboardConfig, error)

	// FetchDetails reexecuta as configurações salvas com os filtros da requisição
	FetchDetails(ctx context.Context, request *domain.FetchDetailsRequest) ([]*domain.DashboardResult, error)

	// CreateDrilldownChart agrega uma coluna secundária filtrada por um valor do eixo principal
	CreateDrilldownChart(ctx context.Context, request *domain.DrilldownChartRequest) (*domain.DrilldownChart, error)

	// ViewDetails retorna uma página das linhas com coluna = valor
	ViewDetails(ctx context.Context, request *domain.ViewDetailsRequest) (*domain.PagedRecords, error)
}
