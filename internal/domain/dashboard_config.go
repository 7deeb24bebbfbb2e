// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"time"
)

// DashboardConfig é a definição persistida de um gráfico do dashboard.
type DashboardConfig struct {
	ID          int64           `json:"id"`
	AxisColumn  string          `json:"x_axis"`
	ValueColumn string          `json:"y_axis"`
	Operation   Operation       `json:"operation"`
	Filtration  Filtration      `json:"filtration"`
	Drilldown   json.RawMessage `json:"drilldown"`
	ChartType   string          `json:"chartType"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DashboardConfigInput são os dados já validados para criação de uma configuração.
type DashboardConfigInput struct {
	AxisColumn  string
	ValueColumn string
	Operation   Operation
	Filtration  Filtration
	Drilldown   json.RawMessage
	ChartType   string
}

type CreateDashboardRequest struct {
	Rows       string          `json:"rows" validate:"required"`
	Value      string          `json:"value" validate:"required"`
	Operation  string          `json:"operation" validate:"required"`
	Filtration []string        `json:"filtration"`
	Drilldown  json.RawMessage `json:"drilldown"`
	ChartType  string          `json:"chartType"`
}

type DrilldownChartRequest struct {
	DrilldownValue string `json:"drilldownvalue" validate:"required"`
	Rows           string `json:"rows" validate:"required"`
	Values         string `json:"values" validate:"required"`
	FieldValue     string `json:"fieldvalue" validate:"required"`
	Operator       string `json:"operator" validate:"required"`
}

type ViewDetailsRequest struct {
	FieldName  string `json:"fieldname" validate:"required"`
	FieldValue string `json:"fieldvalue" validate:"required"`
	Page       int    `json:"page" validate:"required,gte=1,lte=1000000"`
	Limit      int    `json:"limit" validate:"required,gte=1"`
}

// FetchDetailsRequest são os parâmetros de execução do replay dos dashboards.
type FetchDetailsRequest struct {
	LinkChart          string           `json:"linkchart"`
	LinkChartValue     *string          `json:"linkchartvalue"`
	StartDate          string           `json:"startDate"`
	EndDate            string           `json:"endDate"`
	DateRange          string           `json:"dateRange"`
	ID                 *int64           `json:"id"`
	SelectedFiltration []FilterOverride `json:"selectedFiltration"`
}
