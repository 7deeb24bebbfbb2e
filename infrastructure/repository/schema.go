package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/custom-dashboard-api/internal/querybuilder"
)

// DataColumns é o conjunto de colunas criado na primeira sincronização da
// tabela de dados. Depois disso o schema vivo do banco é a única referência.
var DataColumns = []string{
	"Project",
	"Building",
	"UnitCode",
	"SaleDate",
	"CustomerName",
	"Area",
	"SaleValue",
	"UnitType",
	"BrokerName",
	"SalesAgent",
	"UnitStatus",
	"UnitStatusNew",
	"Oqood",
	"OqoodDone",
	"InvoicedAmount",
	"DueAmount",
	"Ageing",
	"PaymentPlan",
	"Realised",
	"PDC",
	"TotalCollection",
}

const createDashboardConfigTable = `
	CREATE TABLE IF NOT EXISTS dashboard_config (
		id         BIGSERIAL PRIMARY KEY,
		x_axis     VARCHAR(255) NOT NULL,
		y_axis     VARCHAR(255) NOT NULL,
		operation  VARCHAR(16)  NOT NULL,
		filtration TEXT,
		drilldown  TEXT,
		chart_type VARCHAR(255),
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`

// CreateDataTableStatement monta o DDL da tabela de dados com as colunas informadas.
func CreateDataTableStatement(columns []string) string {
	defs := make([]string, 0, len(columns)+1)
	defs = append(defs, fmt.Sprintf("%s BIGSERIAL PRIMARY KEY", pq.QuoteIdentifier(querybuilder.SurrogateKey)))
	for _, column := range columns {
		defs = append(defs, fmt.Sprintf("%s VARCHAR(255)", pq.QuoteIdentifier(column)))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", querybuilder.DataTable, strings.Join(defs, ",\n\t"))
}

// SyncSchema cria as tabelas que ainda não existirem. Tabelas existentes não
// são alteradas.
func SyncSchema(ctx context.Context, conn postgres.Conn) error {
	statements := []string{
		CreateDataTableStatement(DataColumns),
		createDashboardConfigTable,
	}

	return conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return wrapDBError(err, "erro ao sincronizar schema")
			}
		}

		logrus.Info("Schema do banco sincronizado")
		return nil
	})
}
