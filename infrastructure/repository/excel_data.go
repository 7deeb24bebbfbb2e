// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/internal/querybuilder"
)

// insertBatchSize mantém cada INSERT bem abaixo do limite de 65535 parâmetros do Postgres.
const insertBatchSize = 500

type ExcelDataRepository interface {
	ListColumnNames(ctx context.Context) ([]string, error)
	Columns(ctx context.Context) (querybuilder.ColumnSet, error)
	BulkInsert(ctx context.Context, records []domain.Record) (int, error)
	DistinctValues(ctx context.Context, column querybuilder.Identifier) ([]domain.FilterValue, error)
	Aggregate(ctx context.Context, query querybuilder.AggregateQuery) ([]domain.ChartPoint, error)
	SelectWhere(ctx context.Context, column querybuilder.Identifier, value string, page, pageSize int) ([]domain.Record, int64, error)
}

type excelDataRepository struct {
	conn postgres.Conn
}

func NewExcelDataRepository(conn postgres.Conn) ExcelDataRepository {
	return &excelDataRepository{
		conn: conn,
	}
}

func (r *excelDataRepository) ListColumnNames(ctx context.Context) ([]string, error) {
	query, args, err := querybuilder.ColumnNamesQuery()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao consultar colunas")
	}
	defer rows.Close()

	columns := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear coluna")
		}
		columns = append(columns, name)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return columns, nil
}

func (r *excelDataRepository) Columns(ctx context.Context) (querybuilder.ColumnSet, error) {
	names, err := r.ListColumnNames(ctx)
	if err != nil {
		return querybuilder.ColumnSet{}, err
	}
	return querybuilder.NewColumnSet(names), nil
}

// BulkInsert valida todos os registros contra o schema e insere tudo em uma
// única transação: ou entram todos, ou nenhum.
func (r *excelDataRepository) BulkInsert(ctx context.Context, records []domain.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	columns, err := r.Columns(ctx)
	if err != nil {
		return 0, err
	}

	if err := querybuilder.ValidateRecords(columns, records); err != nil {
		return 0, err
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for start := 0; start < len(records); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(records) {
				end = len(records)
			}

			query, args, err := querybuilder.InsertQuery(columns, records[start:end])
			if err != nil {
				return err
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return wrapDBError(err, "erro ao inserir registros")
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return errors.Wrap(err, "erro ao obter número de linhas afetadas")
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *excelDataRepository) DistinctValues(ctx context.Context, column querybuilder.Identifier) ([]domain.FilterValue, error) {
	query, args, err := querybuilder.DistinctQuery(column)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, fmt.Sprintf("erro ao buscar valores distintos de %s", column.Name()))
	}
	defer rows.Close()

	values := make([]domain.FilterValue, 0)
	for rows.Next() {
		var value sql.NullString
		if err := rows.Scan(&value); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear valor distinto")
		}
		values = append(values, toFilterValue(value))
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return values, nil
}

func (r *excelDataRepository) Aggregate(ctx context.Context, q querybuilder.AggregateQuery) ([]domain.ChartPoint, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "erro ao executar agregação")
	}
	defer rows.Close()

	points := make([]domain.ChartPoint, 0)
	for rows.Next() {
		var axis, value sql.NullString
		if err := rows.Scan(&axis, &value); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear resultado da agregação")
		}

		points = append(points, domain.ChartPoint{
			AxisColumn: q.Axis.Name(),
			Axis:       toFilterValue(axis),
			Value:      domain.NewAggregateValue(q.Operation, value),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return points, nil
}

// SelectWhere retorna uma página das linhas com column = value e o total de linhas encontradas.
func (r *excelDataRepository) SelectWhere(ctx context.Context, column querybuilder.Identifier, value string, page, pageSize int) ([]domain.Record, int64, error) {
	countSQL, countArgs, err := querybuilder.CountWhereQuery(column, value)
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao construir a query")
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapDBError(err, "erro ao contar registros")
	}

	if total == 0 {
		return []domain.Record{}, 0, nil
	}

	query, args, err := querybuilder.SelectWhereQuery(column, value, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapDBError(err, "erro ao buscar registros")
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao ler colunas do resultado")
	}

	records := make([]domain.Record, 0, pageSize)
	for rows.Next() {
		record, err := scanRecord(rows, names)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return records, total, nil
}

func scanRecord(rows *sql.Rows, names []string) (domain.Record, error) {
	values := make([]sql.NullString, len(names))
	dest := make([]interface{}, len(names))
	for i := range values {
		dest[i] = &values[i]
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, errors.Wrap(err, "erro ao escanear registro")
	}

	record := make(domain.Record, len(names))
	for i, name := range names {
		switch {
		case !values[i].Valid:
			record[name] = domain.NullCell()
		case name == querybuilder.SurrogateKey:
			record[name] = domain.ParseCell(values[i].String)
		default:
			record[name] = domain.StringCell(values[i].String)
		}
	}

	return record, nil
}

func toFilterValue(v sql.NullString) domain.FilterValue {
	if !v.Valid {
		return domain.NullFilterValue()
	}
	return domain.NewFilterValue(v.String)
}

// wrapDBError anexa o código do Postgres quando disponível.
func wrapDBError(err error, msg string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(err, "%s (código: %s)", msg, pqErr.Code)
	}
	return errors.Wrap(err, msg)
}
