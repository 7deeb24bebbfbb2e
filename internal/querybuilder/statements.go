package querybuilder

import (
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

const (
	// DataTable é a tabela larga que recebe as linhas das planilhas.
	DataTable = "excel_data"
	// SurrogateKey é a chave técnica da tabela, fora do conjunto de colunas de dados.
	SurrogateKey = "id"
	// CalculatedValueAlias é o alias do resultado da agregação.
	CalculatedValueAlias = "calculatedValue"
)

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ColumnNamesQuery lista as colunas de dados da tabela na ordem do schema.
func ColumnNamesQuery() (string, []interface{}, error) {
	return builder().
		Select("column_name").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_name": DataTable}).
		Where("table_schema = current_schema()").
		Where(squirrel.NotEq{"column_name": SurrogateKey}).
		OrderBy("ordinal_position").
		ToSql()
}

// AggregateQuery agrupa a tabela pela coluna do eixo aplicando a operação
// sobre a coluna de valores.
type AggregateQuery struct {
	Axis      Identifier
	Value     Identifier
	Operation domain.Operation
	Where     Clause
}

func (q AggregateQuery) ToSql() (string, []interface{}, error) {
	if q.Axis.IsZero() || q.Value.IsZero() {
		return "", nil, fmt.Errorf("%w: axis and value columns are required", domain.ErrMissingParameter)
	}

	expr, err := aggregateExpression(q.Operation, q.Value)
	if err != nil {
		return "", nil, err
	}

	sb := builder().
		Select(q.Axis.Quoted(), fmt.Sprintf("%s AS %q", expr, CalculatedValueAlias)).
		From(DataTable)

	return q.Where.Apply(sb).
		GroupBy(q.Axis.Quoted()).
		OrderBy(q.Axis.Quoted()).
		ToSql()
}

func aggregateExpression(op domain.Operation, value Identifier) (string, error) {
	if _, err := domain.ParseOperation(string(op)); err != nil {
		return "", err
	}

	column := value.Quoted()
	if op.IsNumeric() {
		column = fmt.Sprintf("CAST(NULLIF(TRIM(%s), '') AS NUMERIC)", column)
	}

	return fmt.Sprintf("%s(%s)", op, column), nil
}

// DistinctQuery lista os valores distintos de uma coluna, incluindo NULL.
func DistinctQuery(column Identifier) (string, []interface{}, error) {
	return builder().
		Select(column.Quoted()).
		Distinct().
		From(DataTable).
		OrderBy(column.Quoted()).
		ToSql()
}

// CountWhereQuery conta as linhas com column = value.
func CountWhereQuery(column Identifier, value string) (string, []interface{}, error) {
	return builder().
		Select("COUNT(*)").
		From(DataTable).
		Where(EqualsCondition(column, value)).
		ToSql()
}

// SelectWhereQuery retorna uma página (1-based) das linhas com column = value.
func SelectWhereQuery(column Identifier, value string, page, pageSize int) (string, []interface{}, error) {
	if page < 1 || pageSize < 1 {
		return "", nil, fmt.Errorf("%w: page and pageSize must be positive", domain.ErrInvalidParameter)
	}

	// OFFSET = (page-1)*pageSize precisa caber em int
	if page-1 > math.MaxInt/pageSize {
		return "", nil, fmt.Errorf("%w: page %d out of range", domain.ErrInvalidParameter, page)
	}

	return builder().
		Select("*").
		From(DataTable).
		Where(EqualsCondition(column, value)).
		OrderBy(quoteIdent(SurrogateKey)).
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
}

// InsertQuery monta um INSERT multi-linha para os registros. Todo registro é
// conferido contra o schema antes; colunas ausentes entram como NULL.
func InsertQuery(columns ColumnSet, records []domain.Record) (string, []interface{}, error) {
	if len(records) == 0 {
		return "", nil, fmt.Errorf("%w: no records to insert", domain.ErrEmptyInput)
	}

	if err := ValidateRecords(columns, records); err != nil {
		return "", nil, err
	}

	ids := columns.Identifiers()
	quoted := make([]string, 0, len(ids))
	for _, id := range ids {
		quoted = append(quoted, id.Quoted())
	}

	ib := builder().Insert(DataTable).Columns(quoted...)
	for _, record := range records {
		values := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			cell, ok := record[id.Name()]
			if !ok {
				values = append(values, nil)
				continue
			}
			values = append(values, cell.SQLValue())
		}
		ib = ib.Values(values...)
	}

	return ib.ToSql()
}

// ValidateRecords garante que nenhum registro tenha colunas fora do schema.
func ValidateRecords(columns ColumnSet, records []domain.Record) error {
	for i, record := range records {
		for column := range record {
			if !columns.Contains(column) {
				return &RecordValidationError{Row: i + 1, Column: column}
			}
		}
	}
	return nil
}

// RecordValidationError identifica o registro e a coluna inválidos.
type RecordValidationError struct {
	Row    int
	Column string
}

func (e *RecordValidationError) Error() string {
	return fmt.Sprintf("record %d: column %q is not part of %s", e.Row, e.Column, DataTable)
}

func (e *RecordValidationError) Unwrap() error {
	return domain.ErrValidation
}

func quoteIdent(name string) string {
	return Identifier{name: name}.Quoted()
}
