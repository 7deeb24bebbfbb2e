package querybuilder

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

func mustIdentifier(t *testing.T, columns ColumnSet, name string) Identifier {
	t.Helper()
	id, err := columns.Identifier(name)
	require.NoError(t, err)
	return id
}

func TestAggregateQuery_ToSql(t *testing.T) {
	columns := NewColumnSet([]string{"Project", "SaleValue", "status"})
	where, err := FiltrationClause(columns, domain.Filtration{"status": values("A", "B")}, nil)
	require.NoError(t, err)

	tests := []struct {
		name         string
		operation    domain.Operation
		where        Clause
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "SUM converte a coluna texto para numérico",
			operation:    domain.OperationSum,
			where:        where,
			expectedSQL:  `SELECT "Project", SUM(CAST(NULLIF(TRIM("SaleValue"), '') AS NUMERIC)) AS "calculatedValue" FROM excel_data WHERE "status" IN ($1,$2) GROUP BY "Project" ORDER BY "Project"`,
			expectedArgs: []interface{}{"A", "B"},
		},
		{
			name:         "COUNT sem filtros não gera WHERE",
			operation:    domain.OperationCount,
			expectedSQL:  `SELECT "Project", COUNT("SaleValue") AS "calculatedValue" FROM excel_data GROUP BY "Project" ORDER BY "Project"`,
			expectedArgs: nil,
		},
		{
			name:         "MAX usa a coluna sem conversão",
			operation:    domain.OperationMax,
			expectedSQL:  `SELECT "Project", MAX("SaleValue") AS "calculatedValue" FROM excel_data GROUP BY "Project" ORDER BY "Project"`,
			expectedArgs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := AggregateQuery{
				Axis:      mustIdentifier(t, columns, "Project"),
				Value:     mustIdentifier(t, columns, "SaleValue"),
				Operation: tt.operation,
				Where:     tt.where,
			}

			sql, args, err := query.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestAggregateQuery_RejectsUnknownOperation(t *testing.T) {
	columns := NewColumnSet([]string{"Project", "SaleValue"})

	_, _, err := AggregateQuery{
		Axis:      mustIdentifier(t, columns, "Project"),
		Value:     mustIdentifier(t, columns, "SaleValue"),
		Operation: domain.Operation("SUM); DROP TABLE excel_data; --"),
	}.ToSql()

	assert.True(t, errors.Is(err, domain.ErrInvalidOperation))
}

func TestSelectWhereQuery(t *testing.T) {
	columns := NewColumnSet([]string{"Project"})

	sql, args, err := SelectWhereQuery(mustIdentifier(t, columns, "Project"), "X", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM excel_data WHERE "Project" = $1 ORDER BY "id" LIMIT 10 OFFSET 10`, sql)
	assert.Equal(t, []interface{}{"X"}, args)

	_, _, err = SelectWhereQuery(mustIdentifier(t, columns, "Project"), "X", 0, 10)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestSelectWhereQuery_OffsetOverflow(t *testing.T) {
	columns := NewColumnSet([]string{"Project"})
	project := mustIdentifier(t, columns, "Project")

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"Página máxima", math.MaxInt, 10},
		{"Produto excede int", math.MaxInt/10 + 2, 10},
		{"Limite máximo", 3, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SelectWhereQuery(project, "X", tt.page, tt.pageSize)
			assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
		})
	}

	sql, _, err := SelectWhereQuery(project, "X", 1, math.MaxInt)
	require.NoError(t, err)
	assert.Contains(t, sql, "OFFSET 0")
}

func TestCountWhereQuery(t *testing.T) {
	columns := NewColumnSet([]string{"Project"})

	sql, args, err := CountWhereQuery(mustIdentifier(t, columns, "Project"), "X")
	require.NoError(t, err)
	assert.Equal(t, `SELECT COUNT(*) FROM excel_data WHERE "Project" = $1`, sql)
	assert.Equal(t, []interface{}{"X"}, args)
}

func TestDistinctQuery(t *testing.T) {
	columns := NewColumnSet([]string{"Building"})

	sql, _, err := DistinctQuery(mustIdentifier(t, columns, "Building"))
	require.NoError(t, err)
	assert.Equal(t, `SELECT DISTINCT "Building" FROM excel_data ORDER BY "Building"`, sql)
}

func TestInsertQuery(t *testing.T) {
	columns := NewColumnSet([]string{"Project", "SaleValue"})

	sql, args, err := InsertQuery(columns, []domain.Record{
		{"Project": domain.StringCell("Alpha"), "SaleValue": domain.NumberCell("1500", 1500)},
		{"Project": domain.StringCell("Beta")},
	})
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO excel_data ("Project","SaleValue") VALUES ($1,$2),($3,$4)`, sql)
	assert.Equal(t, []interface{}{"Alpha", "1500", "Beta", nil}, args)
}

func TestInsertQuery_RejectsColumnOutsideSchema(t *testing.T) {
	columns := NewColumnSet([]string{"Project"})

	_, _, err := InsertQuery(columns, []domain.Record{
		{"Project": domain.StringCell("Alpha")},
		{"Project": domain.StringCell("Beta"), "Unknown": domain.StringCell("x")},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var validationErr *RecordValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, 2, validationErr.Row)
	assert.Equal(t, "Unknown", validationErr.Column)
}

func TestResolveDateRange(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		rangeStr string
		expected DateWindow
	}{
		{
			name:     "today",
			now:      time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC),
			rangeStr: DateRangeToday,
			expected: DateWindow{Start: "03/15/2024", End: "03/15/2024"},
		},
		{
			name:     "this_month vai do dia 1 até hoje",
			now:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			rangeStr: DateRangeThisMonth,
			expected: DateWindow{Start: "03/01/2024", End: "03/15/2024"},
		},
		{
			name:     "last_month cobre o mês anterior inteiro",
			now:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			rangeStr: DateRangeLastMonth,
			expected: DateWindow{Start: "02/01/2024", End: "02/29/2024"},
		},
		{
			name:     "last_month em janeiro volta para dezembro do ano anterior",
			now:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			rangeStr: DateRangeLastMonth,
			expected: DateWindow{Start: "12/01/2023", End: "12/31/2023"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDateRange(tt.rangeStr, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
