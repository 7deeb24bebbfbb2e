package querybuilder

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

// DefaultDateColumn é a coluna usada nos filtros de data.
const DefaultDateColumn = "SaleDate"

// Catalog expõe o schema vivo da tabela de dados e seus valores distintos.
type Catalog interface {
	Columns(ctx context.Context) (ColumnSet, error)
	DistinctValues(ctx context.Context, column Identifier) ([]domain.FilterValue, error)
}

// WhereParams reúne os filtros de uma execução de dashboard.
type WhereParams struct {
	Filtration domain.Filtration
	Overrides  []domain.FilterOverride
	StartDate  string
	EndDate    string
	DateRange  string
}

type Builder struct {
	catalog    Catalog
	dateColumn string
	now        func() time.Time
}

func New(catalog Catalog, dateColumn string) *Builder {
	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}

	return &Builder{
		catalog:    catalog,
		dateColumn: dateColumn,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado para resolver intervalos nomeados.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

func (b *Builder) Columns(ctx context.Context) (ColumnSet, error) {
	return b.catalog.Columns(ctx)
}

// ValidateColumnExists confere o nome contra o schema atual da tabela.
func (b *Builder) ValidateColumnExists(ctx context.Context, column string) (Identifier, error) {
	columns, err := b.catalog.Columns(ctx)
	if err != nil {
		return Identifier{}, err
	}
	return columns.Identifier(column)
}

// BuildFiltrationClause gera uma condição por coluna. Overrides não vazios
// substituem por completo a filtração armazenada.
func (b *Builder) BuildFiltrationClause(ctx context.Context, filtration domain.Filtration, overrides []domain.FilterOverride) (Clause, error) {
	columns, err := b.catalog.Columns(ctx)
	if err != nil {
		return nil, err
	}
	return FiltrationClause(columns, filtration, overrides)
}

// BuildDateClause gera o filtro BETWEEN da coluna de data. O par explícito
// startDate/endDate tem precedência sobre dateRange.
func (b *Builder) BuildDateClause(ctx context.Context, startDate, endDate, dateRange string) (Clause, error) {
	if !hasDateWindow(startDate, endDate, dateRange) {
		return nil, nil
	}

	columns, err := b.catalog.Columns(ctx)
	if err != nil {
		return nil, err
	}
	return b.dateClause(columns, startDate, endDate, dateRange)
}

// BuildWhereClause une filtração e data com AND.
func (b *Builder) BuildWhereClause(ctx context.Context, params WhereParams) (Clause, error) {
	columns, err := b.catalog.Columns(ctx)
	if err != nil {
		return nil, err
	}
	return b.WhereClause(columns, params)
}

// WhereClause é a versão de BuildWhereClause para um schema já carregado.
func (b *Builder) WhereClause(columns ColumnSet, params WhereParams) (Clause, error) {
	filtration, err := FiltrationClause(columns, params.Filtration, params.Overrides)
	if err != nil {
		return nil, err
	}

	date, err := b.dateClause(columns, params.StartDate, params.EndDate, params.DateRange)
	if err != nil {
		return nil, err
	}

	return filtration.And(date...), nil
}

// DiscoverFiltrationOptions busca os valores distintos de cada coluna.
// Falha na primeira coluna inexistente, antes de consultar qualquer valor.
func (b *Builder) DiscoverFiltrationOptions(ctx context.Context, columns []string) (domain.Filtration, error) {
	options := make(domain.Filtration, len(columns))
	if len(columns) == 0 {
		return options, nil
	}

	schema, err := b.catalog.Columns(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]Identifier, 0, len(columns))
	for _, column := range columns {
		id, err := schema.Identifier(column)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		values, err := b.catalog.DistinctValues(ctx, id)
		if err != nil {
			return nil, err
		}
		options[id.Name()] = values
	}

	return options, nil
}

func (b *Builder) dateClause(columns ColumnSet, startDate, endDate, dateRange string) (Clause, error) {
	if !hasDateWindow(startDate, endDate, dateRange) {
		return nil, nil
	}

	dateColumn, err := columns.Identifier(b.dateColumn)
	if err != nil {
		return nil, err
	}

	win := DateWindow{Start: startDate, End: endDate}
	if startDate == "" || endDate == "" {
		win, err = ResolveDateRange(dateRange, b.now())
		if err != nil {
			return nil, err
		}
	}

	return Clause{squirrel.Expr(dateColumn.Quoted()+" BETWEEN ? AND ?", win.Start, win.End)}, nil
}

func hasDateWindow(startDate, endDate, dateRange string) bool {
	return (startDate != "" && endDate != "") || dateRange != ""
}

// FiltrationClause monta as condições IN / IS NULL para cada coluna filtrada.
func FiltrationClause(columns ColumnSet, filtration domain.Filtration, overrides []domain.FilterOverride) (Clause, error) {
	effective := filtration
	if len(overrides) > 0 {
		effective = domain.FiltrationFromOverrides(overrides)
	}

	clause := make(Clause, 0, len(effective))
	for _, name := range effective.Columns() {
		id, err := columns.Identifier(name)
		if err != nil {
			return nil, err
		}
		clause = append(clause, valuesCondition(id, effective[name]))
	}

	return clause, nil
}

func valuesCondition(id Identifier, values []domain.FilterValue) squirrel.Sqlizer {
	column := id.Quoted()

	nonNull := make([]string, 0, len(values))
	hasNull := false
	for _, v := range values {
		if v.Null {
			hasNull = true
			continue
		}
		nonNull = append(nonNull, v.Value)
	}

	switch {
	case hasNull && len(nonNull) == 0:
		return squirrel.Eq{column: nil}
	case hasNull:
		return squirrel.Or{squirrel.Eq{column: nonNull}, squirrel.Eq{column: nil}}
	default:
		return squirrel.Eq{column: nonNull}
	}
}

// EqualsCondition é a condição de igualdade usada pelo link entre gráficos
// e pelo drilldown.
func EqualsCondition(id Identifier, value string) squirrel.Sqlizer {
	return squirrel.Eq{id.Quoted(): value}
}
