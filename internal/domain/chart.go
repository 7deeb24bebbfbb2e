package domain

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// AggregateValue é o resultado de uma agregação. Valores numéricos são
// serializados como número JSON; os demais, como texto.
type AggregateValue struct {
	Raw     string
	Null    bool
	Numeric bool
}

// NewAggregateValue normaliza o valor bruto retornado pelo banco. Apenas
// COUNT, SUM e AVG produzem números; MIN e MAX operam sobre texto e são
// devolvidos exatamente como armazenados.
func NewAggregateValue(op Operation, raw sql.NullString) AggregateValue {
	if !raw.Valid {
		return AggregateValue{Null: true}
	}

	if op != OperationCount && !op.IsNumeric() {
		return AggregateValue{Raw: raw.String}
	}

	d, err := decimal.NewFromString(strings.TrimSpace(raw.String))
	if err != nil {
		return AggregateValue{Raw: raw.String}
	}

	return AggregateValue{Raw: d.String(), Numeric: true}
}

func (v AggregateValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Null:
		return []byte("null"), nil
	case v.Numeric:
		return json.Marshal(json.Number(v.Raw))
	default:
		return json.Marshal(v.Raw)
	}
}

// ChartPoint é uma linha do resultado agregado: o valor do eixo e o valor calculado.
type ChartPoint struct {
	AxisColumn string
	Axis       FilterValue
	Value      AggregateValue
}

// MarshalJSON gera {"<coluna do eixo>": valor, "calculatedValue": resultado}.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	key, err := json.Marshal(p.AxisColumn)
	if err != nil {
		return nil, err
	}

	axis, err := p.Axis.MarshalJSON()
	if err != nil {
		return nil, err
	}

	value, err := p.Value.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(axis)
	buf.WriteString(`,"calculatedValue":`)
	buf.Write(value)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// DashboardResult é a resposta do replay de uma configuração.
type DashboardResult struct {
	ID         int64           `json:"id"`
	Chart      []ChartPoint    `json:"chart"`
	Filtration Filtration      `json:"filtration"`
	Drilldown  json.RawMessage `json:"drilldown"`
	Rows       string          `json:"rows"`
	Operation  Operation       `json:"operation"`
	Values     string          `json:"values"`
	ChartType  string          `json:"chartType"`
}

type DrilldownChart struct {
	Chart []ChartPoint `json:"chart"`
}

// PagedRecords é uma página de linhas da tabela de dados.
type PagedRecords struct {
	TotalRecords int64    `json:"totalRecords"`
	TotalPages   int64    `json:"totalPages"`
	CurrentPage  int      `json:"currentPage"`
	Records      []Record `json:"records"`
}
