package domain

import (
	"encoding/json"
	"sort"
)

// FilterValue é um valor distinto de uma coluna. Null marca o valor SQL NULL.
type FilterValue struct {
	Value string
	Null  bool
}

func NewFilterValue(v string) FilterValue {
	return FilterValue{Value: v}
}

func NullFilterValue() FilterValue {
	return FilterValue{Null: true}
}

func (f FilterValue) MarshalJSON() ([]byte, error) {
	if f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *FilterValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*f = NullFilterValue()
	case string:
		*f = NewFilterValue(v)
	default:
		// números e booleanos chegam do front como valores de texto da tabela
		*f = NewFilterValue(string(data))
	}

	return nil
}

// Filtration mapeia uma coluna para o conjunto de valores permitidos.
type Filtration map[string][]FilterValue

// Columns retorna as colunas em ordem alfabética, para gerar SQL determinístico.
func (f Filtration) Columns() []string {
	columns := make([]string, 0, len(f))
	for column := range f {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// FilterOverride é um filtro enviado em tempo de execução pelo cliente.
type FilterOverride struct {
	Column string        `json:"column"`
	Values []FilterValue `json:"values"`
}

// FiltrationFromOverrides converte a lista de overrides em Filtration.
// Colunas repetidas acumulam valores.
func FiltrationFromOverrides(overrides []FilterOverride) Filtration {
	filtration := make(Filtration, len(overrides))
	for _, override := range overrides {
		filtration[override.Column] = append(filtration[override.Column], override.Values...)
	}
	return filtration
}
