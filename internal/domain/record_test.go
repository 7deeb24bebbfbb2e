package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Cell
	}{
		{"Vazio", "", NullCell()},
		{"Só espaços", "   ", NullCell()},
		{"Inteiro", "1200000", NumberCell("1200000", 1200000)},
		{"Decimal com espaços", " 95.5 ", NumberCell("95.5", 95.5)},
		{"Zero à esquerda preserva o texto", "007", NumberCell("007", 7)},
		{"Texto", "Tower 1", StringCell("Tower 1")},
		{"Data", "01/15/2024", StringCell("01/15/2024")},
		{"Número formatado", "1,200,000", StringCell("1,200,000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCell(tt.raw))
		})
	}
}

func TestCell_SQLValue(t *testing.T) {
	assert.Nil(t, NullCell().SQLValue())
	assert.Equal(t, "007", NumberCell("007", 7).SQLValue())
	assert.Equal(t, "Alpha", StringCell("Alpha").SQLValue())
}

func TestCell_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Cell
		output   string
	}{
		{"Null", `null`, NullCell(), `null`},
		{"Número", `1500.5`, NumberCell("1500.5", 1500.5), `1500.5`},
		{"Número grande sem notação científica", `1200000`, NumberCell("1200000", 1200000), `1200000`},
		{"Texto", `"Villa"`, StringCell("Villa"), `"Villa"`},
		{"Booleano vira texto", `false`, StringCell("false"), `"false"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cell Cell
			require.NoError(t, json.Unmarshal([]byte(tt.input), &cell))
			assert.Equal(t, tt.expected, cell)

			data, err := json.Marshal(cell)
			require.NoError(t, err)
			assert.Equal(t, tt.output, string(data))
		})
	}
}

func TestCell_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var cell Cell
	err := json.Unmarshal([]byte(`{"a":1}`), &cell)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRecord_DecodeRequestBody(t *testing.T) {
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(`[{"Project":"Alpha","SaleValue":1500,"Building":null}]`), &records))

	require.Len(t, records, 1)
	assert.Equal(t, Record{
		"Project":   StringCell("Alpha"),
		"SaleValue": NumberCell("1500", 1500),
		"Building":  NullCell(),
	}, records[0])
	assert.ElementsMatch(t, []string{"Project", "SaleValue", "Building"}, records[0].Columns())
}
