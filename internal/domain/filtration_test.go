package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected FilterValue
	}{
		{"Texto", `"Tower 1"`, NewFilterValue("Tower 1")},
		{"Texto vazio", `""`, NewFilterValue("")},
		{"Null", `null`, NullFilterValue()},
		{"Número mantém o texto original", `1500.50`, NewFilterValue("1500.50")},
		{"Booleano", `true`, NewFilterValue("true")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value FilterValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &value))
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestFilterValue_UnmarshalJSON_Invalid(t *testing.T) {
	var value FilterValue
	assert.Error(t, json.Unmarshal([]byte(`{"a":`), &value))
}

func TestFilterValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal([]FilterValue{NewFilterValue("A"), NullFilterValue(), NewFilterValue("")})
	require.NoError(t, err)
	assert.JSONEq(t, `["A",null,""]`, string(data))
}

func TestFilterOverride_DecodesNullValues(t *testing.T) {
	var overrides []FilterOverride
	require.NoError(t, json.Unmarshal([]byte(`[{"column":"UnitStatus","values":["A",null]}]`), &overrides))

	assert.Equal(t, []FilterOverride{
		{Column: "UnitStatus", Values: []FilterValue{NewFilterValue("A"), NullFilterValue()}},
	}, overrides)
}

func TestFiltrationFromOverrides(t *testing.T) {
	filtration := FiltrationFromOverrides([]FilterOverride{
		{Column: "UnitStatus", Values: []FilterValue{NewFilterValue("Sold")}},
		{Column: "Building", Values: []FilterValue{NullFilterValue()}},
		{Column: "UnitStatus", Values: []FilterValue{NewFilterValue("Reserved")}},
	})

	assert.Equal(t, Filtration{
		"UnitStatus": {NewFilterValue("Sold"), NewFilterValue("Reserved")},
		"Building":   {NullFilterValue()},
	}, filtration)
	assert.Equal(t, []string{"Building", "UnitStatus"}, filtration.Columns())
}

func TestFiltration_JSONRoundTrip(t *testing.T) {
	stored := `{"Building":["Tower 1",null],"UnitType":["Villa"]}`

	var filtration Filtration
	require.NoError(t, json.Unmarshal([]byte(stored), &filtration))
	assert.Equal(t, []FilterValue{NewFilterValue("Tower 1"), NullFilterValue()}, filtration["Building"])

	data, err := json.Marshal(filtration)
	require.NoError(t, err)
	assert.JSONEq(t, stored, string(data))
}
