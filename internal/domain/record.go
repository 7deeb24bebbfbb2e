package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

type CellKind int

const (
	CellNull CellKind = iota
	CellString
	CellNumber
)

// Cell é um valor escalar de uma coluna da tabela de dados.
// A tabela guarda tudo como texto; números mantêm a representação original.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Record é uma linha da planilha, indexada pelo nome da coluna.
type Record map[string]Cell

func NullCell() Cell {
	return Cell{Kind: CellNull}
}

func StringCell(s string) Cell {
	return Cell{Kind: CellString, Text: s}
}

func NumberCell(text string, n float64) Cell {
	return Cell{Kind: CellNumber, Text: text, Number: n}
}

// ParseCell classifica o texto de uma célula: vazio vira NULL e texto
// numérico vira número.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NullCell()
	}

	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(trimmed, n)
	}

	return StringCell(raw)
}

func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}

// SQLValue retorna o valor a ser vinculado como parâmetro na query.
func (c Cell) SQLValue() interface{} {
	if c.IsNull() {
		return nil
	}
	return c.Text
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNull:
		return []byte("null"), nil
	case CellNumber:
		return []byte(strconv.FormatFloat(c.Number, 'f', -1, 64)), nil
	default:
		return json.Marshal(c.Text)
	}
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*c = NullCell()
	case float64:
		*c = NumberCell(strconv.FormatFloat(v, 'f', -1, 64), v)
	case string:
		*c = StringCell(v)
	case bool:
		*c = StringCell(strconv.FormatBool(v))
	default:
		return ErrInvalidParameter
	}

	return nil
}

// Columns retorna os nomes das colunas presentes no registro.
func (r Record) Columns() []string {
	columns := make([]string, 0, len(r))
	for column := range r {
		columns = append(columns, column)
	}
	return columns
}
