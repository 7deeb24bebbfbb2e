package querybuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Clause é uma lista de condições unidas por AND.
// Uma Clause vazia não gera SQL.
type Clause []squirrel.Sqlizer

func (c Clause) IsEmpty() bool {
	return len(c) == 0
}

// And retorna uma nova Clause com as condições adicionais.
func (c Clause) And(conditions ...squirrel.Sqlizer) Clause {
	out := make(Clause, 0, len(c)+len(conditions))
	out = append(out, c...)
	return append(out, conditions...)
}

// ToSql une as condições com AND, com placeholders "?".
func (c Clause) ToSql() (string, []interface{}, error) {
	parts := make([]string, 0, len(c))
	args := make([]interface{}, 0)

	for _, condition := range c {
		sql, conditionArgs, err := condition.ToSql()
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, conditionArgs...)
	}

	return strings.Join(parts, " AND "), args, nil
}

// WhereSql retorna o fragmento com o prefixo WHERE, ou vazio se não houver condições.
func (c Clause) WhereSql() (string, []interface{}, error) {
	sql, args, err := c.ToSql()
	if err != nil || sql == "" {
		return "", args, err
	}
	return "WHERE " + sql, args, nil
}

// Apply adiciona a cláusula ao SELECT somente quando houver condições.
func (c Clause) Apply(sb squirrel.SelectBuilder) squirrel.SelectBuilder {
	if c.IsEmpty() {
		return sb
	}
	return sb.Where(c)
}
