// Package querybuilder transforma configurações de dashboard e filtros
// enviados pelo cliente em SQL parametrizado.
//
// Nomes de coluna não podem ser vinculados como parâmetro, então todo
// identificador interpolado passa antes pela lista de colunas reais da tabela
// (ColumnSet). Valores são sempre vinculados.
package querybuilder

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

// Identifier é um nome de coluna validado contra o schema vivo da tabela.
// Só pode ser obtido através de ColumnSet.Identifier.
type Identifier struct {
	name string
}

func (i Identifier) Name() string {
	return i.name
}

// Quoted retorna o identificador entre aspas duplas, pronto para interpolação.
func (i Identifier) Quoted() string {
	return pq.QuoteIdentifier(i.name)
}

func (i Identifier) IsZero() bool {
	return i.name == ""
}

// ColumnSet é a lista ordenada de colunas existentes na tabela de dados.
type ColumnSet struct {
	names []string
	index map[string]struct{}
}

func NewColumnSet(names []string) ColumnSet {
	set := ColumnSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}

	for _, name := range names {
		if _, exists := set.index[name]; exists {
			continue
		}
		set.index[name] = struct{}{}
		set.names = append(set.names, name)
	}

	return set
}

// Names retorna uma cópia dos nomes na ordem do schema.
func (s ColumnSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s ColumnSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Identifier valida o nome e retorna o identificador correspondente.
func (s ColumnSet) Identifier(name string) (Identifier, error) {
	if !s.Contains(name) {
		return Identifier{}, &UnknownColumnError{Column: name}
	}
	return Identifier{name: name}, nil
}

// Identifiers retorna todos os identificadores na ordem do schema.
func (s ColumnSet) Identifiers() []Identifier {
	ids := make([]Identifier, 0, len(s.names))
	for _, name := range s.names {
		ids = append(ids, Identifier{name: name})
	}
	return ids
}

// UnknownColumnError informa qual coluna não existe na tabela.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist", e.Column)
}

func (e *UnknownColumnError) Unwrap() error {
	return domain.ErrUnknownColumn
}
