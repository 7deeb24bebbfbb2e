package domain

import (
	"fmt"
	"strings"
)

// Operation é a função de agregação aplicada à coluna de valores.
type Operation string

const (
	OperationCount Operation = "COUNT"
	OperationSum   Operation = "SUM"
	OperationAvg   Operation = "AVG"
	OperationMin   Operation = "MIN"
	OperationMax   Operation = "MAX"
)

var allowedOperations = map[Operation]struct{}{
	OperationCount: {},
	OperationSum:   {},
	OperationAvg:   {},
	OperationMin:   {},
	OperationMax:   {},
}

// ParseOperation normaliza o nome para maiúsculas e rejeita qualquer
// agregação fora da lista permitida.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := allowedOperations[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, name)
	}
	return op, nil
}

// IsNumeric indica se a operação exige conversão da coluna texto para número.
func (o Operation) IsNumeric() bool {
	return o == OperationSum || o == OperationAvg
}

func (o Operation) String() string {
	return string(o)
}
