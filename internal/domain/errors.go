package domain

import "errors"

// Tipos de erro do domínio. Camadas superiores os envolvem com contexto
// e o handler HTTP traduz cada tipo para um código de API.
var (
	// Erros de validação (4xx)
	ErrMissingParameter = errors.New("missing parameter")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrValidation       = errors.New("record does not match the table schema")
	ErrEmptyInput       = errors.New("empty input")
	ErrNotFound         = errors.New("not found")

	// Erros de infraestrutura (5xx)
	ErrStoreFailure = errors.New("store failure")
	ErrParseFailure = errors.New("parse failure")
)
