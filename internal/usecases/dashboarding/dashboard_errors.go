package dashboarding

import (
	"errors"
	"fmt"

	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/pkg/apiErrors"
)

// Erros específicos para o contexto de dashboards
var (
	ErrCreateDashboard = errors.New("error creating dashboard")
	ErrReplayDashboard = errors.New("error replaying dashboard")
	ErrDrilldownChart  = errors.New("error building drilldown chart")
	ErrViewDetails     = errors.New("error fetching details")
	ErrListColumns     = errors.New("error listing columns")

	// ErrStaleConfig indica uma configuração salva que não casa mais com a
	// tabela de dados (coluna removida ou operação inválida).
	ErrStaleConfig = errors.New("stored dashboard configuration no longer matches the data table")
)

// DashboardError é um erro com contexto adicional para dashboards
type DashboardError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	DashboardID int64  // Configuração envolvida (quando aplicável)
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError envolve err com o código de API correspondente ao tipo de erro do domínio
func NewDashboardError(err error, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    apiErrors.CodeFor(err),
		Details: details,
	}
}

// NewDashboardErrorWithID cria um DashboardError para uma configuração específica
func NewDashboardErrorWithID(err error, id int64, details string) *DashboardError {
	dashErr := NewDashboardError(err, details)
	dashErr.DashboardID = id
	return dashErr
}

// classify mantém erros de validação como estão e marca o restante como
// falha de infraestrutura, preservando a causa original
func classify(op error, err error) error {
	if isClientError(err) {
		return err
	}
	return fmt.Errorf("%w: %w: %w", op, domain.ErrStoreFailure, err)
}

// isClientError indica erros que devem ser devolvidos como 4xx
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrMissingParameter) ||
		errors.Is(err, domain.ErrUnknownColumn) ||
		errors.Is(err, domain.ErrInvalidOperation) ||
		errors.Is(err, domain.ErrInvalidParameter) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrEmptyInput)
}

// staleConfig marca o erro de validação de uma configuração salva como falha
// do servidor. A causa entra só no texto para não ser tratada como erro do cliente.
func staleConfig(id int64, cause error) error {
	return fmt.Errorf("%w: dashboard %d: %v", ErrStaleConfig, id, cause)
}
