package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HeaderCodeSuccess é o código de sucesso devolvido no corpo das respostas
const HeaderCodeSuccess = 600

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrUnknownColumn       = "VAL_004" // Coluna inexistente na tabela
	ErrInvalidOperation    = "VAL_005" // Operação de agregação inválida
	ErrEmptyInput          = "VAL_006" // Arquivo ausente ou planilha vazia
	ErrSchemaMismatch      = "VAL_007" // Registro fora do schema da tabela
	ErrMethodNotAllowed    = "VAL_008" // Método HTTP não suportado pela rota

	// Erros de consulta
	ErrNotFound = "QRY_001" // Nenhum registro encontrado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrParseFailure      = "SRV_003" // Falha ao ler a planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrUnknownColumn:       http.StatusBadRequest,
	ErrInvalidOperation:    http.StatusBadRequest,
	ErrEmptyInput:          http.StatusBadRequest,
	ErrSchemaMismatch:      http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrParseFailure:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	HeaderCode int    `json:"headerCode"`        // Status HTTP repetido no corpo
	Code       string `json:"code"`              // Código de erro para o cliente
	Message    string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details    any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// EnvelopeHeader e EnvelopeBody formam a resposta {header, body} dos endpoints de dashboard
type EnvelopeHeader struct {
	Code int `json:"code"`
}

type EnvelopeBody struct {
	Value any     `json:"value"`
	Error *string `json:"error"`
}

type Envelope struct {
	Header EnvelopeHeader `json:"header"`
	Body   EnvelopeBody   `json:"body"`
}

// StatusFor retorna o status HTTP do código, ou 500 se o código não for conhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// CodeFor traduz os tipos de erro do domínio para códigos da API
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ErrInternalServer
	case errors.Is(err, domain.ErrMissingParameter):
		return ErrMissingRequiredData
	case errors.Is(err, domain.ErrUnknownColumn):
		return ErrUnknownColumn
	case errors.Is(err, domain.ErrInvalidOperation):
		return ErrInvalidOperation
	case errors.Is(err, domain.ErrInvalidParameter):
		return ErrInvalidFormat
	case errors.Is(err, domain.ErrEmptyInput):
		return ErrEmptyInput
	case errors.Is(err, domain.ErrValidation):
		return ErrSchemaMismatch
	case errors.Is(err, domain.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, domain.ErrParseFailure):
		return ErrParseFailure
	case errors.Is(err, domain.ErrStoreFailure):
		return ErrDatabaseOperation
	default:
		return ErrInternalServer
	}
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status := StatusFor(code)

	apiErr := APIError{
		HeaderCode: status,
		Code:       code,
		Message:    message,
		Details:    details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteEnvelopeError escreve {header:{code}, body:{value:null, error}}
func WriteEnvelopeError(w http.ResponseWriter, code string, message string) {
	status := StatusFor(code)

	writeEnvelope(w, status, Envelope{
		Header: EnvelopeHeader{Code: status},
		Body:   EnvelopeBody{Value: nil, Error: &message},
	})
}

// WriteEnvelope escreve a resposta de sucesso {header:{code:600}, body:{value, error:null}}
func WriteEnvelope(w http.ResponseWriter, value any) {
	writeEnvelope(w, http.StatusOK, Envelope{
		Header: EnvelopeHeader{Code: HeaderCodeSuccess},
		Body:   EnvelopeBody{Value: value},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			HeaderCode: http.StatusInternalServerError,
			Code:       ErrInternalServer,
			Message:    "Erro desconhecido",
		}
	}

	return APIError{
		HeaderCode: StatusFor(code),
		Code:       code,
		Message:    err.Error(),
	}
}
