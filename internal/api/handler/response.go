package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/custom-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// messageResponse é o corpo padrão de sucesso com headerCode
type messageResponse struct {
	HeaderCode int    `json:"headerCode"`
	Message    string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// errorCode devolve o código de API do erro, preferindo o de um DashboardError
func errorCode(err error) string {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) && dashErr.Code != "" {
		return dashErr.Code
	}
	return apiErrors.CodeFor(err)
}

// clientMessage expõe a mensagem do erro apenas para erros 4xx. Para falhas
// internas o cliente recebe a mensagem genérica e a causa fica no log.
func clientMessage(code string, err error, fallback string) string {
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		return fallback
	}
	return err.Error()
}

func decodeBody(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}
