package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := healthcheckResponse{
			Status:    "ok",
			Database:  "ok",
			Timestamp: time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		if err := db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
			response.Status = "degraded"
			response.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		writeJSON(w, status, response)
	})
}
