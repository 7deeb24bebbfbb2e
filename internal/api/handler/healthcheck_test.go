package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name             string
		pingErr          error
		expectedStatus   int
		expectedDatabase string
	}{
		{
			name:             "Banco disponível",
			expectedStatus:   http.StatusOK,
			expectedDatabase: "ok",
		},
		{
			name:             "Banco indisponível",
			pingErr:          errors.New("connection refused"),
			expectedStatus:   http.StatusServiceUnavailable,
			expectedDatabase: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := pingerFunc(func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return tt.pingErr
			})

			rec := httptest.NewRecorder()
			HealthcheckHandler(db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body healthcheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDatabase, body.Database)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
