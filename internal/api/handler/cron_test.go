package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/custom-dashboard-api/internal/api/handler/router"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"running": false}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name              string
		path              string
		expectedStatus    int
		expectedTriggered int
	}{
		{
			name:              "Dispara a limpeza de uploads",
			path:              "/v1/cron/upload-cleanup/run",
			expectedStatus:    http.StatusAccepted,
			expectedTriggered: 1,
		},
		{
			name:              "all dispara todas as jobs",
			path:              "/v1/cron/all/run",
			expectedStatus:    http.StatusAccepted,
			expectedTriggered: 1,
		},
		{
			name:              "Tipo desconhecido",
			path:              "/v1/cron/meta/run",
			expectedStatus:    http.StatusBadRequest,
			expectedTriggered: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{UploadCleanupService: job})...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedTriggered, job.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{UploadCleanupService: &fakeCronJob{}})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"upload-cleanup":{"running":false}}`, rec.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nao-existe", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"headerCode":404,"code":"QRY_001","message":"Rota não encontrada"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
