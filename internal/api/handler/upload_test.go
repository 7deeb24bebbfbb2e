package handler

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/custom-dashboard-api/internal/config"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-excel", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadExcel(t *testing.T) {
	tests := []struct {
		name           string
		request        func(t *testing.T) *http.Request
		ingestResult   int
		ingestErr      error
		expectIngest   bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Planilha importada com sucesso",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "Vendas.XLSX", []byte("conteudo"))
			},
			ingestResult:   12,
			expectIngest:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"headerCode":600,"message":"Data inserted successfully","records":12}`,
		},
		{
			name: "Campo file ausente",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "other", "Vendas.xlsx", []byte("conteudo"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_006","message":"No file uploaded"}`,
		},
		{
			name: "Requisição sem multipart",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/upload-excel", strings.NewReader("{}"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_006","message":"No file uploaded"}`,
		},
		{
			name: "Planilha vazia",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "vazia.xlsx", []byte("conteudo"))
			},
			ingestErr:      fmt.Errorf("%w: a planilha não possui linhas", domain.ErrEmptyInput),
			expectIngest:   true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_006","message":"Excel sheet is empty"}`,
		},
		{
			name: "Falha ao gravar no banco",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "Vendas.xlsx", []byte("conteudo"))
			},
			ingestErr:      fmt.Errorf("%w: conexão perdida", domain.ErrStoreFailure),
			expectIngest:   true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"headerCode":500,"code":"SRV_002","message":"Error inserting data"}`,
		},
		{
			name: "Arquivo ilegível",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "Vendas.xlsx", []byte("conteudo"))
			},
			ingestErr:      fmt.Errorf("%w: zip: not a valid zip file", domain.ErrParseFailure),
			expectIngest:   true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"headerCode":500,"code":"SRV_003","message":"Error processing file"}`,
		},
		{
			name: "Registro fora do schema",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "file", "Vendas.xlsx", []byte("conteudo"))
			},
			ingestErr:      fmt.Errorf("%w: coluna Foo", domain.ErrValidation),
			expectIngest:   true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"headerCode":400,"code":"VAL_007","message":"record does not match the table schema: coluna Foo"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockIngester(ctrl)
			cfg := config.Upload{Dir: t.TempDir(), MaxSizeMB: 1}

			if tt.expectIngest {
				service.EXPECT().
					Ingest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, path string) (int, error) {
						assert.Equal(t, cfg.Dir, filepath.Dir(path))
						assert.Equal(t, ".xlsx", filepath.Ext(path))

						content, err := os.ReadFile(path)
						require.NoError(t, err)
						assert.Equal(t, "conteudo", string(content))

						return tt.ingestResult, tt.ingestErr
					})
			}

			rec := httptest.NewRecorder()
			UploadExcel(service, cfg).ServeHTTP(rec, tt.request(t))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestUploadExcel_RejectsOversizedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIngester(ctrl)
	cfg := config.Upload{Dir: t.TempDir(), MaxSizeMB: 1}

	rec := httptest.NewRecorder()
	UploadExcel(service, cfg).ServeHTTP(rec, multipartRequest(t, "file", "grande.xlsx", bytes.Repeat([]byte("a"), 2<<20)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entries, err := os.ReadDir(cfg.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
