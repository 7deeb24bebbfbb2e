package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vfg2006/custom-dashboard-api/internal/config"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/custom-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/custom-dashboard-api/pkg/log"
	"github.com/vfg2006/custom-dashboard-api/pkg/utils"
)

const uploadFormField = "file"

type uploadResponse struct {
	messageResponse
	Records int `json:"records"`
}

// UploadExcel recebe a planilha via multipart, grava em disco e importa a primeira aba
func UploadExcel(service ingesting.Ingester, cfg config.Upload) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UploadExcel")

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxBytes())

		file, header, err := formFile(r)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("File exceeds the %d MB limit", cfg.MaxSizeMB), nil)
				return
			}
			logger.WithError(err).Warn("upload: arquivo ausente na requisição")
			apiErrors.WriteError(w, apiErrors.ErrEmptyInput, "No file uploaded", nil)
			return
		}
		defer file.Close()

		path, err := saveUpload(cfg.Dir, file, header.Filename)
		if err != nil {
			logger.WithError(err).Error("upload: erro ao gravar o arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error processing file", nil)
			return
		}

		inserted, err := service.Ingest(r.Context(), path)
		if err != nil {
			code := errorCode(err)
			logger.WithError(err).WithField("file", path).Error("upload: erro ao importar planilha")

			switch code {
			case apiErrors.ErrEmptyInput:
				apiErrors.WriteError(w, code, "Excel sheet is empty", nil)
			case apiErrors.ErrDatabaseOperation:
				apiErrors.WriteError(w, code, "Error inserting data", nil)
			default:
				apiErrors.WriteError(w, code, clientMessage(code, err, "Error processing file"), nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, uploadResponse{
			messageResponse: messageResponse{
				HeaderCode: apiErrors.HeaderCodeSuccess,
				Message:    "Data inserted successfully",
			},
			Records: inserted,
		})
	})
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(32 << 10); err != nil {
		return nil, nil, err
	}
	return r.FormFile(uploadFormField)
}

// saveUpload copia o arquivo enviado para dir com um nome único
func saveUpload(dir string, src io.Reader, original string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name, err := utils.UploadFileName(original)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}
