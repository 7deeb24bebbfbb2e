package ingesting

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

type Ingester interface {
	// Ingest importa a primeira aba da planilha em path e retorna quantos
	// registros foram inseridos. O arquivo só é removido em caso de sucesso.
	Ingest(ctx context.Context, path string) (int, error)
}

type Service struct {
	reader    spreadsheet.Reader
	excelData repository.ExcelDataRepository
	remove    func(string) error
}

func NewService(reader spreadsheet.Reader, excelData repository.ExcelDataRepository) Ingester {
	return &Service{
		reader:    reader,
		excelData: excelData,
		remove:    os.Remove,
	}
}

func (s *Service) Ingest(ctx context.Context, path string) (int, error) {
	records, err := s.reader.ReadFile(path)
	if err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, fmt.Errorf("%w: a planilha não possui linhas", domain.ErrEmptyInput)
	}

	inserted, err := s.excelData.BulkInsert(ctx, records)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	if err := s.remove(path); err != nil {
		// Os dados já foram gravados; o arquivo fica para o job de limpeza
		logrus.WithError(err).WithField("file", path).Warn("ingest: não foi possível remover o arquivo enviado")
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"records": inserted,
	}).Info("ingest: planilha importada")

	return inserted, nil
}
