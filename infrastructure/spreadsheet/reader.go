// Package spreadsheet lê planilhas enviadas para importação
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/custom-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

type Reader interface {
	// ReadFile lê a primeira aba do arquivo. A primeira linha é o cabeçalho.
	ReadFile(path string) ([]domain.Record, error)
	Read(r io.Reader) ([]domain.Record, error)
}

type excelReader struct{}

func NewExcelReader() Reader {
	return &excelReader{}
}

func (e *excelReader) ReadFile(path string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrParseFailure, path, err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

func (e *excelReader) Read(r io.Reader) ([]domain.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	defer f.Close()

	return readFirstSheet(f)
}

// readFirstSheet ignora linhas em branco e omite células vazias; colunas sem
// cabeçalho são descartadas. Os valores são lidos sem a formatação de número
// do Excel, e células com estilo de data saem no layout da coluna de data.
func readFirstSheet(f *excelize.File) ([]domain.Record, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []domain.Record{}, nil
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: ler aba %s: %v", domain.ErrParseFailure, sheet, err)
	}

	if len(rows) < 2 {
		return []domain.Record{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	dates := newDateCells(f, sheet)

	records := make([]domain.Record, 0, len(rows)-1)
	for r, row := range rows[1:] {
		record := make(domain.Record, len(row))
		for i, raw := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}

			value, err := dates.render(i+1, r+2, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: aba %s: %v", domain.ErrParseFailure, sheet, err)
			}

			cell := domain.ParseCell(value)
			if cell.IsNull() {
				continue
			}
			record[header[i]] = cell
		}

		if len(record) == 0 {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
