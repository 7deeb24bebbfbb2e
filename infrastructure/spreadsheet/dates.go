package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/vfg2006/custom-dashboard-api/internal/querybuilder"
	"github.com/xuri/excelize/v2"
)

// Formatos de data embutidos do Excel (ids 14-17, 22 e os de data do leste asiático)
var builtinDateFormats = map[int]struct{}{
	14: {}, 15: {}, 16: {}, 17: {}, 22: {},
	27: {}, 28: {}, 29: {}, 30: {}, 31: {}, 32: {}, 33: {}, 34: {}, 35: {}, 36: {},
	50: {}, 51: {}, 52: {}, 53: {}, 54: {}, 55: {}, 56: {}, 57: {}, 58: {},
}

// dateCells converte o número de série de células com estilo de data para o
// texto MM/DD/YYYY usado nos filtros de data.
type dateCells struct {
	file     *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{
		file:   f,
		sheet:  sheet,
		styles: map[int]bool{0: false},
	}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}

	return d
}

// render devolve raw sem alteração, exceto para números em células de data.
func (d *dateCells) render(col, row int, raw string) (string, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw, nil
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}

	styleID, err := d.file.GetCellStyle(d.sheet, name)
	if err != nil {
		return "", err
	}

	isDate, err := d.isDateStyle(styleID)
	if err != nil || !isDate {
		return raw, err
	}

	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return raw, nil
	}

	return t.Format(querybuilder.DateLayout), nil
}

func (d *dateCells) isDateStyle(styleID int) (bool, error) {
	if isDate, ok := d.styles[styleID]; ok {
		return isDate, nil
	}

	style, err := d.file.GetStyle(styleID)
	if err != nil {
		return false, err
	}

	isDate := false
	if style.CustomNumFmt != nil {
		isDate = isDateFormat(*style.CustomNumFmt)
	} else {
		_, isDate = builtinDateFormats[style.NumFmt]
	}

	d.styles[styleID] = isDate
	return isDate, nil
}

// isDateFormat procura tokens de dia ou ano fora de literais, cores e escapes.
func isDateFormat(format string) bool {
	var plain strings.Builder
	inQuote, inBracket, escaped := false, false, false

	for _, r := range format {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			plain.WriteRune(r)
		}
	}

	return strings.ContainsAny(strings.ToLower(plain.String()), "dy")
}
