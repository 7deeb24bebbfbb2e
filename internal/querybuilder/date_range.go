package querybuilder

import (
	"fmt"
	"time"

	"github.com/vfg2006/custom-dashboard-api/internal/domain"
)

// DateLayout é o formato textual da coluna de data na tabela (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// Intervalos nomeados aceitos em dateRange
const (
	DateRangeToday     = "today"
	DateRangeThisMonth = "this_month"
	DateRangeLastMonth = "last_month"
)

// DateWindow é um intervalo fechado [Start, End] já formatado.
type DateWindow struct {
	Start string
	End   string
}

// ResolveDateRange converte um intervalo nomeado em datas explícitas,
// relativas ao dia de now.
func ResolveDateRange(name string, now time.Time) (DateWindow, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	firstOfMonth := today.AddDate(0, 0, 1-today.Day())

	switch name {
	case DateRangeToday:
		return window(today, today), nil
	case DateRangeThisMonth:
		return window(firstOfMonth, today), nil
	case DateRangeLastMonth:
		return window(firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1)), nil
	default:
		return DateWindow{}, fmt.Errorf("%w: unknown dateRange %q", domain.ErrInvalidParameter, name)
	}
}

func window(start, end time.Time) DateWindow {
	return DateWindow{
		Start: start.Format(DateLayout),
		End:   end.Format(DateLayout),
	}
}
