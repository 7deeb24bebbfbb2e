// Package log configura o logrus da API e propaga o ID de correlação de
// cada requisição para os logs dos handlers e serviços.
package log

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Formatos aceitos em LOG_FORMAT
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela API. Os métodos de nível vêm
// do *logrus.Entry embutido.
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey struct{}

const correlationIDField = "correlation_id"

// requestDetailFields detalham a requisição HTTP. No formato texto ficam de
// fora para manter uma linha por requisição legível no terminal.
var requestDetailFields = map[string]struct{}{
	"query":          {},
	"remote_addr":    {},
	"content_type":   {},
	"content_length": {},
	"response_size":  {},
}

type logger struct {
	*logrus.Entry
	compact bool
}

// L é o logger base; ForContext deriva dele o logger de cada requisição.
var L Logger = newLogger(logrus.StandardLogger(), true)

func newLogger(base *logrus.Logger, compact bool) *logger {
	return &logger{Entry: logrus.NewEntry(base), compact: compact}
}

// Setup aplica LOG_LEVEL e LOG_FORMAT ao logrus global. Valores inválidos
// caem para info e texto.
func Setup(level, format string) {
	compact := true
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		compact = false
	case FormatText, "":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
		logrus.WithField("log_format", format).Warn("Formato de log inválido, usando text")
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("Nível de log inválido, usando info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = newLogger(logrus.StandardLogger(), compact)
}

// SetupTestLogger troca L por um logger sem saída e devolve o hook com as
// entradas registradas.
func SetupTestLogger() *test.Hook {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	L = newLogger(base, true)
	return hook
}

func (l *logger) keep(key string) bool {
	if !l.compact {
		return true
	}
	_, detail := requestDetailFields[key]
	return !detail
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !l.keep(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value), compact: l.compact}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if l.keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept), compact: l.compact}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err), compact: l.compact}
}

// WithCorrelationID gera um novo ID e o grava no contexto da requisição.
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, contextKey{}, id), id
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// ForContext devolve L com o correlation_id da requisição, quando houver.
func ForContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return L.WithField(correlationIDField, id)
	}
	return L
}
