package log

import (
	"context"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pelos handlers e casos de uso
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	requestFieldsKey contextKey = "request_fields"

	correlationIDField = "correlation_id"
)

// devFields são os campos mantidos nos logs de desenvolvimento: os da
// requisição e os que identificam a visão calculada
var devFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"view":             true,
	"cache_hit":        true,
	"dataset_version":  true,
	"filters":          true,
	"job":              true,
}

type logger struct {
	entry *logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func keepField(key string) bool {
	return !IsDevelopment() || devFields[key] || strings.HasPrefix(key, "store_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if !keepField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	relevantFields := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keepField(k) {
			relevantFields[k] = v
		}
	}
	if len(relevantFields) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevantFields)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// requestFields acumula os campos que a requisição ganha enquanto é processada
// (visão, filtro, acerto de cache) para a linha final do log de acesso
type requestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequest prepara o contexto de uma requisição HTTP com um novo ID de
// correlação e um acumulador de campos
func WithRequest(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	ctx = context.WithValue(ctx, correlationIDKey, correlationID)
	ctx = context.WithValue(ctx, requestFieldsKey, &requestFields{fields: Fields{}})
	return ctx, correlationID
}

// Annotate adiciona campos ao log de acesso da requisição.
// Fora de uma requisição (jobs, testes) não faz nada.
func Annotate(ctx context.Context, fields Fields) {
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return
	}

	rf.mu.Lock()
	defer rf.mu.Unlock()
	maps.Copy(rf.fields, fields)
}

// RequestFields devolve uma cópia dos campos anotados na requisição
func RequestFields(ctx context.Context) Fields {
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return Fields{}
	}

	rf.mu.Lock()
	defer rf.mu.Unlock()
	return maps.Clone(rf.fields)
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(correlationIDField, correlationID)
	}
	return L
}
