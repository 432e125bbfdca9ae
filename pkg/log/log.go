package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado por handlers e middlewares
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	requestFieldsKey contextKey = "request_fields"

	correlationIDField = "correlation_id"

	// Campos com esse prefixo sempre passam pelo filtro de desenvolvimento
	datasetFieldPrefix = "dataset_"
)

type logger struct {
	entry *logrus.Entry
}

var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Campos mantidos em desenvolvimento; o resto só aparece em produção
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"dataset":          {},
	"kind":             {},
	"window":           {},
	"type":             {},
}

func IsDevelopment() bool {
	env := os.Getenv("ENVIRONMENT")
	return env == "" || env == "development" || env == "dev"
}

// Configure ajusta nível e formato: texto em desenvolvimento, JSON nos demais ambientes
func Configure(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// SetupTestLogger deixa o logrus em debug com saída em texto simples
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func keepInDevelopment(key string) bool {
	if _, ok := devFields[key]; ok {
		return true
	}
	return strings.HasPrefix(key, datasetFieldPrefix)
}

func (l *logger) WithField(key string, value any) Logger {
	if IsDevelopment() && !keepInDevelopment(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if IsDevelopment() && !keepInDevelopment(k) {
			continue
		}
		kept[k] = v
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Debug(args ...any) { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

// WithCorrelationID abre o escopo de log de uma requisição: gera o ID de correlação
// e um conjunto de campos que as rotas podem preencher com AddRequestField
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	ctx = context.WithValue(ctx, CorrelationIDKey, correlationID)
	ctx = context.WithValue(ctx, requestFieldsKey, Fields{})
	return ctx, correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// AddRequestField anota a requisição em andamento. Sem escopo aberto não faz nada.
func AddRequestField(ctx context.Context, key string, value any) {
	if fields, ok := ctx.Value(requestFieldsKey).(Fields); ok {
		fields[key] = value
	}
}

// RequestFields devolve uma cópia dos campos anotados na requisição
func RequestFields(ctx context.Context) Fields {
	fields, ok := ctx.Value(requestFieldsKey).(Fields)
	if !ok {
		return nil
	}

	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}

// ForContext devolve o logger com o ID de correlação e os campos da requisição
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	l := L
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		l = l.WithField(correlationIDField, correlationID)
	}
	if fields := RequestFields(ctx); len(fields) > 0 {
		l = l.WithFields(fields)
	}
	return l
}
