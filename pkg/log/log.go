package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger encapsula o logrus com o filtro de campos do ambiente de desenvolvimento
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

const scopeKey contextKey = "log_scope"

const correlationIDField = "correlation_id"

// scope guarda o ID de correlação e as entidades da requisição em andamento
type scope struct {
	correlationID string
	fields        Fields
}

type logger struct {
	entry *logrus.Entry
}

var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro quando APP_ENV está vazio ou indica desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// developmentFields são os campos mantidos nos logs em ambiente de desenvolvimento
var developmentFields = map[string]struct{}{
	correlationIDField:  {},
	"method":            {},
	"path":              {},
	"status_code":       {},
	"duration_ms":       {},
	"slow":              {},
	"error":             {},
	"publication_id":    {},
	"campaign_id":       {},
	"rule_id":           {},
	"recommendation_id": {},
}

func isDevelopmentField(key string) bool {
	if _, ok := developmentFields[key]; ok {
		return true
	}
	return strings.HasSuffix(key, "_count")
}

// Setup configura o nível e o formato dos logs da aplicação
func Setup(level string) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}
	logrus.SetLevel(parsedLevel)

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	if err != nil {
		L.Warnf("Nível de log inválido %q, usando info", level)
	}
}

func (l *logger) WithField(key string, value interface{}) Logger {
	if IsDevelopment() && !isDevelopmentField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	relevant := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if IsDevelopment() && !isDevelopmentField(k) {
			continue
		}
		relevant[k] = v
	}

	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext inclui o ID de correlação e as entidades registradas no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	s, ok := ctx.Value(scopeKey).(*scope)
	if !ok {
		return l
	}

	fields := make(Fields, len(s.fields)+1)
	for k, v := range s.fields {
		fields[k] = v
	}
	if s.correlationID != "" {
		fields[correlationIDField] = s.correlationID
	}

	return l.WithFields(fields)
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
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

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func scopeFrom(ctx context.Context) *scope {
	if s, ok := ctx.Value(scopeKey).(*scope); ok {
		return s
	}
	return &scope{}
}

// WithCorrelationID gera um novo ID de correlação para o contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	return WithGivenCorrelationID(ctx, "")
}

// WithGivenCorrelationID reaproveita o ID recebido do cliente ou gera um novo
func WithGivenCorrelationID(ctx context.Context, correlationID string) (context.Context, string) {
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	current := scopeFrom(ctx)
	next := &scope{correlationID: correlationID, fields: current.fields}
	return context.WithValue(ctx, scopeKey, next), correlationID
}

// WithEntity registra no contexto o ID de uma entidade do domínio (publication_id,
// campaign_id...) para que todos os logs da requisição o carreguem
func WithEntity(ctx context.Context, key, id string) context.Context {
	if key == "" || id == "" {
		return ctx
	}

	current := scopeFrom(ctx)
	fields := make(Fields, len(current.fields)+1)
	for k, v := range current.fields {
		fields[k] = v
	}
	fields[key] = id

	return context.WithValue(ctx, scopeKey, &scope{correlationID: current.correlationID, fields: fields})
}

func GetCorrelationID(ctx context.Context) string {
	return scopeFrom(ctx).correlationID
}

// ForContext cria um logger com o ID de correlação e as entidades do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
