package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/pkg/log"
)

func TestLoggingMiddleware_AddsCorrelationID(t *testing.T) {
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Len(t, correlationID, 36)
}

func TestLoggingMiddleware_AccessLogCarriesRequestFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	defer hook.Reset()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, entry *logrus.Entry)
	}{
		{
			name: "Visão calculada com acerto de cache",
			handler: func(w http.ResponseWriter, r *http.Request) {
				log.Annotate(r.Context(), log.Fields{"view": "dashboard", "filters": "2024-06-01|2024-06-30|all|all|false"})
				log.Annotate(r.Context(), log.Fields{"cache_hit": true, "dataset_version": "v1"})
			},
			validate: func(t *testing.T, entry *logrus.Entry) {
				assert.Equal(t, logrus.InfoLevel, entry.Level)
				assert.Equal(t, "dashboard", entry.Data["view"])
				assert.Equal(t, "2024-06-01|2024-06-30|all|all|false", entry.Data["filters"])
				assert.Equal(t, true, entry.Data["cache_hit"])
				assert.Equal(t, "v1", entry.Data["dataset_version"])
				assert.Equal(t, http.StatusOK, entry.Data["status_code"])
				assert.Len(t, entry.Data["correlation_id"], 36)
			},
		},
		{
			name: "Filtro inválido vira aviso",
			handler: func(w http.ResponseWriter, r *http.Request) {
				log.Annotate(r.Context(), log.Fields{"view": "trend"})
				w.WriteHeader(http.StatusBadRequest)
			},
			validate: func(t *testing.T, entry *logrus.Entry) {
				assert.Equal(t, logrus.WarnLevel, entry.Level)
				assert.Equal(t, "trend", entry.Data["view"])
				assert.NotContains(t, entry.Data, "cache_hit")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			rec := httptest.NewRecorder()
			LoggingMiddleware()(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			tt.validate(t, entry)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestCors(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		origin  string
		allowed bool
	}{
		{name: "Origem padrão permitida", origin: "http://localhost:3000", allowed: true},
		{name: "Origem padrão bloqueada", origin: "https://outro.com", allowed: false},
		{name: "Origem configurada por variável", env: "https://painel.lojas.com, https://admin.lojas.com", origin: "https://admin.lojas.com", allowed: true},
		{name: "Variável substitui as origens padrão", env: "https://painel.lojas.com", origin: "http://localhost:3000", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CORS_ALLOWED_ORIGINS", tt.env)

			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			req.Header.Set("Origin", tt.origin)

			rec := httptest.NewRecorder()
			Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

			if tt.allowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
