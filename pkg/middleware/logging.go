package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const CorrelationIDHeader = "X-Correlation-ID"

const (
	slowRequestThreshold = 500 * time.Millisecond
	stackTraceSize       = 4096
)

// LoggingMiddleware abre o escopo de log da requisição e registra uma linha ao final,
// já com os campos que a rota anotou (dataset, kind, window)
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
				"status_code": rec.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error("http: requisição finalizada com erro")
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn("http: requisição rejeitada")
			default:
				logger.Info("http: requisição finalizada")
			}

			if elapsed > slowRequestThreshold {
				logger.Warn(fmt.Sprintf("http: requisição lenta (%s)", elapsed))
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.statusCode = code
	s.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte um panic em SRV_001 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, stackTraceSize)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("http: panic durante a requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
