package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Logging пишет строку лога на каждый запрос
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			elapsed := time.Since(start)

			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			default:
				log.Info("%s %s - %d in %s (request_id=%s)", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			}
		})
	}
}
