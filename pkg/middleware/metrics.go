package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/performance-decision-api/internal/metrics"
)

// Metrics registra contagem e latência das requisições. O endpoint é o padrão da rota
// (ex: /v1/publications/:id/evaluate) para manter a cardinalidade baixa.
func Metrics(endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			status := strconv.Itoa(lrw.statusCode)
			metrics.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, endpoint, status).Observe(time.Since(startTime).Seconds())
		})
	}
}
