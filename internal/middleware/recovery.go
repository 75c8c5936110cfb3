package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/2beens/axend/internal/telemetry/metrics"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500, counts it and reports it
// to sentry. http.ErrAbortHandler is passed through to net/http untouched.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"method": r.Method,
					"route":  routeTemplate(r),
				}).Errorf("panic serving [%s]: %v\n%s", r.URL.Path, rec, debug.Stack())
				sentry.CurrentHub().Recover(rec)

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
