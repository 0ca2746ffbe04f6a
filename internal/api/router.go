// filepath: internal/api/router.go
package api

import (
	"net/http"
	"strings"
	"time"

	"payinfo/internal/api/handlers"
	"payinfo/internal/logging"
	"payinfo/internal/services/auth"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)
	r.NotFoundHandler = requestLogger(http.HandlerFunc(notFound))

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/payments/{referenceId}", h.GetPaymentInfo).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.AuthMiddleware)
	addPaymentInfoRoutes(apiRouter, h)
	apiRouter.HandleFunc("/housekeeping", h.TriggerHousekeeping).Methods("POST")

	return r
}

// addPaymentInfoRoutes configures the write side of the payment info store.
func addPaymentInfoRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/payments", h.CreatePaymentInfo).Methods("POST")
	r.HandleFunc("/payments/{referenceId}", h.PutPaymentInfo).Methods("PUT")
	r.HandleFunc("/payments/{referenceId}", h.DeletePaymentInfo).Methods("DELETE")
}

// paymentLookupPrefix is the public lookup path. Anything under it that no
// route matches (e.g. an id containing '/') names a record that cannot exist.
const paymentLookupPrefix = "/payments/"

// notFound answers lookups under paymentLookupPrefix with a bare 404, like a
// missing record, and everything else with the default text response.
func notFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, paymentLookupPrefix) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	http.NotFound(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger logs one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Debug("request")
	})
}
