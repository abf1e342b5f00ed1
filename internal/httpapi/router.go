// Package httpapi exposes the nutrition service as a JSON REST API.
package httpapi

import (
	_ "embed"
	"net/http"

	"github.com/mmynk/nutrilog/internal/metrics"
	"github.com/mmynk/nutrilog/internal/middleware"
	"github.com/mmynk/nutrilog/internal/service"
)

//go:embed docs.html
var docsPage []byte

// Handler serves the REST endpoints.
type Handler struct {
	svc *service.NutritionService
}

// NewHandler creates a Handler for svc.
func NewHandler(svc *service.NutritionService) *Handler {
	return &Handler{svc: svc}
}

// Register adds every API route to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /docs", h.docs)

	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("GET /users/{userName}", h.getUser)

	mux.HandleFunc("POST /log_meals", h.logMeal)
	mux.HandleFunc("GET /log_meals/{userName}", h.mealLogs)
	mux.HandleFunc("GET /status/{userName}", h.status)

	mux.HandleFunc("POST /webhook", h.webhook)
	mux.HandleFunc("GET /foods", h.listFoods)
}

// NewRouter assembles the full server handler: API routes, health and metrics
// endpoints, wrapped in request ID, CORS, logging and metrics middleware.
func NewRouter(svc *service.NutritionService, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()
	NewHandler(svc).Register(mux)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Logging and Metrics must sit inside RequestID so they see the routed request.
	var h http.Handler = mux
	h = middleware.Metrics(m)(h)
	h = middleware.Logging(h)
	h = middleware.CORS(h)
	h = middleware.RequestID(h)
	return h
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusPermanentRedirect)
}

func (h *Handler) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(docsPage)
}
