package share

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// Handler serves an Exchange over HTTP.
type Handler struct {
	exchange Exchange
	log      *slog.Logger
	router   chi.Router
}

// NewHandler creates a Handler with all routes configured.
func NewHandler(exchange Exchange, log *slog.Logger) *Handler {
	h := &Handler{
		exchange: exchange,
		log:      log,
		router:   chi.NewRouter(),
	}
	h.routes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(RequestLogging(h.log))
	h.router.Use(CORS)

	h.router.Post("/api/v1/shares", h.handlePublish)
	h.router.Get("/api/v1/shares/{code}", h.handleResolve)
}

type publishResponse struct {
	Code string `json:"code"`
}

func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req Workout
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}

	code, err := h.exchange.Publish(r.Context(), req)
	if err != nil {
		h.log.Error("publish failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": errInternal})
		return
	}
	writeJSON(w, http.StatusCreated, publishResponse{Code: code})
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	workout, err := h.exchange.Resolve(r.Context(), chi.URLParam(r, "code"))
	switch {
	case errors.Is(err, ErrInvalidCode):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case err != nil:
		h.log.Error("resolve failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": errInternal})
	default:
		writeJSON(w, http.StatusOK, workout)
	}
}

// errInternal is the body sent for 500s; the cause is only logged.
const errInternal = "internal error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RequestLogging returns middleware that logs each request.
func RequestLogging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// CORS lets browser clients on other origins use the exchange.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
