package api

import (
	"net/http"

	"address-processor/internal/logger"
	"address-processor/internal/middleware"
)

// NewRouter wires the address endpoints behind request id, access log and
// rate limiting.
func NewRouter(h *Handler, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /addresses/validate", h.Validate)
	mux.HandleFunc("POST /addresses/format", h.Format)

	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
