package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"address-processor/internal/address"
	"address-processor/internal/logger"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type validateResponse struct {
	Valid   bool           `json:"valid"`
	Reason  address.Reason `json:"reason,omitempty"`
	Message string         `json:"message,omitempty"`
}

type formatResponse struct {
	Formatted string `json:"formatted"`
}

type errorResponse struct {
	Error  string         `json:"error"`
	Reason address.Reason `json:"reason,omitempty"`
}

// Handler serves single-address validation and formatting.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	resp := validateResponse{Valid: true}
	if verr := address.Validate(addr); verr != nil {
		resp = validateResponse{Reason: verr.Reason, Message: verr.Message}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Format(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(
		zap.String("handler", "Address"),
		zap.String("method", "Format"),
	)

	addr, ok := decodeAddress(w, r)
	if !ok {
		return
	}

	line, err := address.PrettyPrintAddress(addr)
	if err != nil {
		var verr *address.ValidationError
		if errors.As(err, &verr) {
			log.Info("address rejected", zap.String("reason", string(verr.Reason)))
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Reason: verr.Reason})
			return
		}
		log.Error("format failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, formatResponse{Formatted: line})
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (*address.Address, bool) {
	var addr *address.Address
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&addr); err != nil {
		logger.FromCtx(r.Context()).Debug("invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}
	return addr, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
