package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log/slog"

	"innacri/internal/domain"
	"innacri/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertsAdminAPI interface {
	Regenerate(ctx context.Context, count int) (int, error)
}

type Handler struct {
	logger *slog.Logger
	Alerts AlertsAdminAPI
}

func NewHandler(logger *slog.Logger, alerts AlertsAdminAPI) *Handler {
	return &Handler{logger: logger, Alerts: alerts}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AlertsRegenerate drops the current alert set and reseeds it with fresh
// sample data.
func (h *Handler) AlertsRegenerate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.RegenerateRequest
	if r.Body != nil && r.ContentLength != 0 {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && err != io.EOF {
			l.Warn("invalid JSON", slog.String("error", err.Error()))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
			return
		}
	}

	count, err := h.Alerts.Regenerate(r.Context(), req.Count)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("alerts regenerated", slog.Int("count", count))
	h.writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", slog.String("error", err.Error()))
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	case errors.Is(err, e.ErrStorageUnavailable):
		l.Error("storage unavailable", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage unavailable"})
	default:
		l.Error("internal error", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
