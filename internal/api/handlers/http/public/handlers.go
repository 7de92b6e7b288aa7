package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"innacri/internal/domain"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AlertsAPI interface {
	MapView(ctx context.Context, req domain.MapViewRequest) (domain.MapView, error)
	Submit(ctx context.Context, draft domain.ReportDraft) (uuid.UUID, error)
	Catalogs() domain.CatalogsResponse
}

type ProximityAPI interface {
	UpdateLocation(ctx context.Context, req domain.LocationUpdateRequest) error
	SetNotifications(enabled bool)
	Notifications() []domain.ProximityNotification
	Dismiss(id uuid.UUID) error
	Demo(ctx context.Context) domain.ProximityNotification
	ToggleSimulation() bool
}

type StatsAPI interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
}

type TutorialAPI interface {
	Seen(ctx context.Context) (bool, error)
	Complete(ctx context.Context) error
}

type Handler struct {
	logger    *slog.Logger
	Alerts    AlertsAPI
	Proximity ProximityAPI
	Stats     StatsAPI
	Tutorial  TutorialAPI
}

func NewHandler(logger *slog.Logger, alerts AlertsAPI, proximity ProximityAPI, stats StatsAPI, tutorial TutorialAPI) *Handler {
	return &Handler{
		logger:    logger,
		Alerts:    alerts,
		Proximity: proximity,
		Stats:     stats,
		Tutorial:  tutorial,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AlertsMapView(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertsMapView", slog.String("query", r.URL.RawQuery))

	req := domain.MapViewRequest{
		Types:      parseStringList(r.URL.Query().Get("types")),
		Severities: parseIntList(r.URL.Query().Get("severities")),
	}

	view, err := h.Alerts.MapView(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AlertSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var draft domain.ReportDraft

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&draft); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.Alerts.Submit(r.Context(), draft)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report accepted", slog.String("id", id.String()), slog.String("type", draft.Type))
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"id":     id.String(),
		"status": string(domain.AlertPending),
	})
}

func (h *Handler) AlertCatalogs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.Alerts.Catalogs())
}

func (h *Handler) AlertStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) LocationUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Proximity.UpdateLocation(r.Context(), req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotificationSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	h.Proximity.SetNotifications(req.Enabled)
	h.writeJSON(w, http.StatusOK, map[string]bool{"enabled": req.Enabled})
}

func (h *Handler) NotificationList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"notifications": h.Proximity.Notifications(),
	})
}

func (h *Handler) NotificationDismiss(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Proximity.Dismiss(id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotificationDemo(w http.ResponseWriter, r *http.Request) {
	n := h.Proximity.Demo(r.Context())
	h.writeJSON(w, http.StatusCreated, n)
}

func (h *Handler) NotificationSimulation(w http.ResponseWriter, r *http.Request) {
	active := h.Proximity.ToggleSimulation()
	h.log(r).Info("notification simulation toggled", slog.Bool("active", active))
	h.writeJSON(w, http.StatusOK, map[string]bool{"active": active})
}

func (h *Handler) TutorialState(w http.ResponseWriter, r *http.Request) {
	seen, err := h.Tutorial.Seen(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"seen": seen})
}

func (h *Handler) TutorialComplete(w http.ResponseWriter, r *http.Request) {
	if err := h.Tutorial.Complete(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SafeRoute is a declared stub: route planning around risk zones is not
// implemented.
func (h *Handler) SafeRoute(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "en desarrollo",
		"message": "Pronto podrás planificar rutas seguras evitando zonas de riesgo",
	})
}
