package fleet

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type FleetReader interface {
	ListStatuses(ctx context.Context, orgID uuid.UUID) ([]domain.VehicleStatusView, error)
	VehicleStatus(ctx context.Context, id uuid.UUID) (*domain.VehicleStatusView, error)
	History(ctx context.Context, vehicleID uuid.UUID, day time.Time) ([]domain.VehiclePosition, error)
	OpenAlerts(ctx context.Context, orgID uuid.UUID) ([]domain.OpenEpisode, error)
}

type NotificationReader interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

type Handler struct {
	logger        *slog.Logger
	fleet         FleetReader
	notifications NotificationReader
}

func NewHandler(logger *slog.Logger, fleet FleetReader, notifications NotificationReader) *Handler {
	return &Handler{
		logger:        logger,
		fleet:         fleet,
		notifications: notifications,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// VehicleStatuses lists the live view of every vehicle of the organization.
func (h *Handler) VehicleStatuses(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	views, err := h.fleet.ListStatuses(r.Context(), orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": views})
}

// VehicleStatus serves one vehicle's live view.
func (h *Handler) VehicleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.fleet.VehicleStatus(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// VehicleHistory serves the position trail for one UTC calendar day. The
// date arrives as ?date=2026-08-30 and defaults to today.
func (h *Handler) VehicleHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	positions, err := h.fleet.History(r.Context(), id, day)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":      day.Format("2006-01-02"),
		"positions": positions,
	})
}

// OpenAlerts serves the live feed of ongoing stop/offline episodes.
func (h *Handler) OpenAlerts(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	episodes, err := h.fleet.OpenAlerts(r.Context(), orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"alerts": episodes})
}

// Notifications serves a user's notification inbox.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.queryUUID(w, r, "user_id")
	if !ok {
		return
	}

	items, err := h.notifications.ListForUser(r.Context(), userID, parseInt(r.URL.Query().Get("limit"), 50))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"notifications": items})
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) queryUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": name + " required"})
		return uuid.Nil, false
	}
	return id, true
}
