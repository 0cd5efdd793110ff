package places

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PlaceManager interface {
	SavePlace(ctx context.Context, orgID uuid.UUID, req domain.SavePlaceRequest) (*domain.Place, *domain.GeofenceSyncResult, error)
	SyncVehiclePermissions(ctx context.Context, orgID uuid.UUID) (int, error)
}

type PlaceReader interface {
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
}

type Handler struct {
	logger  *slog.Logger
	manager PlaceManager
	reader  PlaceReader
}

func NewHandler(logger *slog.Logger, manager PlaceManager, reader PlaceReader) *Handler {
	return &Handler{logger: logger, manager: manager, reader: reader}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// PlaceSave upserts a place and pushes its geofence to the provider. The
// sync outcome rides along in the response; a failed sync is not an error.
func (h *Handler) PlaceSave(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	var req domain.SavePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("place validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	place, sync, err := h.manager.SavePlace(r.Context(), orgID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("place saved",
		slog.String("place_id", place.ID.String()),
		slog.String("kind", string(place.Kind)),
		slog.String("sync_status", sync.Status),
	)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"place":         place,
		"geofence_sync": sync,
	})
}

func (h *Handler) PlaceGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	place, err := h.reader.GetPlace(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, place)
}

// PermissionsSync re-links the organization's devices to every synced
// geofence, typically after adding a vehicle.
func (h *Handler) PermissionsSync(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	linked, err := h.manager.SyncVehiclePermissions(r.Context(), orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"linked": linked})
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
