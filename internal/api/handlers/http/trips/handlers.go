package trips

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
type TripManager interface {
	Create(ctx context.Context, orgID uuid.UUID, req domain.CreateTripRequest) (*domain.Trip, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*domain.Trip, error)
	Dispatch(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	MarkArrival(ctx context.Context, id uuid.UUID, destination string) (*domain.Trip, error)
	Settle(ctx context.Context, id uuid.UUID, req domain.SettleTripRequest) (*domain.Trip, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
}

type Handler struct {
	logger *slog.Logger
	trips  TripManager
}

func NewHandler(logger *slog.Logger, trips TripManager) *Handler {
	return &Handler{logger: logger, trips: trips}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) TripCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	var req domain.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("trip validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	trip, err := h.trips.Create(r.Context(), orgID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("trip created",
		slog.String("trip_id", trip.ID.String()),
		slog.String("vehicle_id", trip.VehicleID.String()),
		slog.Int("destinations", len(trip.Destinations)),
	)
	h.writeJSON(w, http.StatusCreated, trip)
}

func (h *Handler) TripList(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.queryUUID(w, r, "org_id")
	if !ok {
		return
	}

	trips, err := h.trips.List(r.Context(), orgID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"trips": trips})
}

func (h *Handler) TripGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := h.trips.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) TripDispatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := h.trips.Dispatch(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) TripArrive(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ArriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	trip, err := h.trips.MarkArrival(r.Context(), id, req.Destination)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("arrival confirmed",
		slog.String("trip_id", trip.ID.String()),
		slog.String("destination", req.Destination),
		slog.String("status", string(trip.Status)),
	)
	h.writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) TripSettle(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.SettleTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	trip, err := h.trips.Settle(r.Context(), id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) TripCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := h.trips.Cancel(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trip)
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
