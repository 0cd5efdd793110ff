package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

const maxWebhookBody = 1 << 20

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Tracker interface {
	ProcessSample(ctx context.Context, deviceID string, sample domain.PositionSample, raw json.RawMessage) error
	ProcessStatusEvent(ctx context.Context, deviceID string, ev service.StatusEvent, raw json.RawMessage) error
}

type Handler struct {
	logger  *slog.Logger
	tracker Tracker
	now     func() time.Time
}

func NewHandler(logger *slog.Logger, tracker Tracker) *Handler {
	return &Handler{
		logger:  logger,
		tracker: tracker,
		now:     time.Now,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// TraccarWebhook ingests one provider forwarder payload. Unknown devices are
// acknowledged and dropped so the provider does not retry them forever.
func (h *Handler) TraccarWebhook(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		l.Warn("webhook body read failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	msg, err := service.NormalizeWebhook(body, h.now().UTC())
	if err != nil {
		l.Warn("webhook payload rejected", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	switch {
	case msg.Event != nil:
		err = h.tracker.ProcessStatusEvent(r.Context(), msg.DeviceID, *msg.Event, msg.Raw)
	case msg.Sample != nil:
		err = h.tracker.ProcessSample(r.Context(), msg.DeviceID, *msg.Sample, msg.Raw)
	}
	if err != nil {
		if errors.Is(err, e.ErrUnknownDevice) {
			l.Debug("webhook for unknown device ignored", slog.String("device_id", msg.DeviceID))
			h.writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}
