package ingest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/ingest"
	mock_ingest "github.com/caffeine-dev-rafly/cookie-tms/internal/api/handlers/http/ingest/mocks"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/domain"
	"github.com/caffeine-dev-rafly/cookie-tms/internal/service"
	"github.com/caffeine-dev-rafly/cookie-tms/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestTraccarWebhook_PositionAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mock_ingest.NewMockTracker(ctrl)
	h := ingest.NewHandler(newTestLogger(), tracker)

	body := `{"device":{"uniqueId":"dev-1"},"position":{"latitude":-6.2,"longitude":106.8,"speed":10}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/traccar/webhook", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	tracker.EXPECT().
		ProcessSample(gomock.Any(), "dev-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sample domain.PositionSample, _ json.RawMessage) error {
			if sample.Lat == nil || *sample.Lat != -6.2 {
				t.Errorf("sample lat = %v", sample.Lat)
			}
			return nil
		})

	h.TraccarWebhook(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	resp := decodeJSON[map[string]string](t, rr)
	if resp["status"] != "accepted" {
		t.Fatalf("status field = %q", resp["status"])
	}
}

func TestTraccarWebhook_StatusEventRouted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mock_ingest.NewMockTracker(ctrl)
	h := ingest.NewHandler(newTestLogger(), tracker)

	body := `{"device":{"uniqueId":"dev-1"},"event":{"id":5,"type":"deviceOffline"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/traccar/webhook", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	tracker.EXPECT().
		ProcessStatusEvent(gomock.Any(), "dev-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ev service.StatusEvent, _ json.RawMessage) error {
			if ev.Type != service.EventDeviceOffline {
				t.Errorf("event type = %s", ev.Type)
			}
			return nil
		})

	h.TraccarWebhook(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
}

func TestTraccarWebhook_UnknownDeviceIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mock_ingest.NewMockTracker(ctrl)
	h := ingest.NewHandler(newTestLogger(), tracker)

	body := `{"uniqueId":"stray-device","latitude":1,"longitude":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/traccar/webhook", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	tracker.EXPECT().
		ProcessSample(gomock.Any(), "stray-device", gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("lookup: %w", e.ErrUnknownDevice))

	h.TraccarWebhook(rr, req)

	// acknowledged so the forwarder stops retrying
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	resp := decodeJSON[map[string]string](t, rr)
	if resp["status"] != "ignored" {
		t.Fatalf("status field = %q, want ignored", resp["status"])
	}
}

func TestTraccarWebhook_InvalidPayloadRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mock_ingest.NewMockTracker(ctrl)
	h := ingest.NewHandler(newTestLogger(), tracker)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/integrations/traccar/webhook", bytes.NewBufferString(`{"latitude":1}`))
	rr := httptest.NewRecorder()

	h.TraccarWebhook(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
