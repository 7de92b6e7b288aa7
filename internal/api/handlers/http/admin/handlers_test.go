package admin_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"

	"innacri/internal/api/handlers/http/admin"
	mock_admin "innacri/internal/api/handlers/http/admin/mocks"
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

func TestAlertsRegenerate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAlertsAdminAPI(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts/regenerate", bytes.NewBufferString(`{"count":50}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Regenerate(gomock.Any(), 50).
		Return(50, nil).
		Times(1)

	h.AlertsRegenerate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]int](t, rr)
	if got["count"] != 50 {
		t.Fatalf("unexpected count: got=%d want=50", got["count"])
	}
}

func TestAlertsRegenerate_EmptyBody_UsesDefault(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAlertsAdminAPI(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts/regenerate", nil)
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Regenerate(gomock.Any(), 0).
		Return(30, nil).
		Times(1)

	h.AlertsRegenerate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]int](t, rr)
	if got["count"] != 30 {
		t.Fatalf("unexpected count: got=%d want=30", got["count"])
	}
}

func TestAlertsRegenerate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAlertsAdminAPI(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts/regenerate", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	h.AlertsRegenerate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAlertsRegenerate_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_admin.NewMockAlertsAdminAPI(ctrl)
	h := admin.NewHandler(newTestLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alerts/regenerate", bytes.NewBufferString(`{"count":10}`))
	rr := httptest.NewRecorder()

	svc.EXPECT().
		Regenerate(gomock.Any(), 10).
		Return(0, errors.New("boom")).
		Times(1)

	h.AlertsRegenerate(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
