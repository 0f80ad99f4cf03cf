package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"controlling_window/internal/models"
	"controlling_window/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: 99}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.WindowEvent{
		{EventID: "e1", OccurredAt: now, Type: service.EventSystem, Description: "Simulator started"},
		{EventID: "e2", OccurredAt: now.Add(1 * time.Second), Type: service.EventDecisionChange, Description: "Window opened"},
	}
	logs := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	// invalid 'from' → 400
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?from=notatime", ""))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// from after to → 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?from=2025-06-11&to=2025-06-10", ""))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %d", w.Code)
	}

	// Valid range and type (lowercase type is normalized before the service call)
	w = httptest.NewRecorder()
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=decision_change"
	r.ServeHTTP(w, authedRequest(http.MethodGet, q, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                  `json:"count"`
		Events []models.WindowEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != service.EventDecisionChange {
		t.Fatalf("expected lastType DECISION_CHANGE, got %q", logs.lastType)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("lastFrom=%v, want %v", logs.lastFrom, now)
	}
}

func TestLogsHandler_DateOnlyToCoversWholeDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs?to=2025-06-10", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	want := time.Date(2025, 6, 10, 23, 59, 59, 999999999, time.UTC)
	if !logs.lastTo.Equal(want) {
		t.Fatalf("lastTo=%v, want %v", logs.lastTo, want)
	}
	if !logs.lastFrom.IsZero() {
		t.Fatalf("lastFrom should be zero, got %v", logs.lastFrom)
	}
}

func TestLogsHandler_ServiceError(t *testing.T) {
	logs := &mockEventLog{err: errors.New("db down")}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, EventLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/logs", ""))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
