package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"controlling_window/internal/models"
	"controlling_window/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() models.DailyReport {
	mc := models.ConditionCount{Code: 1003, Name: "Partly cloudy", Count: 2}
	return models.DailyReport{
		Date:                "2025-06-10",
		UTCOffsetHours:      4,
		TotalReadings:       3,
		OpenReadings:        1,
		OpenPercentage:      33.3,
		Inside:              models.TempStats{Avg: 22.5, Min: 21, Max: 24},
		Outside:             models.TempStats{Avg: 14, Min: 12, Max: 16},
		Conditions:          []models.ConditionCount{{Code: 1000, Name: "Sunny", Count: 1}, mc},
		MostCommonCondition: &mc,
	}
}

func TestDailyReport_JSON(t *testing.T) {
	rep := &mockReport{rep: sampleReport()}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Report: rep})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/reports/daily?date=2025-06-10", ""))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2025-06-10", rep.lastDate)
	assert.Contains(t, w.Body.String(), `"open_percentage":33.3`)
}

func TestDailyReport_Text(t *testing.T) {
	rep := &mockReport{rep: sampleReport()}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Report: rep})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/reports/daily?format=TXT", ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "Temperature report for 2025-06-10 (UTC+4)")
	assert.Contains(t, w.Body.String(), "Most common: 1003 (Partly cloudy)")
	assert.Empty(t, rep.lastDate)
}

func TestDailyReport_Errors(t *testing.T) {
	cases := []struct {
		name  string
		query string
		err   error
		code  int
	}{
		{"bad format", "?format=xml", nil, http.StatusBadRequest},
		{"bad date", "?date=10.06.2025", service.ErrInvalidDate, http.StatusBadRequest},
		{"no readings", "?date=2025-06-10", service.ErrNoReadings, http.StatusNotFound},
		{"storage failure", "", errors.New("db locked"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep := &mockReport{err: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Report: rep})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/reports/daily"+tc.query, ""))
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}
}
