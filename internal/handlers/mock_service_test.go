package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"controlling_window/internal/models"
	"controlling_window/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDecision struct {
	eval      service.Evaluation
	reading   models.Reading
	ingestErr error
	codes     []int

	lastParams   service.ReadingParams
	evalCalls    int
	ingestCalls  int
	lastClassify int
}

func (m *mockDecision) Evaluate(p service.ReadingParams) service.Evaluation {
	m.evalCalls++
	m.lastParams = p
	return m.eval
}
func (m *mockDecision) Ingest(ctx context.Context, p service.ReadingParams) (models.Reading, error) {
	m.ingestCalls++
	m.lastParams = p
	return m.reading, m.ingestErr
}
func (m *mockDecision) Classify(code int) service.ConditionInfo {
	m.lastClassify = code
	fav := false
	for _, c := range m.codes {
		if c == code {
			fav = true
		}
	}
	return service.ConditionInfo{Code: code, Name: "mock", Favorable: fav}
}
func (m *mockDecision) FavorableCodes() []int { return m.codes }

type mockMonitoring struct {
	latest   models.Reading
	history  []models.Reading
	err      error
	lastFrom time.Time
	lastTo   time.Time
}

func (m *mockMonitoring) Latest(ctx context.Context) (models.Reading, error) {
	return m.latest, m.err
}
func (m *mockMonitoring) History(ctx context.Context, from, to time.Time) ([]models.Reading, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.history, m.err
}

type mockEventLog struct {
	resp     []models.WindowEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.WindowEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockReport struct {
	rep      models.DailyReport
	err      error
	lastDate string
}

func (m *mockReport) Daily(ctx context.Context, date string) (models.DailyReport, error) {
	m.lastDate = date
	return m.rep, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// authedRequest builds a request carrying a bearer token accepted by mockAuth.
func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
