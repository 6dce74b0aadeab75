package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"planora/internal/config"
	"planora/internal/session"
	"planora/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	repos  *Repositories
	users  *testutil.FakeUserRepo
}

func newTestEnv() *testEnv {
	cfg := config.New()
	cfg.BcryptCost = bcrypt.MinCost

	users := testutil.NewFakeUserRepo()
	repos := &Repositories{
		Users:       users,
		Expenses:    testutil.NewFakeExpenseRepo(),
		Projects:    testutil.NewFakeProjectRepo(),
		Memberships: testutil.NewFakeMembershipRepo(),
		Contacts:    testutil.NewFakeContactRepo(),
	}
	sessions := session.NewMemoryStore(time.Hour)
	services := InitServices(cfg, repos, sessions)
	handlers := InitHandlers(cfg, services)
	router := setupRouter(cfg, zerolog.Nop(), handlers, services, sessions)

	return &testEnv{router: router, repos: repos, users: users}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signupAndLogin registers a user and returns a live session token.
func (e *testEnv) signupAndLogin(t *testing.T, username, email string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/signup", "", gin.H{
		"username": username, "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.do(http.MethodPost, "/login", "", gin.H{"email": email, "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv()
	env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, config.DefaultSessionCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv()
	env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
}

func TestExpenseLifecycle(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/expenses", token, gin.H{
		"amount": 12.5, "category": "food", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, 12.5, created["amount"])
	expenseID, _ := created["id"].(string)
	require.NotEmpty(t, expenseID)

	w = env.do(http.MethodGet, "/get-expenses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode(t, w)
	expenses, _ := listed["expenses"].([]any)
	require.Len(t, expenses, 1)

	w = env.do(http.MethodPut, "/expenses/"+expenseID, token, gin.H{
		"amount": 99.0, "category": "travel", "date": "2024-01-02",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, "/expenses/"+expenseID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/get-expenses", token, nil)
	expenses, _ = decode(t, w)["expenses"].([]any)
	assert.Empty(t, expenses)
}

func TestExpensesAreScopedToTheirOwner(t *testing.T) {
	env := newTestEnv()
	owner := env.signupAndLogin(t, "a", "a@x.com")
	other := env.signupAndLogin(t, "b", "b@x.com")

	w := env.do(http.MethodPost, "/expenses", owner, gin.H{
		"amount": 10.0, "category": "food", "date": "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	expenseID, _ := decode(t, w)["id"].(string)

	// the other account cannot see, update, or delete it
	w = env.do(http.MethodGet, "/get-expenses", other, nil)
	expenses, _ := decode(t, w)["expenses"].([]any)
	assert.Empty(t, expenses)

	w = env.do(http.MethodPut, "/expenses/"+expenseID, other, gin.H{
		"amount": 1.0, "category": "x", "date": "2024-01-02",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/expenses/"+expenseID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventPlanningAndNotes(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/event-planning", token, gin.H{
		"eventName": "Gala", "date": "2024-05-01", "location": "Hall", "attendees": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, projectID)

	w = env.do(http.MethodGet, "/get-events", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	events, _ := decode(t, w)["events"].([]any)
	require.Len(t, events, 1)
	first, _ := events[0].(map[string]any)
	assert.Equal(t, "Gala", first["eventName"])
	assert.Equal(t, projectID, first["projectId"])

	w = env.do(http.MethodPost, "/notes", token, gin.H{
		"projectId": projectID,
		"notes":     "book DJ", "category": "logistics", "dateTime": "2024-04-01T10:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/notes/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	notes, _ := decode(t, w)["notes"].([]any)
	require.Len(t, notes, 1)
	note, _ := notes[0].(map[string]any)
	// the note carries the event name captured at append time
	assert.Equal(t, "Gala", note["eventName"])
	assert.Equal(t, "Normal", note["importance"])
}

func TestFinancialModelRoundTrip(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/event-planning", token, gin.H{
		"eventName": "Gala", "date": "2024-05-01", "location": "Hall", "attendees": 50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	projectID, _ := decode(t, w)["id"].(string)

	w = env.do(http.MethodPost, "/financial-model", token, gin.H{
		"projectId":    projectID,
		"budget":       gin.H{"venue": 100, "catering": 50},
		"income":       gin.H{"ticketSales": 300},
		"profitMargin": 0.4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/preview-event/"+projectID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	project, _ := decode(t, w)["project"].(map[string]any)
	fm, _ := project["financialModeling"].(map[string]any)
	require.NotNil(t, fm)
	assert.Equal(t, 0.4, fm["profitMargin"])
}

func TestFinancialModelUnknownProject(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/financial-model", token, gin.H{
		"projectId":    "64a000000000000000000000",
		"budget":       gin.H{},
		"income":       gin.H{},
		"profitMargin": 0.1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuardedRoutesRejectAnonymous(t *testing.T) {
	env := newTestEnv()

	for _, probe := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/me"},
		{http.MethodGet, "/budget"},
		{http.MethodPut, "/budget"},
		{http.MethodPost, "/expenses"},
		{http.MethodGet, "/get-expenses"},
		{http.MethodPost, "/event-planning"},
		{http.MethodGet, "/get-events"},
		{http.MethodPost, "/financial-model"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/64a000000000000000000000"},
		{http.MethodGet, "/preview-event/64a000000000000000000000"},
		{http.MethodPost, "/logout"},
	} {
		w := env.do(probe.method, probe.path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", probe.method, probe.path)
	}

	// rejected requests mutate nothing
	for _, u := range env.users.Users {
		assert.Empty(t, u.Expenses)
	}
}

func TestBudgetRoundTrip(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodGet, "/budget", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPut, "/budget", token, gin.H{"budget": 1500.0})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/budget", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1500.0, decode(t, w)["budget"])

	w = env.do(http.MethodPut, "/budget", token, gin.H{"budget": -1.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutEndsTheSession(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodPost, "/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMembershipGate(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	w := env.do(http.MethodGet, "/membership/status", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/membership", token, gin.H{
		"name": "A", "email": "a@x.com", "phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/membership/status", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["member"])
}

func TestAnonymousMembershipGrantsNothing(t *testing.T) {
	env := newTestEnv()
	token := env.signupAndLogin(t, "a", "a@x.com")

	// submitted without a session: stored, but not linked to anyone
	w := env.do(http.MethodPost, "/membership", "", gin.H{
		"name": "A", "email": "a@x.com", "phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/membership/status", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContactIntake(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/contactus", "", gin.H{
		"name": "A", "email": "a@x.com", "query": "opening hours?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPost, "/contactus", "", gin.H{"name": "A", "email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVersionAndMetricsEndpoints(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/version", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
