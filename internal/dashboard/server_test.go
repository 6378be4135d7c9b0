package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/catalog"
	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/store"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

func fixedNow() time.Time {
	return time.Date(2025, time.August, 15, 12, 0, 0, 0, dates.Zone())
}

func TestHealthEndpoint_OK(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !health.OK {
		t.Error("Expected health.OK to be true")
	}
	if health.DB != "ok" {
		t.Errorf("Expected DB status 'ok', got '%s'", health.DB)
	}
	if health.Version == "" || health.Time == "" {
		t.Error("Expected version and time to be set")
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHealthEndpoint_DBError(t *testing.T) {
	s, st := newTestServer(t)
	st.Close()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
	var health HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if health.OK || health.DB == "ok" {
		t.Error("Expected health to report the database failure")
	}
}

func TestEventEndpoints(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	var event models.Event
	w := do(t, h, http.MethodPost, "/events", `{"name":"Fiesta","venue":"Normandina","date":"2025-09-01"}`, &event)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if event.ID == "" || event.Status != models.EventStatusPlanning {
		t.Errorf("Unexpected event: %+v", event)
	}

	var events []models.Event
	do(t, h, http.MethodGet, "/events", "", &events)
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}

	var got models.Event
	if w := do(t, h, http.MethodGet, "/events/"+event.ID, "", &got); w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got.Date.String() != "2025-09-01" {
		t.Errorf("Expected date 2025-09-01, got %s", got.Date)
	}

	var updated models.Event
	do(t, h, http.MethodPost, "/events/"+event.ID+"/status", `{"status":"confirmed"}`, &updated)
	if updated.Status != models.EventStatusConfirmed {
		t.Errorf("Expected confirmed, got %s", updated.Status)
	}

	if w := do(t, h, http.MethodGet, "/events/missing", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for missing event, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/events/"+event.ID+"/status", `{"status":"postponed"}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad status, got %d", w.Code)
	}
}

func TestCreateEventValidation(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing venue", `{"date":"2025-09-01"}`, http.StatusBadRequest},
		{"missing date", `{"venue":"Niceto"}`, http.StatusBadRequest},
		{"bad date", `{"venue":"Niceto","date":"01/09/2025"}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if w := do(t, h, http.MethodPost, "/events", tt.body, nil); w.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, w.Code)
		}
	}
}

func TestTaskEndpoints(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")

	var task models.Task
	body := `{"title":"Llamar al técnico","event_id":"` + event.ID + `","due_date":"2025-08-20","automated":true}`
	if w := do(t, h, http.MethodPost, "/tasks", body, &task); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if task.Automated {
		t.Error("User-created tasks must not be automated")
	}

	var tasks []models.Task
	do(t, h, http.MethodGet, "/tasks?event="+event.ID+"&status=pending", "", &tasks)
	if len(tasks) != 1 {
		t.Errorf("Expected 1 pending task, got %d", len(tasks))
	}
	do(t, h, http.MethodGet, "/events/"+event.ID+"/tasks", "", &tasks)
	if len(tasks) != 1 {
		t.Errorf("Expected 1 event task, got %d", len(tasks))
	}

	var patched models.Task
	do(t, h, http.MethodPatch, "/tasks/"+task.ID, `{"priority":"urgent","assignee":"Sofía"}`, &patched)
	if patched.Priority != models.PriorityUrgent || patched.Assignee != "Sofía" {
		t.Errorf("Patch not applied: %+v", patched)
	}

	var done models.Task
	do(t, h, http.MethodPost, "/tasks/"+task.ID+"/status", `{"status":"completed"}`, &done)
	if done.Status != models.TaskStatusCompleted {
		t.Errorf("Expected completed, got %s", done.Status)
	}

	if w := do(t, h, http.MethodGet, "/tasks/missing", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/tasks", `{"title":"x","event_id":"missing"}`, nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown event, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/tasks", `{"title":"  "}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty title, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/tasks", `{"title":"Sin evento"}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing event_id, got %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/tasks", `{"title":"Sin evento","event_id":"  "}`, nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for blank event_id, got %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, "/tasks?status=blocked", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown status filter, got %d", w.Code)
	}
}

func TestStandardTasksEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")

	var run StandardRun
	if w := do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", &run); w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if run.Created != len(catalog.Standard()) {
		t.Errorf("Expected %d created, got %d", len(catalog.Standard()), run.Created)
	}

	do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", &run)
	if run.Created != 0 {
		t.Errorf("Expected second injection to create nothing, got %d", run.Created)
	}

	if w := do(t, h, http.MethodPost, "/events/missing/standard-tasks", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRenameAutomatedTaskConflict(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")
	do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", nil)

	var tasks []models.Task
	do(t, h, http.MethodGet, "/events/"+event.ID+"/tasks", "", &tasks)
	if len(tasks) < 2 {
		t.Fatalf("Expected standard tasks, got %d", len(tasks))
	}

	body, _ := json.Marshal(map[string]string{"title": tasks[1].Title})
	w := do(t, h, http.MethodPatch, "/tasks/"+tasks[0].ID, string(body), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409, got %d: %s", w.Code, w.Body.String())
	}

	var got models.Task
	do(t, h, http.MethodGet, "/tasks/"+tasks[0].ID, "", &got)
	if got.Title != tasks[0].Title {
		t.Errorf("Title changed despite conflict: %q", got.Title)
	}

	// A unique new title still goes through.
	var renamed models.Task
	if w := do(t, h, http.MethodPatch, "/tasks/"+tasks[0].ID, `{"title":"Nuevo título"}`, &renamed); w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if renamed.Title != "Nuevo título" {
		t.Errorf("Expected renamed title, got %q", renamed.Title)
	}
}

func TestVenueTasksEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")
	do(t, h, http.MethodPost, "/events/"+event.ID+"/status", `{"status":"confirmed"}`, nil)

	var run automation.VenueRun
	if w := do(t, h, http.MethodPost, "/automation/venue-tasks", "", &run); w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if len(run.Created) != len(catalog.VenueTriggeredFor(venue.Domestic)) {
		t.Errorf("Expected %d tasks, got %d", len(catalog.VenueTriggeredFor(venue.Domestic)), len(run.Created))
	}

	if w := do(t, h, http.MethodGet, "/automation/venue-tasks", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")
	do(t, h, http.MethodPost, "/tasks", `{"title":"Vencida","event_id":"`+event.ID+`","due_date":"2025-08-10"}`, nil)
	do(t, h, http.MethodPost, "/tasks", `{"title":"A tiempo","event_id":"`+event.ID+`","due_date":"2025-08-20","priority":"high"}`, nil)

	var stats struct {
		Total           int     `json:"total"`
		Overdue         int     `json:"overdue"`
		CriticalPending int     `json:"critical_pending"`
		Compliance      float64 `json:"sla_compliance"`
	}
	do(t, h, http.MethodGet, "/stats?event="+event.ID, "", &stats)
	if stats.Total != 2 || stats.Overdue != 1 || stats.CriticalPending != 1 || stats.Compliance != 50 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if w := do(t, h, http.MethodGet, "/stats?event=missing", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRemindersEndpoint(t *testing.T) {
	st := newTestStore(t)
	engine := automation.New(st, automation.DefaultOptions())
	later := func() time.Time { return time.Now().Add(72 * time.Hour) }
	h := NewServer(NewService(st, engine, WithClock(later)), "127.0.0.1:0", nil).Handler()

	event := createEvent(t, h, "Normandina", dates.Today(time.Now()).AddDays(30).String())
	do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", nil)
	do(t, h, http.MethodPost, "/tasks", `{"title":"Manual","event_id":"`+event.ID+`","due_date":"2025-08-10"}`, nil)

	var list []struct {
		TaskID       string `json:"task_id"`
		DaysUntilDue int    `json:"days_until_due"`
		Urgency      string `json:"urgency"`
	}
	do(t, h, http.MethodGet, "/reminders?event="+event.ID, "", &list)
	if len(list) != len(catalog.Standard()) {
		t.Fatalf("Expected %d reminders (automated only), got %d", len(catalog.Standard()), len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].DaysUntilDue < list[i-1].DaysUntilDue {
			t.Fatalf("Reminders not sorted by days until due")
		}
	}
}

func TestClassifyEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	var res venue.Result
	do(t, h, http.MethodGet, "/classify?venue=Club+Montevideo+Central", "", &res)
	if res.Class != venue.International || res.Country != "Uruguay" {
		t.Errorf("Unexpected classification: %+v", res)
	}

	if w := do(t, h, http.MethodGet, "/classify", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCalendarEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")
	do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", nil)

	w := do(t, h, http.MethodGet, "/calendar.ics?event="+event.ID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Unexpected content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || strings.Count(body, "BEGIN:VTODO") != len(catalog.Standard()) {
		t.Errorf("Unexpected calendar body:\n%s", body)
	}

	if w := do(t, h, http.MethodGet, "/calendar.ics?event=missing", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestAuditEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	event := createEvent(t, h, "Normandina", "2025-09-01")
	do(t, h, http.MethodPost, "/events/"+event.ID+"/standard-tasks", "", nil)

	var entries []models.AuditEntry
	do(t, h, http.MethodGet, "/audit?limit=10", "", &entries)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 audit entries, got %d", len(entries))
	}
	actions := map[string]bool{}
	for _, e := range entries {
		actions[e.Action] = true
		if e.EventID != event.ID {
			t.Errorf("Expected event id %s, got %s", event.ID, e.EventID)
		}
	}
	if !actions["event.create"] || !actions["automation.standard"] {
		t.Errorf("Unexpected actions: %v", actions)
	}
}

func do(t *testing.T, h http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, r))
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("Failed to decode %s %s: %v", method, path, err)
		}
	}
	return w
}

func createEvent(t *testing.T, h http.Handler, venueName, date string) models.Event {
	t.Helper()
	var event models.Event
	w := do(t, h, http.MethodPost, "/events", `{"venue":"`+venueName+`","date":"`+date+`"}`, &event)
	if w.Code != http.StatusCreated {
		t.Fatalf("CreateEvent failed: %d %s", w.Code, w.Body.String())
	}
	return event
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func newTestServer(t *testing.T) (*Server, *store.Store) {
	st := newTestStore(t)
	engine := automation.New(st, automation.DefaultOptions(), automation.WithClock(fixedNow))
	service := NewService(st, engine, WithClock(fixedNow))
	return NewServer(service, "127.0.0.1:0", nil), st
}

func TestShutdownBeforeStart(t *testing.T) {
	s, _ := newTestServer(t)
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if err := s.Start(); !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("Expected ErrServerClosed, got %v", err)
	}
}
