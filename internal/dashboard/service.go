// Package dashboard provides the HTTP API and service layer for eventdesk.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ridaofranco/eventdesk/internal/audit"
	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/calendar"
	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/reminders"
	"github.com/ridaofranco/eventdesk/internal/store"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

// Service provides the dashboard business logic.
type Service struct {
	store      *store.Store
	engine     *automation.Engine
	audit      *audit.Recorder
	log        *zap.Logger
	staleAfter time.Duration
	now        func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ServiceOption {
	return func(s *Service) { s.log = l }
}

// WithStaleAfter sets how long an automated task must sit untouched
// before it shows up as a reminder.
func WithStaleAfter(d time.Duration) ServiceOption {
	return func(s *Service) { s.staleAfter = d }
}

// WithClock overrides the time source used for stats and reminders.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a new dashboard service.
func NewService(st *store.Store, engine *automation.Engine, opts ...ServiceOption) *Service {
	s := &Service{
		store:      st,
		engine:     engine,
		audit:      audit.NewRecorder(st),
		log:        zap.NewNop(),
		staleAfter: reminders.DefaultStaleAfter,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ping checks the database.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) record(action string, inputs any, eventID, taskID, details string) {
	if _, err := s.audit.Record(action, inputs, "success", eventID, taskID, details); err != nil {
		s.log.Warn("audit write failed", zap.String("action", action), zap.Error(err))
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// --- Event Operations ---

// CreateEvent validates and stores a new event.
func (s *Service) CreateEvent(in models.Event) (*models.Event, error) {
	in.Venue = strings.TrimSpace(in.Venue)
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	if in.Venue == "" {
		return nil, invalid("venue is required")
	}
	if in.Date.IsZero() {
		return nil, invalid("date is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, invalid("unknown event status %q", in.Status)
	}
	in.ID = ""

	event, err := s.store.CreateEvent(in)
	if err != nil {
		return nil, err
	}

	s.record("event.create", in, event.ID, "", event.Venue)
	s.log.Info("event created", zap.String("event_id", event.ID), zap.String("venue", event.Venue))
	return event, nil
}

// GetEvent retrieves an event by ID.
func (s *Service) GetEvent(id string) (*models.Event, error) {
	event, err := s.store.GetEvent(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListEvents returns every event ordered by date.
func (s *Service) ListEvents() ([]models.Event, error) {
	return s.store.ListEvents()
}

// UpdateEventStatus changes an event's status.
func (s *Service) UpdateEventStatus(id string, status models.EventStatus) (*models.Event, error) {
	if !status.Valid() {
		return nil, invalid("unknown event status %q", status)
	}
	if err := s.store.UpdateEventStatus(id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.record("event.status", map[string]string{"id": id, "status": string(status)}, id, "", string(status))
	return s.GetEvent(id)
}

// --- Task Operations ---

// CreateTask stores a user-created task. User tasks are never automated
// and are not deduplicated.
func (s *Service) CreateTask(in models.Task) (*models.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, invalid("title is required")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, invalid("unknown task status %q", in.Status)
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return nil, invalid("unknown priority %q", in.Priority)
	}
	in.EventID = strings.TrimSpace(in.EventID)
	if in.EventID == "" {
		return nil, invalid("event_id is required")
	}
	if _, err := s.GetEvent(in.EventID); err != nil {
		return nil, err
	}
	in.ID = ""
	in.Automated = false

	task, err := s.store.CreateTask(in)
	if err != nil {
		return nil, err
	}

	s.record("task.create", map[string]string{"title": task.Title, "event_id": task.EventID}, task.EventID, task.ID, "")
	return task, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(id string) (*models.Task, error) {
	task, err := s.store.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListTasks returns tasks matching the filter.
func (s *Service) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalid("unknown task status %q", filter.Status)
	}
	return s.store.ListTasks(filter)
}

// UpdateTaskStatus changes a task's status.
func (s *Service) UpdateTaskStatus(id string, status models.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, invalid("unknown task status %q", status)
	}
	if err := s.store.UpdateTaskStatus(id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	s.record("task.status", map[string]string{"id": id, "status": string(status)}, task.EventID, id, string(status))
	return task, nil
}

// UpdateTask applies a partial update to a task.
func (s *Service) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, invalid("title must not be empty")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, invalid("unknown task status %q", *patch.Status)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, invalid("unknown priority %q", *patch.Priority)
	}

	task, err := s.store.UpdateTask(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: event already has an automated task with that title", ErrConflict)
		}
		return nil, err
	}

	s.record("task.update", patch, task.EventID, id, "")
	return task, nil
}

// --- Automation ---

// InjectVenueTasks runs the venue injector over all events.
func (s *Service) InjectVenueTasks() (*automation.VenueRun, error) {
	run, err := s.engine.InjectVenueTasks()
	if err != nil {
		s.log.Error("venue injection failed", zap.Error(err))
		return nil, err
	}

	today := s.engine.Today().String()
	s.record("automation.venue", map[string]string{"today": today}, "", "",
		fmt.Sprintf("scanned=%d eligible=%d created=%d", run.Scanned, len(run.Events), len(run.Created)))
	if run.Events == nil {
		run.Events = []automation.EventRun{}
	}
	if run.Created == nil {
		run.Created = []models.Task{}
	}
	return run, nil
}

// StandardRun reports a standard-template injection.
type StandardRun struct {
	EventID string `json:"event_id"`
	Created int    `json:"created"`
}

// InjectStandardTasks instantiates the standard catalog for one event.
func (s *Service) InjectStandardTasks(eventID string) (*StandardRun, error) {
	if _, err := s.GetEvent(eventID); err != nil {
		return nil, err
	}

	created, err := s.engine.InjectStandardTasks(eventID)
	if err != nil {
		s.log.Error("standard injection failed", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}

	s.record("automation.standard", map[string]string{"event_id": eventID}, eventID, "", fmt.Sprintf("created=%d", created))
	return &StandardRun{EventID: eventID, Created: created}, nil
}

// --- Views ---

func (s *Service) scopedTasks(eventID string) ([]models.Task, error) {
	if eventID != "" {
		if _, err := s.GetEvent(eventID); err != nil {
			return nil, err
		}
	}
	return s.store.ListTasks(models.TaskFilter{EventID: eventID})
}

// Stats summarizes task progress, optionally for one event.
func (s *Service) Stats(eventID string) (reminders.Stats, error) {
	tasks, err := s.scopedTasks(eventID)
	if err != nil {
		return reminders.Stats{}, err
	}
	return reminders.Summarize(tasks, s.now()), nil
}

// Reminders lists stale pending automated tasks, optionally for one event.
func (s *Service) Reminders(eventID string) ([]reminders.Reminder, error) {
	tasks, err := s.scopedTasks(eventID)
	if err != nil {
		return nil, err
	}
	out := reminders.Scan(tasks, s.now(), s.staleAfter)
	if out == nil {
		out = []reminders.Reminder{}
	}
	return out, nil
}

// Classify resolves a venue string with the engine's classifier.
func (s *Service) Classify(venueName string) venue.Result {
	return s.engine.Classifier().Classify(venueName)
}

// WriteCalendar writes an iCalendar feed of events and task deadlines to
// w. A non-empty eventID limits the feed to that event.
func (s *Service) WriteCalendar(w io.Writer, eventID string) error {
	var events []models.Event
	if eventID != "" {
		event, err := s.GetEvent(eventID)
		if err != nil {
			return err
		}
		events = []models.Event{*event}
	} else {
		var err error
		if events, err = s.store.ListEvents(); err != nil {
			return err
		}
	}

	tasks, err := s.store.ListTasks(models.TaskFilter{EventID: eventID})
	if err != nil {
		return err
	}
	return calendar.Write(w, events, tasks, s.now())
}

// Audit returns the most recent audit entries.
func (s *Service) Audit(limit int) ([]models.AuditEntry, error) {
	return s.store.ListAudit(limit)
}
