// Package automation derives production tasks from event data.
//
// Two injectors share one rule: an automated task is identified by its event
// and title, and an existing one is never duplicated, updated or removed.
// The venue injector runs over every eligible event and dates tasks from the
// day it runs; the standard injector runs for one event on request and dates
// tasks backwards from the event date.
package automation

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ridaofranco/eventdesk/internal/catalog"
	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/deadline"
	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

// Repository is the state container the engine reads events from and
// appends tasks to. InsertAutomatedTask must check for an existing
// (event, title, automated) task and insert atomically.
type Repository interface {
	ListEvents() ([]models.Event, error)
	GetEvent(id string) (*models.Event, error)
	InsertAutomatedTask(t *models.Task) (bool, error)
}

// DefaultLookaheadDays bounds how far ahead the venue injector looks.
const DefaultLookaheadDays = 60

// DefaultProgramStart is the first event date the venue injector considers.
var DefaultProgramStart = dates.New(2025, time.August, 1)

// Options tunes the venue injector.
type Options struct {
	// ProgramStart excludes events dated before it.
	ProgramStart dates.Date
	// LookaheadDays is the upper bound of the (0, N] days-until-event window.
	LookaheadDays int
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{
		ProgramStart:  DefaultProgramStart,
		LookaheadDays: DefaultLookaheadDays,
	}
}

// Engine generates automated tasks.
type Engine struct {
	repo       Repository
	classifier *venue.Classifier
	opts       Options
	now        func() time.Time
	log        *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClassifier replaces the default venue classifier.
func WithClassifier(c *venue.Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// New creates an engine over repo.
func New(repo Repository, opts Options, options ...Option) *Engine {
	if opts.LookaheadDays <= 0 {
		opts.LookaheadDays = DefaultLookaheadDays
	}
	e := &Engine{
		repo:       repo,
		classifier: venue.Default(),
		opts:       opts,
		now:        time.Now,
		log:        zap.NewNop(),
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Classifier returns the venue classifier in use.
func (e *Engine) Classifier() *venue.Classifier {
	return e.classifier
}

// Today returns the current civil date.
func (e *Engine) Today() dates.Date {
	return dates.Today(e.now())
}

// EventRun summarizes what the venue injector did for one event.
type EventRun struct {
	EventID   string      `json:"event_id"`
	Venue     string      `json:"venue"`
	Class     venue.Class `json:"class"`
	Country   string      `json:"country,omitempty"`
	DaysUntil int         `json:"days_until"`
	Created   int         `json:"created"`
}

// VenueRun is the result of one venue injector pass.
type VenueRun struct {
	Scanned int           `json:"scanned"`
	Events  []EventRun    `json:"events"`
	Created []models.Task `json:"created"`
}

// Eligibility explains whether an event gets venue-triggered tasks.
type Eligibility struct {
	Result    venue.Result
	DaysUntil int
	Eligible  bool
}

// CheckEligibility applies the venue injector's filters to one event.
func (e *Engine) CheckEligibility(ev models.Event, today dates.Date) Eligibility {
	el := Eligibility{
		Result:    e.classifier.ClassifyEvent(ev),
		DaysUntil: today.DaysUntil(ev.Date),
	}
	el.Eligible = ev.Status == models.EventStatusConfirmed &&
		el.Result.NeedsAutomation() &&
		!ev.Date.Before(e.opts.ProgramStart) &&
		el.DaysUntil > 0 && el.DaysUntil <= e.opts.LookaheadDays
	return el
}

// InjectVenueTasks creates the missing venue-triggered tasks for every
// eligible event. Due dates are relative to today, not to the event.
func (e *Engine) InjectVenueTasks() (*VenueRun, error) {
	events, err := e.repo.ListEvents()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	today := e.Today()
	run := &VenueRun{Scanned: len(events)}

	for _, ev := range events {
		el := e.CheckEligibility(ev, today)
		if !el.Eligible {
			continue
		}

		er := EventRun{
			EventID:   ev.ID,
			Venue:     ev.Venue,
			Class:     el.Result.Class,
			Country:   el.Result.Country,
			DaysUntil: el.DaysUntil,
		}

		for _, tpl := range catalog.VenueTriggeredFor(el.Result.Class) {
			task := &models.Task{
				Title:       tpl.Title,
				Description: venueDescription(tpl, ev, el),
				Status:      models.TaskStatusPending,
				Priority:    tpl.Priority,
				DueDate:     today.AddDays(tpl.LeadDays),
				EventID:     ev.ID,
				Category:    tpl.Category,
			}
			inserted, err := e.repo.InsertAutomatedTask(task)
			if err != nil {
				return run, fmt.Errorf("insert %q for event %s: %w", tpl.Title, ev.ID, err)
			}
			if !inserted {
				continue
			}
			er.Created++
			run.Created = append(run.Created, *task)
		}

		e.log.Debug("venue tasks evaluated",
			zap.String("event_id", ev.ID),
			zap.String("class", string(er.Class)),
			zap.Int("days_until", er.DaysUntil),
			zap.Int("created", er.Created))
		run.Events = append(run.Events, er)
	}

	e.log.Info("venue task injection finished",
		zap.Int("scanned", run.Scanned),
		zap.Int("eligible", len(run.Events)),
		zap.Int("created", len(run.Created)))
	return run, nil
}

// InjectStandardTasks instantiates every standard template for one event
// and returns how many tasks were created. An unknown event creates nothing.
func (e *Engine) InjectStandardTasks(eventID string) (int, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return 0, fmt.Errorf("get event: %w", err)
	}
	if ev == nil {
		e.log.Debug("standard injection skipped, unknown event", zap.String("event_id", eventID))
		return 0, nil
	}

	created := 0
	for _, tpl := range catalog.Standard() {
		task := &models.Task{
			Title:       tpl.Title,
			Description: tpl.Description(),
			Status:      models.TaskStatusPending,
			Priority:    tpl.Priority,
			Assignee:    tpl.Assignee,
			DueDate:     deadline.Due(ev.Date, tpl.Criticality),
			EventID:     ev.ID,
			Category:    string(tpl.Department),
			Questions:   tpl.Questions,
		}
		inserted, err := e.repo.InsertAutomatedTask(task)
		if err != nil {
			return created, fmt.Errorf("insert %q for event %s: %w", tpl.Title, ev.ID, err)
		}
		if inserted {
			created++
		}
	}

	e.log.Info("standard task injection finished",
		zap.String("event_id", ev.ID),
		zap.Int("created", created))
	return created, nil
}

func venueDescription(tpl catalog.VenueTemplate, ev models.Event, el Eligibility) string {
	return fmt.Sprintf("%s\n\nVenue: %s\nPaís: %s\nFecha del evento: %s\nDías restantes: %d",
		tpl.Description, ev.Venue, el.Result.Country, ev.Date, el.DaysUntil)
}
