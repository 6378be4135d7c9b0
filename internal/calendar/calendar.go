// Package calendar exports events and task deadlines as iCalendar data so
// the production schedule can be subscribed to from any calendar client.
package calendar

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"github.com/ridaofranco/eventdesk/internal/models"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//eventdesk//production schedule//ES"

// Build assembles a calendar with one all-day VEVENT per event and one
// VTODO per task. stamp is used as DTSTAMP for every component.
func Build(events []models.Event, tasks []models.Task, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	stamp = stamp.UTC()
	for _, e := range events {
		cal.Children = append(cal.Children, eventComponent(e, stamp))
	}
	for _, t := range tasks {
		if t.DueDate.IsZero() {
			continue
		}
		cal.Children = append(cal.Children, taskComponent(t, stamp))
	}
	return cal
}

// Write encodes the calendar built from events and tasks to w.
func Write(w io.Writer, events []models.Event, tasks []models.Task, stamp time.Time) error {
	if err := ical.NewEncoder(w).Encode(Build(events, tasks, stamp)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func eventUID(id string) string { return "event-" + id + "@eventdesk" }
func taskUID(id string) string  { return "task-" + id + "@eventdesk" }

func eventComponent(e models.Event, stamp time.Time) *ical.Component {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, eventUID(e.ID))
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

	summary := e.Name
	if summary == "" {
		summary = e.Venue
	}
	ev.Props.SetText(ical.PropSummary, summary)
	ev.Props.SetText(ical.PropLocation, e.Venue)
	ev.Props.SetDate(ical.PropDateTimeStart, e.Date.Time())
	ev.Props.SetDate(ical.PropDateTimeEnd, e.Date.AddDays(1).Time())
	ev.Props.SetText(ical.PropStatus, eventStatus(e.Status))
	return ev.Component
}

func taskComponent(t models.Task, stamp time.Time) *ical.Component {
	todo := ical.NewComponent(ical.CompToDo)
	todo.Props.SetText(ical.PropUID, taskUID(t.ID))
	todo.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	todo.Props.SetText(ical.PropSummary, t.Title)
	if t.Description != "" {
		todo.Props.SetText(ical.PropDescription, t.Description)
	}
	todo.Props.SetDate(ical.PropDue, t.DueDate.Time())
	todo.Props.SetText(ical.PropStatus, taskStatus(t.Status))
	todo.Props.SetText(ical.PropPriority, strconv.Itoa(priority(t.Priority)))
	if t.Category != "" {
		todo.Props.SetText(ical.PropCategories, t.Category)
	}
	if t.EventID != "" {
		todo.Props.SetText(ical.PropRelatedTo, eventUID(t.EventID))
	}
	return todo
}

func eventStatus(s models.EventStatus) string {
	switch s {
	case models.EventStatusConfirmed, models.EventStatusInProgress, models.EventStatusCompleted:
		return "CONFIRMED"
	case models.EventStatusCancelled:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

func taskStatus(s models.TaskStatus) string {
	switch s {
	case models.TaskStatusInProgress:
		return "IN-PROCESS"
	case models.TaskStatusCompleted:
		return "COMPLETED"
	case models.TaskStatusCancelled:
		return "CANCELLED"
	default:
		return "NEEDS-ACTION"
	}
}

// priority maps to RFC 5545 values, where 1 is highest.
func priority(p models.Priority) int {
	switch p {
	case models.PriorityUrgent:
		return 1
	case models.PriorityHigh:
		return 3
	case models.PriorityMedium:
		return 5
	case models.PriorityLow:
		return 9
	default:
		return 0
	}
}
