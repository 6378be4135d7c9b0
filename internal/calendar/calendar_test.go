package calendar

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

func TestWriteProducesParsableCalendar(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Name: "Fiesta", Venue: "Normandina", Date: dates.MustParse("2025-09-01"), Status: models.EventStatusConfirmed},
	}
	tasks := []models.Task{
		{ID: "t1", Title: "Contrato firmado", DueDate: dates.MustParse("2025-08-17"), EventID: "e1", Status: models.TaskStatusPending, Priority: models.PriorityUrgent, Category: "Booking"},
		{ID: "t2", Title: "Sin fecha", EventID: "e1"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, events, tasks, time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)))

	cal, err := ical.NewDecoder(&buf).Decode()
	require.NoError(t, err)

	var vevents, vtodos []*ical.Component
	for _, child := range cal.Children {
		switch child.Name {
		case ical.CompEvent:
			vevents = append(vevents, child)
		case ical.CompToDo:
			vtodos = append(vtodos, child)
		}
	}
	require.Len(t, vevents, 1)
	require.Len(t, vtodos, 1, "tasks without due date are skipped")

	ev := vevents[0]
	assert.Equal(t, "event-e1@eventdesk", ev.Props.Get(ical.PropUID).Value)
	assert.Equal(t, "20250901", ev.Props.Get(ical.PropDateTimeStart).Value)
	assert.Equal(t, "20250902", ev.Props.Get(ical.PropDateTimeEnd).Value)
	assert.Equal(t, "CONFIRMED", ev.Props.Get(ical.PropStatus).Value)

	todo := vtodos[0]
	assert.Equal(t, "20250817", todo.Props.Get(ical.PropDue).Value)
	assert.Equal(t, "1", todo.Props.Get(ical.PropPriority).Value)
	assert.Equal(t, "NEEDS-ACTION", todo.Props.Get(ical.PropStatus).Value)
	assert.Equal(t, "event-e1@eventdesk", todo.Props.Get(ical.PropRelatedTo).Value)
}

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, "TENTATIVE", eventStatus(models.EventStatusPlanning))
	assert.Equal(t, "CANCELLED", eventStatus(models.EventStatusCancelled))
	assert.Equal(t, "IN-PROCESS", taskStatus(models.TaskStatusInProgress))
	assert.Equal(t, "COMPLETED", taskStatus(models.TaskStatusCompleted))
	assert.Equal(t, 9, priority(models.PriorityLow))
	assert.Equal(t, 0, priority(""))
}
