// Package deadline derives task due dates from event dates.
package deadline

import (
	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

// Lead times in calendar days before the event.
const (
	CriticalLead  = 15
	ImportantLead = 14
	NormalLead    = 7
	DefaultLead   = 3
)

// LeadDays returns how many days before the event a task of class c is due.
func LeadDays(c models.Criticality) int {
	switch c {
	case models.CriticalityCritical:
		return CriticalLead
	case models.CriticalityImportant:
		return ImportantLead
	case models.CriticalityNormal:
		return NormalLead
	default:
		return DefaultLead
	}
}

// Due returns eventDate minus the lead time for c.
func Due(eventDate dates.Date, c models.Criticality) dates.Date {
	return eventDate.AddDays(-LeadDays(c))
}
