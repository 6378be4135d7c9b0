// Package catalog holds the static task templates the automation engine
// instantiates. Entries are plain data; adding or removing one is a data
// change and never touches the injection logic.
package catalog

import (
	"strings"

	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

// Department groups standard templates by the team that owns them.
type Department string

const (
	Art       Department = "Arte"
	Booking   Department = "Booking"
	Marketing Department = "Marketing"
)

// VenueTemplate is a task triggered by where an event takes place.
// Its due date is LeadDays after the day the engine runs.
type VenueTemplate struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Priority      models.Priority
	LeadDays      int
	International bool
	Domestic      bool
}

// AppliesTo reports whether the template is relevant for a venue class.
func (t VenueTemplate) AppliesTo(c venue.Class) bool {
	switch c {
	case venue.International:
		return t.International
	case venue.Domestic:
		return t.Domestic
	default:
		return false
	}
}

// Template is a role-based checklist every event gets on request.
type Template struct {
	ID          string
	Title       string
	Summary     string
	Questions   []string
	Department  Department
	Assignee    string
	Priority    models.Priority
	Criticality models.Criticality
}

// Description renders the summary followed by the checklist.
func (t Template) Description() string {
	if len(t.Questions) == 0 {
		return t.Summary
	}
	var b strings.Builder
	b.WriteString(t.Summary)
	b.WriteString("\n\nChecklist:")
	for _, q := range t.Questions {
		b.WriteString("\n- ")
		b.WriteString(q)
	}
	return b.String()
}

// VenueTriggered returns a copy of the venue-triggered catalog.
func VenueTriggered() []VenueTemplate {
	out := make([]VenueTemplate, len(venueTemplates))
	copy(out, venueTemplates)
	return out
}

// VenueTriggeredFor returns the venue templates applicable to c.
func VenueTriggeredFor(c venue.Class) []VenueTemplate {
	var out []VenueTemplate
	for _, t := range venueTemplates {
		if t.AppliesTo(c) {
			out = append(out, t)
		}
	}
	return out
}

// Departments lists the departments in catalog order.
func Departments() []Department {
	return []Department{Art, Booking, Marketing}
}

// ByDepartment returns the standard templates owned by d.
func ByDepartment(d Department) []Template {
	src := standardTemplates[d]
	out := make([]Template, len(src))
	for i, t := range src {
		out[i] = t.clone()
	}
	return out
}

// Standard returns every standard template across all departments.
func Standard() []Template {
	var out []Template
	for _, d := range Departments() {
		out = append(out, ByDepartment(d)...)
	}
	return out
}

func (t Template) clone() Template {
	t.Questions = append([]string(nil), t.Questions...)
	return t
}
