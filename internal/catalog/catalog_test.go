package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/venue"
)

func TestStandardCoversAllDepartments(t *testing.T) {
	total := 0
	for _, d := range Departments() {
		entries := ByDepartment(d)
		require.NotEmpty(t, entries, "department %s has no templates", d)
		for _, e := range entries {
			assert.Equal(t, d, e.Department)
		}
		total += len(entries)
	}
	assert.Len(t, Standard(), total)
}

func TestStandardTemplatesAreWellFormed(t *testing.T) {
	ids := make(map[string]bool)
	titles := make(map[string]bool)
	for _, tpl := range Standard() {
		assert.False(t, ids[tpl.ID], "duplicate id %s", tpl.ID)
		assert.False(t, titles[tpl.Title], "duplicate title %s", tpl.Title)
		ids[tpl.ID] = true
		titles[tpl.Title] = true

		assert.NotEmpty(t, tpl.Assignee, tpl.ID)
		assert.True(t, tpl.Priority.Valid(), tpl.ID)
		assert.NotEmpty(t, tpl.Questions, tpl.ID)
		switch tpl.Criticality {
		case models.CriticalityCritical, models.CriticalityImportant, models.CriticalityNormal:
		default:
			t.Errorf("%s: unexpected criticality %q", tpl.ID, tpl.Criticality)
		}
	}
}

func TestStandardReturnsCopies(t *testing.T) {
	first := Standard()
	first[0].Title = "mutated"
	first[0].Questions[0] = "mutated"

	second := Standard()
	assert.NotEqual(t, "mutated", second[0].Title)
	assert.NotEqual(t, "mutated", second[0].Questions[0])
}

func TestDescriptionEmbedsChecklist(t *testing.T) {
	tpl := Template{Summary: "Resumen", Questions: []string{"¿Uno?", "¿Dos?"}}
	assert.Equal(t, "Resumen\n\nChecklist:\n- ¿Uno?\n- ¿Dos?", tpl.Description())

	bare := Template{Summary: "Solo resumen"}
	assert.Equal(t, "Solo resumen", bare.Description())
}

func TestVenueTriggeredApplicability(t *testing.T) {
	intl := VenueTriggeredFor(venue.International)
	dom := VenueTriggeredFor(venue.Domestic)

	require.NotEmpty(t, intl)
	require.NotEmpty(t, dom)
	assert.Empty(t, VenueTriggeredFor(venue.Unclassified))

	for _, tpl := range intl {
		assert.True(t, tpl.International)
	}
	for _, tpl := range dom {
		assert.True(t, tpl.Domestic)
	}

	var customs int
	for _, tpl := range intl {
		if strings.Contains(tpl.Title, "aduanera") {
			customs++
		}
	}
	assert.Equal(t, 2, customs, "outbound and return customs paperwork")

	for _, tpl := range VenueTriggered() {
		assert.Positive(t, tpl.LeadDays, tpl.ID)
		assert.True(t, tpl.International || tpl.Domestic, tpl.ID)
	}
}
