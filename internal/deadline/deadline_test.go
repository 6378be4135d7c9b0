package deadline

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

func TestDue(t *testing.T) {
	event := dates.MustParse("2025-09-01")

	tests := []struct {
		name string
		c    models.Criticality
		want dates.Date
	}{
		{"critical", models.CriticalityCritical, dates.MustParse("2025-08-17")},
		{"important", models.CriticalityImportant, dates.MustParse("2025-08-18")},
		{"normal", models.CriticalityNormal, dates.MustParse("2025-08-25")},
		{"unknown", models.Criticality("whenever"), dates.MustParse("2025-08-29")},
		{"empty", "", dates.MustParse("2025-08-29")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Due(event, tt.c)); diff != "" {
				t.Errorf("Due() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDueMatchesLeadDays(t *testing.T) {
	event := dates.MustParse("2026-01-10")
	for _, c := range []models.Criticality{models.CriticalityCritical, models.CriticalityImportant, models.CriticalityNormal, "other"} {
		if got := Due(event, c).DaysUntil(event); got != LeadDays(c) {
			t.Errorf("Due(%s) is %d days before event, want %d", c, got, LeadDays(c))
		}
	}
}
