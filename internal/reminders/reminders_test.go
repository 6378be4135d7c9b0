package reminders

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2025, time.August, 15, 12, 0, 0, 0, dates.Zone())

func task(status models.TaskStatus, due string) models.Task {
	return models.Task{
		ID:        due + string(status),
		Title:     "Tarea " + due,
		Status:    status,
		Priority:  models.PriorityMedium,
		DueDate:   dates.MustParse(due),
		EventID:   "e1",
		Automated: true,
		UpdatedAt: now.Add(-72 * time.Hour),
	}
}

func TestSummarize(t *testing.T) {
	tasks := []models.Task{
		task(models.TaskStatusPending, "2025-08-10"), // overdue
		task(models.TaskStatusPending, "2025-08-20"),
		task(models.TaskStatusPending, "2025-08-21"),
		task(models.TaskStatusInProgress, "2025-08-01"),
		task(models.TaskStatusInProgress, "2025-08-22"),
	}
	for i := 0; i < 5; i++ {
		tasks = append(tasks, task(models.TaskStatusCompleted, "2025-08-01"))
	}
	tasks[1].Priority = models.PriorityHigh

	s := Summarize(tasks, now)
	assert.Equal(t, Stats{
		Total:           10,
		Pending:         3,
		InProgress:      2,
		Completed:       5,
		Overdue:         1,
		CriticalPending: 1,
		Compliance:      90,
	}, s)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, now)
	assert.Zero(t, s.Total)
	assert.Equal(t, float64(100), s.Compliance)
}

func TestSummarizeDueTodayIsNotOverdue(t *testing.T) {
	s := Summarize([]models.Task{task(models.TaskStatusPending, "2025-08-15")}, now)
	assert.Zero(t, s.Overdue)
	assert.Equal(t, float64(100), s.Compliance)
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want Urgency
	}{
		{-5, UrgencyHigh},
		{0, UrgencyHigh},
		{3, UrgencyHigh},
		{4, UrgencyMedium},
		{5, UrgencyMedium},
		{7, UrgencyMedium},
		{8, UrgencyLow},
		{10, UrgencyLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.days), "days=%d", tt.days)
	}
}

func TestScanUrgency(t *testing.T) {
	tasks := []models.Task{
		task(models.TaskStatusPending, "2025-08-25"), // 10 days
		task(models.TaskStatusPending, "2025-08-20"), // 5 days
		task(models.TaskStatusPending, "2025-08-18"), // 3 days
		task(models.TaskStatusPending, "2025-08-12"), // overdue
	}

	got := Scan(tasks, now, DefaultStaleAfter)
	require.Len(t, got, 4)

	assert.Equal(t, -3, got[0].DaysUntilDue)
	assert.Equal(t, UrgencyHigh, got[0].Urgency)
	assert.True(t, strings.HasPrefix(got[0].Message, MarkerOverdue), got[0].Message)

	assert.Equal(t, 3, got[1].DaysUntilDue)
	assert.Equal(t, UrgencyHigh, got[1].Urgency)
	assert.True(t, strings.HasPrefix(got[1].Message, MarkerUrgent), got[1].Message)

	assert.Equal(t, UrgencyMedium, got[2].Urgency)
	assert.Equal(t, UrgencyLow, got[3].Urgency)
}

func TestScanFilters(t *testing.T) {
	fresh := task(models.TaskStatusPending, "2025-08-16")
	fresh.UpdatedAt = now.Add(-47 * time.Hour)

	exactly := task(models.TaskStatusPending, "2025-08-17")
	exactly.UpdatedAt = now.Add(-48 * time.Hour)

	manual := task(models.TaskStatusPending, "2025-08-18")
	manual.Automated = false

	done := task(models.TaskStatusCompleted, "2025-08-19")

	got := Scan([]models.Task{fresh, exactly, manual, done}, now, DefaultStaleAfter)
	require.Len(t, got, 1)
	assert.Equal(t, exactly.ID, got[0].TaskID)
}

func TestScanDefaultsStaleAfter(t *testing.T) {
	recent := task(models.TaskStatusPending, "2025-08-16")
	recent.UpdatedAt = now.Add(-time.Hour)
	assert.Empty(t, Scan([]models.Task{recent}, now, 0))
}

func TestForEvent(t *testing.T) {
	a := task(models.TaskStatusPending, "2025-08-16")
	b := task(models.TaskStatusPending, "2025-08-17")
	b.EventID = "e2"

	assert.Len(t, ForEvent([]models.Task{a, b}, ""), 2)
	scoped := ForEvent([]models.Task{a, b}, "e2")
	require.Len(t, scoped, 1)
	assert.Equal(t, "e2", scoped[0].EventID)
}

func TestConcurrentReadersDoNotMutate(t *testing.T) {
	tasks := []models.Task{
		task(models.TaskStatusPending, "2025-08-12"),
		task(models.TaskStatusPending, "2025-08-25"),
		task(models.TaskStatusCompleted, "2025-08-01"),
	}
	snapshot := append([]models.Task(nil), tasks...)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = Summarize(tasks, now)
			_ = Scan(tasks, now, DefaultStaleAfter)
		}()
	}
	wg.Wait()

	assert.Equal(t, snapshot, tasks)
}

func TestMessageDayCount(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-1, `VENCIDA: "Pasajes" venció hace 1 día`},
		{-2, `VENCIDA: "Pasajes" venció hace 2 días`},
		{0, `URGENTE: "Pasajes" vence hoy`},
		{1, `URGENTE: "Pasajes" vence en 1 día`},
		{3, `URGENTE: "Pasajes" vence en 3 días`},
		{8, `Recordatorio: "Pasajes" vence en 8 días`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, message("Pasajes", tt.days), "days=%d", tt.days)
	}
}
