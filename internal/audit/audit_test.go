package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridaofranco/eventdesk/internal/models"
)

type memWriter struct {
	entries []models.AuditEntry
}

func (m *memWriter) WriteAudit(action, inputsHash, outcome, eventID, taskID, details string) (*models.AuditEntry, error) {
	e := models.AuditEntry{Action: action, InputsHash: inputsHash, Outcome: outcome, EventID: eventID, TaskID: taskID, Details: details, Timestamp: time.Now()}
	m.entries = append(m.entries, e)
	return &e, nil
}

func TestRecord(t *testing.T) {
	w := &memWriter{}
	r := NewRecorder(w)

	entry, err := r.Record("tasks.inject.standard", map[string]string{"event_id": "e1"}, "success", "e1", "", "created=16")
	require.NoError(t, err)
	assert.Equal(t, "tasks.inject.standard", entry.Action)
	assert.Len(t, entry.InputsHash, 64)
	require.Len(t, w.entries, 1)
	assert.Equal(t, "created=16", w.entries[0].Details)
}

func TestHashInputsIsStable(t *testing.T) {
	a := HashInputs(map[string]string{"event_id": "e1"})
	b := HashInputs(map[string]string{"event_id": "e1"})
	c := HashInputs(map[string]string{"event_id": "e2"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "hash_error", HashInputs(make(chan int)))
}
