// Package audit records engine decisions and user mutations for review.
package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/ridaofranco/eventdesk/internal/models"
)

// Writer persists audit entries.
type Writer interface {
	WriteAudit(action, inputsHash, outcome, eventID, taskID, details string) (*models.AuditEntry, error)
}

// Recorder writes audit entries with hashed inputs.
type Recorder struct {
	w Writer
}

// NewRecorder creates a new Recorder.
func NewRecorder(w Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes an entry for a state-mutating action.
func (r *Recorder) Record(action string, inputs any, outcome, eventID, taskID, details string) (*models.AuditEntry, error) {
	return r.w.WriteAudit(action, HashInputs(inputs), outcome, eventID, taskID, details)
}

// HashInputs returns the SHA256 of the JSON encoding of inputs so that
// identical requests can be correlated.
func HashInputs(inputs any) string {
	data, err := json.Marshal(inputs)
	if err != nil {
		return "hash_error"
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
