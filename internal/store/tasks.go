package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridaofranco/eventdesk/internal/models"
)

const taskColumns = `id, title, description, status, priority, assignee, due_date, event_id, category, automated, questions, created_at, updated_at`

// prepareTask fills defaults and returns the encoded questions.
func prepareTask(t *models.Task) (sql.NullString, error) {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = models.TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = models.PriorityMedium
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	var questions sql.NullString
	if len(t.Questions) > 0 {
		b, err := json.Marshal(t.Questions)
		if err != nil {
			return questions, fmt.Errorf("encode questions: %w", err)
		}
		questions = sql.NullString{String: string(b), Valid: true}
	}
	return questions, nil
}

func taskArgs(t *models.Task, questions sql.NullString) []any {
	return []any{
		t.ID, t.Title, t.Description, t.Status, t.Priority, nullString(t.Assignee), t.DueDate,
		t.EventID, t.Category, t.Automated, questions, t.CreatedAt, t.UpdatedAt,
	}
}

// CreateTask inserts a task as given. It performs no deduplication; use
// InsertAutomatedTask for engine-generated tasks.
func (s *Store) CreateTask(in models.Task) (*models.Task, error) {
	t := in
	questions, err := prepareTask(&t)
	if err != nil {
		return nil, err
	}

	_, err = s.db.Exec(
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		taskArgs(&t, questions)...,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

// InsertAutomatedTask appends an automated task unless one with the same
// event and title already exists. The check and the insert are a single
// statement backed by a partial unique index, so concurrent callers cannot
// create duplicates. It reports whether the task was inserted; on success
// t is updated with its ID and timestamps.
func (s *Store) InsertAutomatedTask(t *models.Task) (bool, error) {
	t.Automated = true
	questions, err := prepareTask(t)
	if err != nil {
		return false, err
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT DO NOTHING`,
		taskArgs(t, questions)...,
	)
	if err != nil {
		return false, fmt.Errorf("insert automated task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("check rows affected: %w", err)
	}
	return n == 1, nil
}

// GetTask retrieves a task by ID. It returns nil, nil when absent.
func (s *Store) GetTask(id string) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return t, nil
}

// ListTasks returns tasks matching the filter, soonest due first.
func (s *Store) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var where []string
	var args []any

	if filter.EventID != "" {
		where = append(where, `event_id = ?`)
		args = append(args, filter.EventID)
	}
	if filter.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, filter.Status)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY due_date ASC, created_at ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// UpdateTaskStatus updates the status of a task.
func (s *Store) UpdateTaskStatus(id string, status models.TaskStatus) error {
	res, err := s.db.Exec(
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	return checkAffected(res)
}

// UpdateTask applies a partial update and returns the stored task.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) (*models.Task, error) {
	var sets []string
	var args []any

	if patch.Title != nil {
		sets = append(sets, `title = ?`)
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, `description = ?`)
		args = append(args, *patch.Description)
	}
	if patch.Status != nil {
		sets = append(sets, `status = ?`)
		args = append(args, *patch.Status)
	}
	if patch.Priority != nil {
		sets = append(sets, `priority = ?`)
		args = append(args, *patch.Priority)
	}
	if patch.Assignee != nil {
		sets = append(sets, `assignee = ?`)
		args = append(args, nullString(*patch.Assignee))
	}
	if patch.DueDate != nil {
		sets = append(sets, `due_date = ?`)
		args = append(args, *patch.DueDate)
	}
	if patch.Category != nil {
		sets = append(sets, `category = ?`)
		args = append(args, *patch.Category)
	}

	sets = append(sets, `updated_at = ?`)
	args = append(args, time.Now().UTC(), id)

	res, err := s.db.Exec(`UPDATE tasks SET `+strings.Join(sets, `, `)+` WHERE id = ?`, args...)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("update task: %w", ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return nil, err
	}
	return s.GetTask(id)
}

func scanTask(row rowScanner) (*models.Task, error) {
	var t models.Task
	var assignee, questions sql.NullString

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &assignee, &t.DueDate,
		&t.EventID, &t.Category, &t.Automated, &questions, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignee.Valid {
		t.Assignee = assignee.String
	}
	if questions.Valid && questions.String != "" {
		if err := json.Unmarshal([]byte(questions.String), &t.Questions); err != nil {
			return nil, fmt.Errorf("decode questions: %w", err)
		}
	}
	return &t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
