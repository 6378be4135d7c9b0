package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/dashboard"
	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/reminders"
)

// DefaultClientTimeout is the default timeout for API requests.
const DefaultClientTimeout = 10 * time.Second

// Client wraps HTTP calls to the eventdesk API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client with timeout
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultClientTimeout,
		},
	}
}

// ListTasks fetches tasks matching the filter
func (c *Client) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	q := url.Values{}
	if filter.EventID != "" {
		q.Set("event", filter.EventID)
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	path := "/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []models.Task
	if err := c.get(path, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single task
func (c *Client) GetTask(id string) (*models.Task, error) {
	var task models.Task
	if err := c.get("/tasks/"+url.PathEscape(id), &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a user task on an event
func (c *Client) CreateTask(title, eventID string) (*models.Task, error) {
	var task models.Task
	body := map[string]string{"title": title, "event_id": eventID}
	if err := c.send(http.MethodPost, "/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// SetTaskStatus changes a task's status
func (c *Client) SetTaskStatus(id string, status models.TaskStatus) (*models.Task, error) {
	var task models.Task
	body := map[string]models.TaskStatus{"status": status}
	if err := c.send(http.MethodPost, "/tasks/"+url.PathEscape(id)+"/status", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ListEvents fetches all events
func (c *Client) ListEvents() ([]models.Event, error) {
	var events []models.Event
	if err := c.get("/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Stats fetches task statistics, scoped to eventID when set
func (c *Client) Stats(eventID string) (*reminders.Stats, error) {
	var stats reminders.Stats
	if err := c.get("/stats"+eventQuery(eventID), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Reminders fetches pending reminders, scoped to eventID when set
func (c *Client) Reminders(eventID string) ([]reminders.Reminder, error) {
	var list []reminders.Reminder
	if err := c.get("/reminders"+eventQuery(eventID), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// InjectVenueTasks triggers the venue injector
func (c *Client) InjectVenueTasks() (*automation.VenueRun, error) {
	var run automation.VenueRun
	if err := c.send(http.MethodPost, "/automation/venue-tasks", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// InjectStandardTasks instantiates the standard catalog for an event
func (c *Client) InjectStandardTasks(eventID string) (*dashboard.StandardRun, error) {
	var run dashboard.StandardRun
	if err := c.send(http.MethodPost, "/events/"+url.PathEscape(eventID)+"/standard-tasks", nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// CheckHealth checks if the daemon is healthy
func (c *Client) CheckHealth() (bool, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var health dashboard.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return false, err
	}
	return health.OK, nil
}

func eventQuery(eventID string) string {
	if eventID == "" {
		return ""
	}
	return "?event=" + url.QueryEscape(eventID)
}

func (c *Client) get(path string, out any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *Client) send(method, path string, data, out any) error {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return err
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s", bytes.TrimSpace(body))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
