// Package tui provides the interactive terminal dashboard for eventdesk.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/reminders"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#6366F1")
	successColor   = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	fgColor        = lipgloss.Color("#F9FAFB")
	cyanColor      = lipgloss.Color("#06B6D4")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	taskItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	onlineStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	offlineStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)

const (
	modeList      = "list"
	modeDetail    = "detail"
	modeReminders = "reminders"
)

// App is the main TUI application model.
type App struct {
	client       *Client
	eventID      string
	events       []models.Event
	tasks        []models.Task
	stats        *reminders.Stats
	reminders    []reminders.Reminder
	selectedIdx  int
	input        textinput.Model
	width        int
	height       int
	mode         string
	currentTask  *models.Task
	message      string
	filterIdx    int
	loading      bool
	daemonOnline bool
	suggestions  *Suggestions
	now          func() time.Time
}

// New creates a new TUI application. A non-empty eventID scopes the
// dashboard to that event.
func New(apiAddr, eventID string) *App {
	ti := textinput.New()
	ti.Placeholder = "Type / for commands, @ to pick an event"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	return &App{
		client:      NewClient(apiAddr),
		eventID:     eventID,
		input:       ti,
		mode:        modeList,
		suggestions: NewSuggestions(),
		now:         time.Now,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		a.fetchTasks(),
		a.fetchEvents(),
		a.checkDaemon(),
	)
}

func (a *App) today() dates.Date {
	return dates.Today(a.now())
}

func (a *App) filter() models.TaskStatus {
	return filters[a.filterIdx]
}

func (a *App) selectedTask() *models.Task {
	if a.selectedIdx < 0 || a.selectedIdx >= len(a.tasks) {
		return nil
	}
	return &a.tasks[a.selectedIdx]
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		typing := a.input.Value() != ""

		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit

		case "esc":
			if a.mode != modeList {
				a.mode = modeList
				a.currentTask = nil
				return a, a.fetchTasks()
			}
			a.input.SetValue("")
			a.suggestions.Update("")
			return a, nil

		case "up":
			if a.suggestions.IsVisible() {
				a.suggestions.Prev()
			} else if a.mode == modeList && a.selectedIdx > 0 {
				a.selectedIdx--
			}
			return a, nil

		case "down":
			if a.suggestions.IsVisible() {
				a.suggestions.Next()
			} else if a.mode == modeList && a.selectedIdx < len(a.tasks)-1 {
				a.selectedIdx++
			}
			return a, nil

		case "tab":
			if a.suggestions.IsVisible() {
				a.acceptSuggestion()
				return a, nil
			}
			if a.mode == modeReminders {
				a.mode = modeList
				return a, a.fetchTasks()
			}
			a.mode = modeReminders
			return a, a.fetchReminders()

		case "enter":
			if a.suggestions.IsVisible() {
				a.acceptSuggestion()
				return a, nil
			}
			if cmd := strings.TrimSpace(a.input.Value()); cmd != "" {
				a.input.SetValue("")
				a.suggestions.Update("")
				return a, a.executeCommand(cmd)
			}
			if a.mode == modeList {
				if task := a.selectedTask(); task != nil {
					a.mode = modeDetail
					return a, a.fetchTaskDetail(task.ID)
				}
			}
			return a, nil

		case "i":
			if !typing {
				a.message = "Deriving venue tasks..."
				return a, a.executeCommand("inject")
			}

		case "r":
			if !typing {
				if a.mode == modeReminders {
					return a, a.fetchReminders()
				}
				return a, tea.Batch(a.fetchTasks(), a.fetchEvents())
			}

		case "f":
			if !typing && a.mode == modeList {
				a.filterIdx = (a.filterIdx + 1) % len(filters)
				return a, a.fetchTasks()
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4

	case tasksLoadedMsg:
		a.loading = false
		a.tasks = msg.tasks
		a.stats = msg.stats
		if a.selectedIdx >= len(a.tasks) {
			a.selectedIdx = max(0, len(a.tasks)-1)
		}

	case eventsLoadedMsg:
		a.events = msg.events

	case taskDetailLoadedMsg:
		a.currentTask = msg.task

	case remindersLoadedMsg:
		a.reminders = msg.reminders

	case daemonStatusMsg:
		a.daemonOnline = msg.online

	case commandResultMsg:
		a.message = msg.message
		return a, a.fetchTasks()

	case errMsg:
		a.loading = false
		a.message = "Error: " + msg.err.Error()
	}

	// Update input
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)

	a.suggestions.Update(a.input.Value())
	if strings.HasPrefix(a.input.Value(), "@") {
		a.suggestions.SetEvents(a.events)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) acceptSuggestion() {
	selected := a.suggestions.Selected()
	if selected == nil {
		return
	}
	if selected.Type == "event" {
		a.input.SetValue("/event " + selected.Text)
	} else {
		a.input.SetValue("/" + selected.Text + " ")
	}
	a.input.CursorEnd()
	a.suggestions.Update("")
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	daemonStatus := onlineStyle.Render("● DAEMON")
	if !a.daemonOnline {
		daemonStatus = offlineStyle.Render("○ DAEMON")
	}

	scope := "all events"
	if a.eventID != "" {
		scope = "event " + shortID(a.eventID)
		for _, e := range a.events {
			if e.ID == a.eventID {
				scope = fmt.Sprintf("%s (%s)", e.Venue, e.Date)
				break
			}
		}
	}

	header := titleStyle.Render("🎛  EVENTDESK")
	header += "  " + daemonStatus
	header += "  " + lipgloss.NewStyle().Foreground(cyanColor).Render("["+scope+"]")
	header += "  " + helpStyle.Render(a.today().String())

	b.WriteString(header + "\n")
	b.WriteString(renderStats(a.stats) + "\n")
	b.WriteString(strings.Repeat("─", a.width) + "\n")

	contentHeight := a.height - 9
	if contentHeight < 5 {
		contentHeight = 5
	}

	switch a.mode {
	case modeList:
		filterLabel := fmt.Sprintf(" Filter: [%s]", filterNames[a.filterIdx])
		b.WriteString(lipgloss.NewStyle().Foreground(mutedColor).Render(filterLabel) + "\n")
		b.WriteString(a.renderTaskList(contentHeight - 1))
	case modeDetail:
		b.WriteString(a.renderTaskDetail(contentHeight))
	case modeReminders:
		b.WriteString(a.renderReminders(contentHeight))
	}

	// Message bar
	if a.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(successColor)
		if strings.HasPrefix(a.message, "Error") {
			msgStyle = lipgloss.NewStyle().Foreground(errorColor)
		}
		b.WriteString("\n" + msgStyle.Render(a.message))
	} else {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(a.input.View()))

	if a.suggestions.IsVisible() {
		b.WriteString("\n")
		b.WriteString(a.suggestions.Render(a.width))
	}
	b.WriteString("\n")

	var status string
	switch a.mode {
	case modeList:
		status = fmt.Sprintf(" Tasks: %d | ↑↓:nav | Enter:detail | Tab:reminders | i:inject | f:filter | r:refresh | Ctrl+C:quit", len(a.tasks))
	case modeReminders:
		status = fmt.Sprintf(" Reminders: %d | Tab:tasks | r:refresh | Esc:back", len(a.reminders))
	default:
		status = " Esc:back | /done /start /cancel | Ctrl+C:quit"
	}
	b.WriteString(statusBarStyle.Width(a.width).Render(status))

	return b.String()
}

func (a *App) fetchTasks() tea.Cmd {
	a.loading = true
	filter := models.TaskFilter{EventID: a.eventID, Status: a.filter()}
	eventID := a.eventID
	return func() tea.Msg {
		tasks, err := a.client.ListTasks(filter)
		if err != nil {
			return errMsg{err}
		}
		stats, err := a.client.Stats(eventID)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks, stats}
	}
}

func (a *App) fetchEvents() tea.Cmd {
	return func() tea.Msg {
		events, err := a.client.ListEvents()
		if err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{events}
	}
}

func (a *App) fetchTaskDetail(taskID string) tea.Cmd {
	return func() tea.Msg {
		task, err := a.client.GetTask(taskID)
		if err != nil {
			return errMsg{err}
		}
		return taskDetailLoadedMsg{task}
	}
}

func (a *App) fetchReminders() tea.Cmd {
	eventID := a.eventID
	return func() tea.Msg {
		list, err := a.client.Reminders(eventID)
		if err != nil {
			return errMsg{err}
		}
		return remindersLoadedMsg{list}
	}
}

func (a *App) checkDaemon() tea.Cmd {
	return func() tea.Msg {
		ok, err := a.client.CheckHealth()
		return daemonStatusMsg{online: err == nil && ok}
	}
}

// executeCommand parses a command line typed into the input box. The
// leading slash is optional.
func (a *App) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(parts) == 0 {
		return nil
	}

	cmd := parts[0]
	args := parts[1:]

	// Scope changes are applied synchronously so the follow-up fetch sees them.
	switch cmd {
	case "event":
		if len(args) != 1 {
			return result("Usage: /event <event-id>")
		}
		a.eventID = args[0]
		a.selectedIdx = 0
		return result(fmt.Sprintf("✓ Scoped to event %s", shortID(a.eventID)))
	case "all":
		a.eventID = ""
		a.selectedIdx = 0
		return result("✓ Showing all events")
	case "q", "quit", "exit":
		return tea.Quit
	}

	selected := a.selectedTask()
	var taskID, taskEvent string
	if selected != nil {
		taskID, taskEvent = selected.ID, selected.EventID
	}
	if a.currentTask != nil {
		taskID, taskEvent = a.currentTask.ID, a.currentTask.EventID
	}
	eventID := a.eventID

	return func() tea.Msg {
		switch cmd {
		case "add":
			if len(args) < 1 {
				return commandResultMsg{"Usage: add <title>"}
			}
			target := eventID
			if target == "" {
				target = taskEvent
			}
			if target == "" {
				return commandResultMsg{"Select a task or scope to an event first"}
			}
			task, err := a.client.CreateTask(strings.Join(args, " "), target)
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ Created task: %s", shortID(task.ID))}

		case "start", "done", "cancel":
			if taskID == "" {
				return commandResultMsg{"No task selected"}
			}
			status := map[string]models.TaskStatus{
				"start":  models.TaskStatusInProgress,
				"done":   models.TaskStatusCompleted,
				"cancel": models.TaskStatusCancelled,
			}[cmd]
			task, err := a.client.SetTaskStatus(taskID, status)
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ %s → %s", task.Title, task.Status)}

		case "inject":
			run, err := a.client.InjectVenueTasks()
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ Venue tasks: %d created across %d eligible events", len(run.Created), len(run.Events))}

		case "standard":
			target := eventID
			if target == "" {
				target = taskEvent
			}
			if target == "" {
				return commandResultMsg{"Select a task or scope to an event first"}
			}
			run, err := a.client.InjectStandardTasks(target)
			if err != nil {
				return commandResultMsg{"Error: " + err.Error()}
			}
			return commandResultMsg{fmt.Sprintf("✓ Standard tasks: %d created", run.Created)}

		default:
			return commandResultMsg{fmt.Sprintf("Unknown: %s (try: add, done, inject, standard)", cmd)}
		}
	}
}

func result(message string) tea.Cmd {
	return func() tea.Msg { return commandResultMsg{message} }
}

type commandResultMsg struct {
	message string
}

type errMsg struct {
	err error
}

type tasksLoadedMsg struct {
	tasks []models.Task
	stats *reminders.Stats
}

type eventsLoadedMsg struct {
	events []models.Event
}

type taskDetailLoadedMsg struct {
	task *models.Task
}

type remindersLoadedMsg struct {
	reminders []reminders.Reminder
}

type daemonStatusMsg struct {
	online bool
}
