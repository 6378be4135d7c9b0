package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ridaofranco/eventdesk/internal/models"
	"github.com/ridaofranco/eventdesk/internal/reminders"
)

var filters = []models.TaskStatus{"", models.TaskStatusPending, models.TaskStatusInProgress, models.TaskStatusCompleted, models.TaskStatusCancelled}
var filterNames = []string{"ALL", "PENDING", "IN PROGRESS", "DONE", "CANCELLED"}

func formatStatus(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusPending:
		return lipgloss.NewStyle().Foreground(warningColor).Render("○ PENDING")
	case models.TaskStatusInProgress:
		return lipgloss.NewStyle().Foreground(secondaryColor).Render("◐ IN PROGRESS")
	case models.TaskStatusCompleted:
		return lipgloss.NewStyle().Foreground(successColor).Render("● DONE")
	case models.TaskStatusCancelled:
		return lipgloss.NewStyle().Foreground(mutedColor).Render("✗ CANCELLED")
	default:
		return string(status)
	}
}

func formatStatusPlain(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusPending:
		return "○"
	case models.TaskStatusInProgress:
		return "◐"
	case models.TaskStatusCompleted:
		return "●"
	case models.TaskStatusCancelled:
		return "✗"
	default:
		return "?"
	}
}

func formatPriority(p models.Priority) string {
	switch p {
	case models.PriorityUrgent:
		return lipgloss.NewStyle().Foreground(errorColor).Bold(true).Render("!!")
	case models.PriorityHigh:
		return lipgloss.NewStyle().Foreground(errorColor).Render("! ")
	default:
		return "  "
	}
}

// renderStats renders the one-line progress summary shown above the list.
func renderStats(s *reminders.Stats) string {
	if s == nil {
		return helpStyle.Render(" stats unavailable")
	}
	compliance := lipgloss.NewStyle().Foreground(successColor)
	if s.Compliance < 80 {
		compliance = lipgloss.NewStyle().Foreground(errorColor)
	}
	overdue := lipgloss.NewStyle().Foreground(mutedColor)
	if s.Overdue > 0 {
		overdue = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	}
	return fmt.Sprintf(" Total %d · Pending %d · In progress %d · Done %d · %s · Critical %d · SLA %s",
		s.Total, s.Pending, s.InProgress, s.Completed,
		overdue.Render(fmt.Sprintf("Overdue %d", s.Overdue)),
		s.CriticalPending,
		compliance.Render(fmt.Sprintf("%.1f%%", s.Compliance)))
}

func (a *App) renderTaskList(height int) string {
	if a.loading && len(a.tasks) == 0 {
		return "\n  Loading tasks...\n"
	}
	if len(a.tasks) == 0 {
		return "\n  No tasks found. Press i to derive venue tasks or type /add <title>.\n"
	}

	today := a.today()
	var lines []string
	for i, task := range a.tasks {
		due := task.DueDate.String()
		if reminders.IsOverdue(task, today) {
			due = lipgloss.NewStyle().Foreground(errorColor).Render(due)
		}
		auto := " "
		if task.Automated {
			auto = "⚙"
		}

		if i == a.selectedIdx {
			line := selectedStyle.Render(fmt.Sprintf("▶ %s %s %-10s %s", formatStatusPlain(task.Status), auto, task.DueDate, task.Title))
			lines = append(lines, line)
		} else {
			line := taskItemStyle.Render(fmt.Sprintf("  %s %s %s %-10s %s", formatStatus(task.Status), formatPriority(task.Priority), auto, due, task.Title))
			lines = append(lines, line)
		}
	}

	// Limit visible lines
	if len(lines) > height {
		start := a.selectedIdx - height/2
		if start < 0 {
			start = 0
		}
		end := start + height
		if end > len(lines) {
			end = len(lines)
			start = max(0, end-height)
		}
		lines = lines[start:end]
	}

	return strings.Join(lines, "\n")
}

func (a *App) renderReminders(height int) string {
	var b strings.Builder

	b.WriteString("\n  🔔 Reminders\n")
	b.WriteString("  " + strings.Repeat("─", 50) + "\n\n")

	if len(a.reminders) == 0 {
		b.WriteString("  Nothing to follow up.\n")
		return b.String()
	}

	for i, r := range a.reminders {
		if i >= height-4 {
			b.WriteString(helpStyle.Render(fmt.Sprintf("  ... and %d more", len(a.reminders)-i)) + "\n")
			break
		}
		style := lipgloss.NewStyle().Foreground(mutedColor)
		switch r.Urgency {
		case reminders.UrgencyHigh:
			style = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
		case reminders.UrgencyMedium:
			style = lipgloss.NewStyle().Foreground(warningColor)
		}
		assignee := ""
		if r.Assignee != "" {
			assignee = helpStyle.Render(" → " + r.Assignee)
		}
		b.WriteString("  " + style.Render(r.Message) + assignee + "\n")
	}
	return b.String()
}
