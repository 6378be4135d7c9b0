package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyanColor).
			MarginTop(1)
)

func (a *App) renderTaskDetail(height int) string {
	if a.currentTask == nil {
		return "\n  Loading...\n"
	}

	var b strings.Builder
	t := a.currentTask

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label+":")), value))
	}

	b.WriteString(fmt.Sprintf("\n  📋 %s\n", lipgloss.NewStyle().Bold(true).Render(t.Title)))
	field("ID", shortID(t.ID))
	field("Status", formatStatus(t.Status))
	field("Priority", string(t.Priority))
	field("Due", t.DueDate.String())
	field("Assignee", t.Assignee)
	field("Category", t.Category)
	field("Event", shortID(t.EventID))
	if t.Automated {
		field("Source", "automation")
	}

	if t.Description != "" {
		b.WriteString(sectionStyle.Render("  Description") + "\n")
		for _, line := range strings.Split(t.Description, "\n") {
			b.WriteString("    " + line + "\n")
		}
	}

	if len(t.Questions) > 0 {
		b.WriteString(sectionStyle.Render("  Checklist") + "\n")
		for _, q := range t.Questions {
			b.WriteString("    ☐ " + q + "\n")
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
