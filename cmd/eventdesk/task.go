package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var taskShowCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskStatusCmd = &cobra.Command{
	Use:   "status [task-id] [pending|in-progress|completed|cancelled]",
	Short: "Change a task's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskStatus,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit task fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var (
	taskTitle    string
	taskDesc     string
	taskEvent    string
	taskDue      string
	taskPriority string
	taskAssignee string
	taskCategory string
	taskStatus   string
)

func init() {
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskShowCmd, taskStatusCmd, taskEditCmd)

	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "Task title (required)")
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskEvent, "event", "", "Event ID (required)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date YYYY-MM-DD")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", "", "Priority (low, medium, high, urgent)")
	taskAddCmd.Flags().StringVar(&taskAssignee, "assignee", "", "Assignee")
	taskAddCmd.Flags().StringVar(&taskCategory, "category", "", "Category")
	taskAddCmd.MarkFlagRequired("title")
	taskAddCmd.MarkFlagRequired("event")

	taskListCmd.Flags().StringVar(&taskEvent, "event", "", "Filter by event ID")
	taskListCmd.Flags().StringVar(&taskStatus, "status", "", "Filter by status (pending, in-progress, completed, cancelled)")

	taskEditCmd.Flags().StringVar(&taskTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVar(&taskDesc, "desc", "", "New description")
	taskEditCmd.Flags().StringVar(&taskDue, "due", "", "New due date YYYY-MM-DD")
	taskEditCmd.Flags().StringVar(&taskPriority, "priority", "", "New priority")
	taskEditCmd.Flags().StringVar(&taskAssignee, "assignee", "", "New assignee")
	taskEditCmd.Flags().StringVar(&taskCategory, "category", "", "New category")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	var due dates.Date
	if taskDue != "" {
		var err error
		if due, err = dates.Parse(taskDue); err != nil {
			return err
		}
	}

	body := models.Task{
		Title:       taskTitle,
		Description: taskDesc,
		EventID:     taskEvent,
		DueDate:     due,
		Priority:    models.Priority(taskPriority),
		Assignee:    taskAssignee,
		Category:    taskCategory,
	}

	var task models.Task
	if err := apiDecode(http.MethodPost, "/tasks", body, &task); err != nil {
		return err
	}

	fmt.Printf("Created task: %s\n", task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	q := url.Values{}
	if taskEvent != "" {
		q.Set("event", taskEvent)
	}
	if taskStatus != "" {
		q.Set("status", taskStatus)
	}
	path := "/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []models.Task
	if err := apiDecode(http.MethodGet, path, nil, &tasks); err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDUE\tTITLE\tSTATUS\tPRIORITY\tASSIGNEE\tAUTO")
	for _, t := range tasks {
		auto := ""
		if t.Automated {
			auto = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateID(t.ID), t.DueDate, truncate(t.Title, 40), t.Status, t.Priority, t.Assignee, auto)
	}
	w.Flush()
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	var task models.Task
	if err := apiDecode(http.MethodGet, "/tasks/"+url.PathEscape(args[0]), nil, &task); err != nil {
		return err
	}

	fmt.Printf("ID:          %s\n", task.ID)
	fmt.Printf("Title:       %s\n", task.Title)
	fmt.Printf("Status:      %s\n", task.Status)
	fmt.Printf("Priority:    %s\n", task.Priority)
	fmt.Printf("Due:         %s\n", task.DueDate)
	if task.Assignee != "" {
		fmt.Printf("Assignee:    %s\n", task.Assignee)
	}
	if task.Category != "" {
		fmt.Printf("Category:    %s\n", task.Category)
	}
	if task.EventID != "" {
		fmt.Printf("Event:       %s\n", task.EventID)
	}
	fmt.Printf("Automated:   %t\n", task.Automated)
	if task.Description != "" {
		fmt.Printf("Description:\n  %s\n", strings.ReplaceAll(task.Description, "\n", "\n  "))
	}
	if len(task.Questions) > 0 {
		fmt.Println("Checklist:")
		for _, q := range task.Questions {
			fmt.Printf("  [ ] %s\n", q)
		}
	}
	fmt.Printf("Created:     %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Updated:     %s\n", task.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runTaskStatus(cmd *cobra.Command, args []string) error {
	body := map[string]string{"status": args[1]}

	var task models.Task
	if err := apiDecode(http.MethodPost, "/tasks/"+url.PathEscape(args[0])+"/status", body, &task); err != nil {
		return err
	}

	fmt.Printf("Task %s is now %s\n", truncateID(task.ID), task.Status)
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	var patch models.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		patch.Title = &taskTitle
	}
	if flags.Changed("desc") {
		patch.Description = &taskDesc
	}
	if flags.Changed("due") {
		due, err := dates.Parse(taskDue)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}
	if flags.Changed("priority") {
		p := models.Priority(taskPriority)
		patch.Priority = &p
	}
	if flags.Changed("assignee") {
		patch.Assignee = &taskAssignee
	}
	if flags.Changed("category") {
		patch.Category = &taskCategory
	}

	if _, err := apiPatch("/tasks/"+url.PathEscape(args[0]), patch); err != nil {
		return err
	}

	fmt.Printf("Updated task %s\n", truncateID(args[0]))
	return nil
}
