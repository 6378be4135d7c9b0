package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ridaofranco/eventdesk/internal/reminders"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics and deadline compliance",
	RunE:  runStats,
}

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List reminders for stale automated tasks",
	RunE:  runReminders,
}

var viewEvent string

func init() {
	statsCmd.Flags().StringVar(&viewEvent, "event", "", "Restrict to one event")
	remindersCmd.Flags().StringVar(&viewEvent, "event", "", "Restrict to one event")
}

func eventQuery(path string) string {
	if viewEvent == "" {
		return path
	}
	return path + "?event=" + url.QueryEscape(viewEvent)
}

func runStats(cmd *cobra.Command, args []string) error {
	body, err := apiGet(eventQuery("/stats"))
	if err != nil {
		return err
	}

	var s reminders.Stats
	if err := json.Unmarshal(body, &s); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total:\t%d\n", s.Total)
	fmt.Fprintf(w, "Pending:\t%d\n", s.Pending)
	fmt.Fprintf(w, "In progress:\t%d\n", s.InProgress)
	fmt.Fprintf(w, "Completed:\t%d\n", s.Completed)
	fmt.Fprintf(w, "Cancelled:\t%d\n", s.Cancelled)
	fmt.Fprintf(w, "Overdue:\t%d\n", s.Overdue)
	fmt.Fprintf(w, "Critical pending:\t%d\n", s.CriticalPending)
	fmt.Fprintf(w, "Compliance:\t%.1f%%\n", s.Compliance)
	w.Flush()
	return nil
}

func runReminders(cmd *cobra.Command, args []string) error {
	body, err := apiGet(eventQuery("/reminders"))
	if err != nil {
		return err
	}

	var list []reminders.Reminder
	if err := json.Unmarshal(body, &list); err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Println("No reminders")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tDUE\tDAYS\tURGENCY\tASSIGNEE\tMESSAGE")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			truncateID(r.TaskID), r.DueDate, r.DaysUntilDue, r.Urgency, r.Assignee, truncate(r.Message, 60))
	}
	w.Flush()
	return nil
}
