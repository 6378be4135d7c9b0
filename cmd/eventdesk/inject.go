package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ridaofranco/eventdesk/internal/automation"
	"github.com/ridaofranco/eventdesk/internal/dashboard"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Run the task injectors",
}

var injectVenueCmd = &cobra.Command{
	Use:   "venue",
	Short: "Derive logistics tasks from upcoming confirmed events' venues",
	Args:  cobra.NoArgs,
	RunE:  runInjectVenue,
}

var injectStandardCmd = &cobra.Command{
	Use:   "standard [event-id]",
	Short: "Instantiate the department checklists for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runInjectStandard,
}

func init() {
	injectCmd.AddCommand(injectVenueCmd, injectStandardCmd)
}

func runInjectVenue(cmd *cobra.Command, args []string) error {
	body, err := apiPost("/automation/venue-tasks", nil)
	if err != nil {
		return err
	}

	var run automation.VenueRun
	if err := json.Unmarshal(body, &run); err != nil {
		return err
	}

	fmt.Printf("Scanned %d events, created %d tasks\n", run.Scanned, len(run.Created))
	if len(run.Events) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EVENT\tVENUE\tCLASS\tCOUNTRY\tDAYS\tCREATED")
	for _, ev := range run.Events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			truncateID(ev.EventID), truncate(ev.Venue, 30), ev.Class, ev.Country, ev.DaysUntil, ev.Created)
	}
	w.Flush()
	return nil
}

func runInjectStandard(cmd *cobra.Command, args []string) error {
	body, err := apiPost("/events/"+url.PathEscape(args[0])+"/standard-tasks", nil)
	if err != nil {
		return err
	}

	var run dashboard.StandardRun
	if err := json.Unmarshal(body, &run); err != nil {
		return err
	}

	if run.Created == 0 {
		fmt.Printf("Event %s already has every standard task\n", truncateID(run.EventID))
		return nil
	}
	fmt.Printf("Created %d standard tasks for event %s\n", run.Created, truncateID(run.EventID))
	return nil
}
