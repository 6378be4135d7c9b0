package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ridaofranco/eventdesk/internal/dates"
	"github.com/ridaofranco/eventdesk/internal/models"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new event",
	RunE:  runEventAdd,
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	RunE:  runEventList,
}

var eventShowCmd = &cobra.Command{
	Use:   "show [event-id]",
	Short: "Show event details and its venue classification",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventShow,
}

var eventStatusCmd = &cobra.Command{
	Use:   "status [event-id] [planning|confirmed|in-progress|completed|cancelled]",
	Short: "Change an event's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runEventStatus,
}

var (
	eventName    string
	eventVenue   string
	eventCountry string
	eventDate    string
	eventStatus  string
)

func init() {
	eventCmd.AddCommand(eventAddCmd, eventListCmd, eventShowCmd, eventStatusCmd)

	eventAddCmd.Flags().StringVar(&eventName, "name", "", "Event name")
	eventAddCmd.Flags().StringVar(&eventVenue, "venue", "", "Venue (required)")
	eventAddCmd.Flags().StringVar(&eventCountry, "country", "", "Explicit country; overrides venue matching")
	eventAddCmd.Flags().StringVar(&eventDate, "date", "", "Event date YYYY-MM-DD (required)")
	eventAddCmd.Flags().StringVar(&eventStatus, "status", "", "Initial status (default planning)")
	eventAddCmd.MarkFlagRequired("venue")
	eventAddCmd.MarkFlagRequired("date")
}

func runEventAdd(cmd *cobra.Command, args []string) error {
	date, err := dates.Parse(eventDate)
	if err != nil {
		return err
	}

	body := models.Event{
		Name:    eventName,
		Venue:   eventVenue,
		Country: eventCountry,
		Date:    date,
		Status:  models.EventStatus(eventStatus),
	}

	var event models.Event
	if err := apiDecode(http.MethodPost, "/events", body, &event); err != nil {
		return err
	}

	fmt.Printf("Created event: %s\n", event.ID)
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	var events []models.Event
	if err := apiDecode(http.MethodGet, "/events", nil, &events); err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("No events found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tVENUE\tSTATUS\tNAME")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", truncateID(e.ID), e.Date, truncate(e.Venue, 30), e.Status, truncate(e.Name, 30))
	}
	w.Flush()
	return nil
}

func runEventShow(cmd *cobra.Command, args []string) error {
	var event models.Event
	if err := apiDecode(http.MethodGet, "/events/"+url.PathEscape(args[0]), nil, &event); err != nil {
		return err
	}
	result := cfg.Classifier().ClassifyEvent(event)

	fmt.Printf("ID:       %s\n", event.ID)
	if event.Name != "" {
		fmt.Printf("Name:     %s\n", event.Name)
	}
	fmt.Printf("Venue:    %s\n", event.Venue)
	fmt.Printf("Date:     %s\n", event.Date)
	fmt.Printf("Status:   %s\n", event.Status)
	fmt.Printf("Class:    %s\n", result.Class)
	if result.Country != "" {
		fmt.Printf("Country:  %s\n", result.Country)
	}
	fmt.Printf("Created:  %s\n", event.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runEventStatus(cmd *cobra.Command, args []string) error {
	body := map[string]string{"status": args[1]}

	var event models.Event
	if err := apiDecode(http.MethodPost, "/events/"+url.PathEscape(args[0])+"/status", body, &event); err != nil {
		return err
	}

	fmt.Printf("Event %s is now %s\n", truncateID(event.ID), event.Status)
	return nil
}
