package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ridaofranco/eventdesk/internal/models"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the most recent audit entries",
	RunE:  runAudit,
}

var auditLimit int

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "Number of entries")
}

func runAudit(cmd *cobra.Command, args []string) error {
	body, err := apiGet("/audit?limit=" + strconv.Itoa(auditLimit))
	if err != nil {
		return err
	}

	var entries []models.AuditEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No audit entries")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tOUTCOME\tEVENT\tTASK\tDETAILS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04"), e.Action, e.Outcome,
			truncateID(e.EventID), truncateID(e.TaskID), truncate(e.Details, 40))
	}
	w.Flush()
	return nil
}
