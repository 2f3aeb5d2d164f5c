package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/db"
)

// ListVisitsCmd creates the listVisits command
func ListVisitsCmd(app *AppContext) *cobra.Command {
	var (
		status      string
		motherID    int64
		volunteerID int64
	)

	cmd := &cobra.Command{
		Use:   "listVisits",
		Short: "List visits, optionally filtered by status, mother or volunteer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := db.VisitFilter{
				MotherID:    motherID,
				VolunteerID: volunteerID,
			}
			if status != "" {
				filter.Statuses = []model.VisitStatus{model.VisitStatus(status)}
			}

			visits, err := app.Database.ListVisits(app.Ctx, filter)
			if err != nil {
				return err
			}

			if len(visits) == 0 {
				fmt.Println("\nNo visits match.")
				return nil
			}
			fmt.Printf("\n%-6s %-12s %-7s %-8s %-10s %-18s %s\n",
				"ID", "Date", "Time", "Mother", "Volunteer", "Status", "Priority")
			for _, v := range visits {
				volunteer := "-"
				if v.VolunteerID != 0 {
					volunteer = fmt.Sprintf("%d", v.VolunteerID)
				}
				fmt.Printf("%-6d %-12s %-7s %-8d %-10s %-18s %s\n",
					v.ID, v.Date.Format("2006-01-02"), v.Time, v.MotherID,
					volunteer, v.Status, v.Priority)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status, e.g. Pending")
	cmd.Flags().Int64Var(&motherID, "mother", 0, "filter by mother id")
	cmd.Flags().Int64Var(&volunteerID, "volunteer", 0, "filter by volunteer id")
	return cmd
}
