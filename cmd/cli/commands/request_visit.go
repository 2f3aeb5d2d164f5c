package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// RequestVisitCmd creates the requestVisit command
func RequestVisitCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requestVisit <mother_id> <date> <time>",
		Short: "Request a home visit for a mother",
		Long:  "Create a visit request, run the matching engine and notify administrators of the outcome. Date is YYYY-MM-DD, time is HH:MM.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			motherID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("mother_id must be a number: %w", err)
			}
			date, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}
			if _, err := time.Parse("15:04", args[2]); err != nil {
				return fmt.Errorf("time must be HH:MM: %w", err)
			}
			notes, _ := cmd.Flags().GetString("notes")

			app.Logger.Debug("requestVisit command",
				zap.Int64("mother_id", motherID),
				zap.String("date", args[1]),
				zap.String("time", args[2]))

			result, err := services.RequestVisit(
				app.Ctx, app.Database, app.Engine, app.Dispatcher, app.Logger,
				motherID, date, args[2], notes,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit #%d requested (%s, priority %s)\n",
				result.Visit.ID, result.Visit.Status, result.Visit.Priority)
			if result.SuggestedVolunteer != nil {
				fmt.Printf("Suggested volunteer: %s (#%d)\n",
					result.SuggestedVolunteer.Name, result.SuggestedVolunteer.ID)
			} else {
				fmt.Println("No volunteer available - manual assignment needed.")
			}
			return nil
		},
	}

	cmd.Flags().String("notes", "", "Free-text notes for the visit")
	return cmd
}
