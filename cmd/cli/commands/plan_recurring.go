package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// PlanRecurringCmd creates the planRecurring command
func PlanRecurringCmd(app *AppContext) *cobra.Command {
	var (
		timeOfDay string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "planRecurring <mother_id> <rrule> <start_date>",
		Short: "Expand a recurrence rule into a series of visit requests",
		Long: "Expand a recurrence rule into a series of visit requests, e.g. " +
			"planRecurring 3 \"FREQ=WEEKLY;BYDAY=MO;COUNT=4\" 2026-09-07 --time 10:00",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			motherID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("mother_id must be a number: %w", err)
			}
			startDate, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("start_date must be YYYY-MM-DD: %w", err)
			}

			app.Logger.Debug("planRecurring command",
				zap.Int64("mother_id", motherID),
				zap.String("rule", args[1]))

			result, err := services.PlanRecurringVisits(
				app.Ctx, app.Database, app.Engine, app.Dispatcher, app.Logger,
				motherID, args[1], startDate, timeOfDay, notes)
			if err != nil {
				return err
			}

			fmt.Printf("\nCreated %d visits:\n", len(result.Results))
			for _, r := range result.Results {
				status := "pending manual assignment"
				if r.SuggestedVolunteer != nil {
					status = fmt.Sprintf("suggested %s", r.SuggestedVolunteer.Name)
				}
				fmt.Printf("  Visit #%d on %s (%s)\n",
					r.Visit.ID, r.Visit.Date.Format("2006-01-02"), status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&timeOfDay, "time", "", "preferred time of day (HH:MM)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes for every visit in the series")
	return cmd
}
