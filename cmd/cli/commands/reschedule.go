package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// RescheduleCmd creates the reschedule command
func RescheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reschedule <visit_id> <date> <time>",
		Short: "Change a visit's date and time",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("visit_id must be a number: %w", err)
			}
			date, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}
			if _, err := time.Parse("15:04", args[2]); err != nil {
				return fmt.Errorf("time must be HH:MM: %w", err)
			}
			actorID, err := actorFlag(cmd)
			if err != nil {
				return err
			}
			notes, _ := cmd.Flags().GetString("notes")

			app.Logger.Debug("reschedule command",
				zap.Int64("visit_id", visitID),
				zap.String("new_date", args[1]))

			visit, err := services.RescheduleVisit(app.Ctx, app.Database, app.Dispatcher, app.Logger,
				visitID, actorID, date, args[2], notes)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit #%d rescheduled to %s %s (status %s)\n",
				visit.ID, args[1], args[2], visit.Status)
			return nil
		},
	}

	addActorFlag(cmd)
	cmd.Flags().String("notes", "", "Replacement notes for the visit")
	return cmd
}
