package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// SubmitAvailabilityCmd creates the submitAvailability command
func SubmitAvailabilityCmd(app *AppContext) *cobra.Command {
	var timeSlot string

	cmd := &cobra.Command{
		Use:   "submitAvailability <volunteer_id> <day>",
		Short: "Record that a volunteer is free on a weekday",
		Long: "Record that a volunteer is free on a weekday, e.g. " +
			"submitAvailability 12 Monday --time 09:00. Omitting --time means " +
			"available the whole day.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("volunteer_id must be a number: %w", err)
			}

			entry, err := services.SubmitAvailability(app.Ctx, app.Database, app.Logger, volunteerID, args[1], timeSlot)
			if err != nil {
				return err
			}

			fmt.Printf("\nAvailability recorded for volunteer #%d on %s", entry.VolunteerID, entry.Day)
			if entry.TimeSlot != "" {
				fmt.Printf(" at %s", entry.TimeSlot)
			}
			fmt.Println()

			entries, err := app.Database.ListAvailabilityByVolunteer(app.Ctx, volunteerID)
			if err != nil {
				return err
			}
			fmt.Printf("Current availability (%d entries):\n", len(entries))
			for _, e := range entries {
				slot := e.TimeSlot
				if slot == "" {
					slot = "all day"
				}
				fmt.Printf("  %s: %s\n", e.Day, slot)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&timeSlot, "time", "", "time slot (HH:MM), blank for all day")
	return cmd
}
