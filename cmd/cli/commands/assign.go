package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <visit_id> <volunteer_id>",
		Short: "Manually assign a volunteer to a visit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("visit_id must be a number: %w", err)
			}
			volunteerID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("volunteer_id must be a number: %w", err)
			}
			actorID, err := actorFlag(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("assign command",
				zap.Int64("visit_id", visitID),
				zap.Int64("volunteer_id", volunteerID),
				zap.Int64("actor_id", actorID))

			visit, err := services.AssignVolunteer(app.Ctx, app.Database, app.Dispatcher, app.Logger, visitID, volunteerID, actorID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit #%d scheduled with volunteer #%d\n", visit.ID, visit.VolunteerID)
			return nil
		},
	}

	addActorFlag(cmd)
	return cmd
}
