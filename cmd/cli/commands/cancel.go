package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// CancelCmd creates the cancel command
func CancelCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <visit_id>",
		Short: "Cancel a visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("visit_id must be a number: %w", err)
			}
			actorID, err := actorFlag(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("cancel command",
				zap.Int64("visit_id", visitID),
				zap.Int64("actor_id", actorID))

			visit, err := services.CancelVisit(app.Ctx, app.Database, app.Dispatcher, app.Logger, visitID, actorID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit #%d cancelled\n", visit.ID)
			return nil
		},
	}

	addActorFlag(cmd)
	return cmd
}
