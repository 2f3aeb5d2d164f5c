package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// CompleteCmd creates the complete command
func CompleteCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <visit_id>",
		Short: "Mark a scheduled visit as completed",
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

			app.Logger.Debug("complete command",
				zap.Int64("visit_id", visitID),
				zap.Int64("actor_id", actorID))

			visit, err := services.CompleteVisit(app.Ctx, app.Database, app.Dispatcher, app.Logger, visitID, actorID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Visit #%d completed\n", visit.ID)
			return nil
		},
	}

	addActorFlag(cmd)
	return cmd
}
