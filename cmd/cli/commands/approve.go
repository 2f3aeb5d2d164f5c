package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <visit_id>",
		Short: "Approve the suggested volunteer for a visit",
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

			app.Logger.Debug("approve command",
				zap.Int64("visit_id", visitID),
				zap.Int64("actor_id", actorID))

			visit, err := services.ApproveSuggestion(app.Ctx, app.Database, app.Dispatcher, app.Logger, visitID, actorID)
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

func addActorFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("actor", 0, "Acting user id")
	cmd.MarkFlagRequired("actor")
}

func actorFlag(cmd *cobra.Command) (int64, error) {
	actorID, _ := cmd.Flags().GetInt64("actor")
	if actorID == 0 {
		return 0, fmt.Errorf("--actor is required")
	}
	return actorID, nil
}
