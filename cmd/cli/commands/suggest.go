package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <visit_id>",
		Short: "Recompute the best candidate for a visit without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			visitID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("visit_id must be a number: %w", err)
			}

			app.Logger.Debug("suggest command", zap.Int64("visit_id", visitID))

			volunteer, err := services.Suggest(app.Ctx, app.Database, app.Engine, app.Logger, visitID)
			if err != nil {
				return err
			}

			if volunteer == nil {
				fmt.Println("\nNo candidate qualifies for this visit right now.")
				return nil
			}
			fmt.Printf("\nBest candidate: %s (#%d), service limit %d\n",
				volunteer.Name, volunteer.ID, volunteer.ServiceLimit)
			return nil
		},
	}
}
