package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// ApplyPlansCmd creates the applyPlans command
func ApplyPlansCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "applyPlans",
		Short: "Create visit requests from the standing plans in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Cfg.StandingPlans) == 0 {
				fmt.Println("\nNo standing plans configured.")
				return nil
			}

			start := time.Now().Truncate(24 * time.Hour)
			total := 0
			for _, plan := range app.Cfg.StandingPlans {
				app.Logger.Info("Applying standing plan",
					zap.Int64("mother_id", plan.MotherID),
					zap.String("rule", plan.RRule))

				result, err := services.PlanRecurringVisits(
					app.Ctx, app.Database, app.Engine, app.Dispatcher, app.Logger,
					plan.MotherID, plan.RRule, start, plan.Time, plan.Notes)
				if err != nil {
					return fmt.Errorf("standing plan for mother %d failed: %w", plan.MotherID, err)
				}
				total += len(result.Results)
			}

			fmt.Printf("\nCreated %d visits from %d standing plans.\n", total, len(app.Cfg.StandingPlans))
			return nil
		},
	}
}
