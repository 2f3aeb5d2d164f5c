package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// ListCandidatesCmd creates the listCandidates command
func ListCandidatesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listCandidates",
		Short: "Show every volunteer with their current workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actorID, err := actorFlag(cmd)
			if err != nil {
				return err
			}

			candidates, err := services.ListCandidates(app.Ctx, app.Database, app.Logger, actorID)
			if err != nil {
				return err
			}

			fmt.Printf("\n%-6s %-24s %-8s %-10s %-6s\n", "ID", "Name", "Load", "Limit", "Free")
			for _, c := range candidates {
				fmt.Printf("%-6d %-24s %-8d %-10d %-6d\n",
					c.Volunteer.ID, c.Volunteer.Name, c.ActiveLoad, c.Volunteer.ServiceLimit, c.Remaining)
			}
			return nil
		},
	}
	addActorFlag(cmd)
	return cmd
}
