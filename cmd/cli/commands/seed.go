package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maternacare/homevisit/pkg/core/model"
	"github.com/maternacare/homevisit/pkg/core/services"
	"github.com/maternacare/homevisit/pkg/db/memory"
)

// SeedCmd creates the seed command. It only works against the in-memory
// store and exists so the full flow can be exercised without a database.
func SeedCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo mothers, volunteers and availability into the in-memory store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, ok := app.Database.(*memory.Store)
			if !ok {
				return fmt.Errorf("seed only works with the in-memory store; unset databaseURL")
			}

			store.PutAdmin(model.User{ID: 1, Name: "Coordinator", Email: "coordinator@example.org"})

			store.PutMother(model.Mother{
				ID: 10, Name: "Amina Yusuf", Email: "amina@example.org",
				DueDate: time.Now().AddDate(0, 2, 0), RiskLevel: model.RiskHigh,
			})
			store.PutMother(model.Mother{
				ID: 11, Name: "Sara Novak", Email: "sara@example.org",
				DueDate: time.Now().AddDate(0, 4, 0), RiskLevel: model.RiskLow,
			})

			store.PutVolunteer(model.Volunteer{
				ID: 20, Name: "Grace Adeyemi", Email: "grace@example.org",
				Skills: "Nurse, first aid", ServiceLimit: 3,
			})
			store.PutVolunteer(model.Volunteer{
				ID: 21, Name: "Tom Becker", Email: "tom@example.org",
				Skills: "Driver", ServiceLimit: 2,
			})

			days := []string{"Monday", "Wednesday", "Friday"}
			for _, id := range []int64{20, 21} {
				for _, day := range days {
					if _, err := services.SubmitAvailability(app.Ctx, store, app.Logger, id, day, ""); err != nil {
						return err
					}
				}
			}

			fmt.Println("\nSeeded 1 admin, 2 mothers, 2 volunteers and their availability.")
			return nil
		},
	}
}
