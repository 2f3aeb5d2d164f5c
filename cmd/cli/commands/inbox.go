package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maternacare/homevisit/pkg/core/services"
)

// InboxCmd creates the inbox command
func InboxCmd(app *AppContext) *cobra.Command {
	var markRead string

	cmd := &cobra.Command{
		Use:   "inbox <user_id>",
		Short: "Show a user's notifications, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("user_id must be a number: %w", err)
			}

			if markRead != "" {
				if err := services.MarkNotificationRead(app.Ctx, app.Database, app.Logger, markRead); err != nil {
					return err
				}
			}

			notifications, err := services.Inbox(app.Ctx, app.Database, app.Logger, userID)
			if err != nil {
				return err
			}

			if len(notifications) == 0 {
				fmt.Println("\nNo notifications.")
				return nil
			}
			fmt.Println()
			for _, n := range notifications {
				marker := "*"
				if n.Read {
					marker = " "
				}
				fmt.Printf("%s %s  %s  (%s)\n", marker, n.CreatedAt.Format("2006-01-02 15:04"), n.Message, n.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&markRead, "mark-read", "", "notification id to mark as read first")
	return cmd
}
