package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maternacare/homevisit/cmd/cli/commands"
	"github.com/maternacare/homevisit/internal/config"
	"github.com/maternacare/homevisit/pkg/clients/gmailclient"
	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/db/memory"
	"github.com/maternacare/homevisit/pkg/notify"
	"github.com/maternacare/homevisit/pkg/postgres"
	"github.com/maternacare/homevisit/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Materna Care CLI - Manage home visits",
		Long:  `A CLI tool for requesting home visits, matching volunteer caregivers and driving the visit lifecycle.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}

	// Add all commands
	rootCmd.AddCommand(commands.RequestVisitCmd(app))
	rootCmd.AddCommand(commands.SuggestCmd(app))
	rootCmd.AddCommand(commands.ApproveCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.CompleteCmd(app))
	rootCmd.AddCommand(commands.CancelCmd(app))
	rootCmd.AddCommand(commands.RescheduleCmd(app))
	rootCmd.AddCommand(commands.ListCandidatesCmd(app))
	rootCmd.AddCommand(commands.ListVisitsCmd(app))
	rootCmd.AddCommand(commands.SubmitAvailabilityCmd(app))
	rootCmd.AddCommand(commands.PlanRecurringCmd(app))
	rootCmd.AddCommand(commands.ApplyPlansCmd(app))
	rootCmd.AddCommand(commands.InboxCmd(app))
	rootCmd.AddCommand(commands.SeedCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store, matching engine and dispatcher
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		// No config file means the in-memory defaults
		app.Logger.Warn("No config file found, using defaults", zap.Error(err))
		app.Cfg = &config.Config{}
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Initialize store
	if app.Cfg.DatabaseURL != "" {
		app.Logger.Info("Connecting to database")
		pgdb, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pgdb.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Database = pgdb
	} else {
		app.Logger.Info("Using in-memory store")
		app.Database = memory.NewStore()
	}

	// Initialize matching engine
	app.Engine = matching.NewEngine(app.Database, app.Logger)

	// Initialize notification dispatcher
	app.Dispatcher = notify.NewStoreDispatcher(app.Database, app.Logger)
	if app.Cfg.EmailEnabled {
		app.Logger.Info("Loading OAuth client configuration")
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		app.Logger.Info("Initializing gmail client")
		gmailClient, err := gmailclient.NewClient(app.Ctx, oauthCfg, app.Cfg.GmailUserID)
		if err != nil {
			return fmt.Errorf("failed to create gmail client: %w", err)
		}
		app.Logger.Debug("Gmail client initialized successfully")

		app.Dispatcher = notify.NewMailDispatcher(
			app.Dispatcher, gmailClient, app.Database, app.Cfg.NotificationSubject, app.Logger)
	}

	app.Logger.Info("Application initialized successfully")
	return nil
}
