package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/internal/config"
	"github.com/maternacare/homevisit/pkg/core/matching"
	"github.com/maternacare/homevisit/pkg/db"
	"github.com/maternacare/homevisit/pkg/notify"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg        *config.Config
	Database   db.Database
	Engine     *matching.Engine
	Dispatcher notify.Dispatcher
	Logger     *zap.Logger
	Ctx        context.Context
}
