package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maternacare/homevisit/pkg/core/model"
)

// MailSender sends an email. Implemented by gmailclient.Client.
type MailSender interface {
	SendEmail(to, subject, body string) error
}

// MailDirectory resolves user ids to addresses
type MailDirectory interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
}

// MailDispatcher decorates another dispatcher with email delivery. The record
// is always written first; a failed email is logged and dropped, never
// surfaced, so delivery cannot gate a transition.
type MailDispatcher struct {
	next      Dispatcher
	sender    MailSender
	directory MailDirectory
	subject   string
	logger    *zap.Logger
}

// NewMailDispatcher wraps next with email delivery
func NewMailDispatcher(next Dispatcher, sender MailSender, directory MailDirectory, subject string, logger *zap.Logger) *MailDispatcher {
	return &MailDispatcher{
		next:      next,
		sender:    sender,
		directory: directory,
		subject:   subject,
		logger:    logger,
	}
}

func (d *MailDispatcher) Send(ctx context.Context, userID int64, message string) error {
	if err := d.next.Send(ctx, userID, message); err != nil {
		return err
	}

	user, err := d.directory.GetUser(ctx, userID)
	if err != nil {
		d.logger.Warn("Skipping email, user lookup failed",
			zap.Int64("user_id", userID), zap.Error(err))
		return nil
	}
	d.mail(user, message)
	return nil
}

func (d *MailDispatcher) BroadcastRole(ctx context.Context, role model.Role, message string) error {
	if err := d.next.BroadcastRole(ctx, role, message); err != nil {
		return err
	}

	users, err := d.directory.ListUsersByRole(ctx, role)
	if err != nil {
		d.logger.Warn("Skipping emails, role lookup failed",
			zap.String("role", string(role)), zap.Error(err))
		return nil
	}
	for i := range users {
		d.mail(&users[i], message)
	}
	return nil
}

func (d *MailDispatcher) mail(user *model.User, message string) {
	if user.Email == "" {
		return
	}
	if err := d.sender.SendEmail(user.Email, d.subject, message); err != nil {
		d.logger.Warn(fmt.Sprintf("Failed to email %s", user.Email), zap.Error(err))
	}
}

var _ Dispatcher = (*MailDispatcher)(nil)
