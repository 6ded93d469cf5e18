// Package notify delivers recipient notifications over SMTP.
package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// SMTPConfig holds the mail relay connection settings.
type SMTPConfig struct {
	Host string
	Port string
	From string
}

// SMTPNotifier sends notifications as plain-text email through a relay.
type SMTPNotifier struct {
	cfg SMTPConfig
	// send is swappable for tests
	send func(addr, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a notifier for the given relay configuration.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if cfg.Port == "" {
		return nil, errs.NewValueIsRequiredError("port")
	}
	if cfg.From == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	return &SMTPNotifier{
		cfg: cfg,
		send: func(addr, from string, to []string, msg []byte) error {
			return smtp.SendMail(addr, nil, from, to, msg)
		},
	}, nil
}

// Send delivers the notification to the recipient's email address.
func (n *SMTPNotifier) Send(_ context.Context, notification ports.Notification) error {
	if notification.Recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	subject, body := render(notification)
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, notification.Recipient, subject, body,
	)

	addr := n.cfg.Host + ":" + n.cfg.Port
	if err := n.send(addr, n.cfg.From, []string{notification.Recipient}, []byte(msg)); err != nil {
		return errs.NewNotificationError(notification.Recipient, err)
	}

	return nil
}

func render(notification ports.Notification) (subject, body string) {
	switch notification.Kind {
	case ports.NotificationCompletionCode:
		return "Your delivery confirmation code",
			fmt.Sprintf(
				"Your courier is on the way. Give them this code to confirm delivery: %s\n"+
					"The code expires in a couple of minutes; a new one is sent on each attempt.",
				notification.Code,
			)
	default:
		return "Delivery update", "Your delivery status has changed."
	}
}
