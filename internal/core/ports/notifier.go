package ports

import (
	"context"
)

// NotificationKind selects the message template sent to a recipient.
type NotificationKind int

const (
	// NotificationCompletionCode carries the one-time code the recipient
	// hands to the worker to confirm delivery.
	NotificationCompletionCode NotificationKind = iota + 1
)

// Notification is a message addressed to an order recipient.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Code      string
}

// Notifier delivers notifications to order recipients. Implementations
// return a NotificationError on delivery failure; callers decide whether the
// failure aborts the surrounding operation.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}
