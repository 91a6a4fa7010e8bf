// Package notify provides the notification sink used for aggregate outcomes.
package notify

import (
	"context"

	"github.com/go-pkgz/lgr"
)

// LogNotifier writes notifications to the application log. The browser
// extension replaces this with its own sink, the service only needs
// fire-and-forget semantics.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify records the notification
func (n *LogNotifier) Notify(_ context.Context, title, message string) {
	lgr.Printf("[INFO] notification: %s - %s", title, message)
}
