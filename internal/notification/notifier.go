// Package notification delivers toast-style outcome messages to the caller.
//
// Notifications are fire-and-forget: Notify never fails, and delivery to the
// client is best effort.
package notification

import (
	"context"
	"sync"

	"github.com/saulo-duarte/chronos-events/internal/config"
	"github.com/sirupsen/logrus"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Toast struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"variant"`
}

type Notifier interface {
	Notify(ctx context.Context, title, message string, severity Severity)
}

// LogNotifier writes toasts to the application log only.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, title, message string, severity Severity) {
	entry := config.WithContext(ctx).WithFields(logrus.Fields{
		"toast_title":    title,
		"toast_severity": severity,
	})
	switch severity {
	case SeverityError:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Recorder keeps the toasts raised while handling one request.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
	next   Notifier
}

func NewRecorder(next Notifier) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Notify(ctx context.Context, title, message string, severity Severity) {
	r.mu.Lock()
	r.toasts = append(r.toasts, Toast{Title: title, Message: message, Severity: severity})
	r.mu.Unlock()

	if r.next != nil {
		r.next.Notify(ctx, title, message, severity)
	}
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

func Success(ctx context.Context, n Notifier, message string) {
	n.Notify(ctx, "Success", message, SeveritySuccess)
}

// Error raises an error toast with the best message that can be extracted from err.
func Error(ctx context.Context, n Notifier, title string, err error) {
	n.Notify(ctx, title, Message(err), SeverityError)
}
