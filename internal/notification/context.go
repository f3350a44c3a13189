package notification

import (
	"context"
	"net/http"
)

type contextKey struct{}

// Envelope is the response body of operations that raise toasts.
type Envelope struct {
	Data   interface{} `json:"data,omitempty"`
	Toasts []Toast     `json:"toasts"`
}

func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

func RecorderFrom(ctx context.Context) (*Recorder, bool) {
	r, ok := ctx.Value(contextKey{}).(*Recorder)
	return r, ok
}

// FromContext returns the request recorder, or a LogNotifier outside of a request.
func FromContext(ctx context.Context) Notifier {
	if r, ok := RecorderFrom(ctx); ok {
		return r
	}
	return LogNotifier{}
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := NewRecorder(LogNotifier{})
		next.ServeHTTP(w, r.WithContext(WithRecorder(r.Context(), rec)))
	})
}

// Wrap builds the response envelope for data and the toasts raised on ctx.
func Wrap(ctx context.Context, data interface{}) Envelope {
	env := Envelope{Data: data, Toasts: []Toast{}}
	if r, ok := RecorderFrom(ctx); ok {
		env.Toasts = r.Toasts()
	}
	return env
}
