package events

import "context"

type silenceKey struct{}

// Silence marks ctx so request outcomes publish no notification events.
// Background side effects run on a silenced context to keep their failures
// out of the user-facing feed; session-expiry signals are not affected.
func Silence(ctx context.Context) context.Context {
	return context.WithValue(ctx, silenceKey{}, true)
}

// Silenced reports whether notification events are suppressed on ctx.
func Silenced(ctx context.Context) bool {
	silenced, _ := ctx.Value(silenceKey{}).(bool)
	return silenced
}
