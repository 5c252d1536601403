package progress

import "context"

type contextKey string

const (
	sourceKey  contextKey = "star_source"
	sessionKey contextKey = "practice_session"
)

// Star sources recorded with each award.
const (
	SourceTracing = "tracing"
	SourceQuiz    = "quiz"
)

// WithSource labels stars added under ctx with what earned them.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// SourceFrom extracts the star source from the context.
func SourceFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sourceKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithSession attaches the practice session ID.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// SessionFrom extracts the practice session ID, or "".
func SessionFrom(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey).(string)
	return v
}
