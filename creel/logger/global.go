package logger

import (
	"log/slog"
	"time"
)

// LogSync logs one badge sync pass.
func LogSync(userID string, awarded, revoked int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "badges"),
		slog.String("user_id", userID),
		slog.Int("awarded", awarded),
		slog.Int("revoked", revoked),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Badge sync failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Badge sync completed", attrs...)
	}
}

// LogQuery logs database operations.
func LogQuery(query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs,
			slog.String("query", query),
			slog.Any("error", err),
		)...)
	} else {
		slog.Info("Query executed", append(attrs,
			slog.String("query", query),
		)...)
	}
}

// LogSystem logs system events.
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events.
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}
