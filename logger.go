package randctl

import "log/slog"

// NopLogger returns the logger a controller uses when WithLogger is not
// given. Every level is disabled, so records are never formatted.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
