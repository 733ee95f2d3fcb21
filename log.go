package arkparser

import (
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger is used when LoadOptions.Logger is nil (including when no
// LoadOptions is passed to Load). It is filtered to Error level by default, matching
// the teacher's own logger default of surfacing only actionable output
// unless the caller opts into more verbosity.
func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.ErrorLevel).With().Timestamp().Logger()
}

func resolveLogger(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return defaultLogger()
	}
	return *l
}
