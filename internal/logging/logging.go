// Package logging builds the zerolog loggers shared by the server and its middleware.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TimestampField is the key carrying the event time in JSON output.
const TimestampField = "ts"

// Options configures New.
type Options struct {
	Level    string
	Pretty   bool
	Location *time.Location
}

// New returns a logger writing one JSON object per line to w.
// Unknown levels fall back to info; a nil Location means UTC.
func New(w io.Writer, opts Options) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	if opts.Pretty {
		out := zerolog.ConsoleWriter{
			Out:             w,
			NoColor:         true,
			FormatTimestamp: consoleTimestamp(loc),
		}
		return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	}

	return zerolog.New(w).Level(lvl).Hook(timestampHook{loc: loc})
}

// consoleTimestamp renders the event time in loc for the console writer.
func consoleTimestamp(loc *time.Location) zerolog.Formatter {
	return func(i interface{}) string {
		s, ok := i.(string)
		if !ok {
			return ""
		}
		ts, err := time.Parse(zerolog.TimeFieldFormat, s)
		if err != nil {
			return s
		}
		return ts.In(loc).Format(time.RFC3339)
	}
}

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(TimestampField, time.Now().In(h.loc).Format(time.RFC3339Nano))
}
