package diagnostic

import (
	"github.com/rs/zerolog"
)

// ZerologSink writes diagnostics to a zerolog logger.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a sink that logs to logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Report implements Sink.
func (s *ZerologSink) Report(d Diagnostic) {
	level := zerolog.InfoLevel
	if d.Severity == SeverityWarning {
		level = zerolog.WarnLevel
	}

	ev := s.logger.WithLevel(level).Str("code", d.Code)

	if d.Title != "" {
		ev = ev.Str("title", d.Title)
	}

	if d.Block != "" {
		ev = ev.Str("block", d.Block).Float64("score", d.Score)
	}

	ev.Msg(d.Message)
}
