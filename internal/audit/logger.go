package audit

import (
	"go.uber.org/zap"
)

// Logger writes audit events to the structured log. Accepted appointment
// requests are not stored anywhere else.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

func (l *Logger) Log(ev Event) {
	l.log.Info("appointment data",
		zap.String("action", ev.Action),
		zap.String("session_id", ev.SessionID),
		zap.Time("at", ev.At),
		zap.String("full_name", ev.Request.FullName),
		zap.String("phone", ev.Request.Phone),
		zap.String("branch", ev.Request.Branch),
		zap.String("treatment", ev.Request.Treatment),
		zap.String("message", ev.Request.Message),
	)
}
