package audit

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Hyken1/OdontoClinic/internal/models"
)

// Logger persists events as audit_logs rows.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		Key:       ev.Key,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}

	return l.db.WithContext(ctx).Create(&log).Error
}

// LogSink writes events to the application log when no audit database is
// configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(_ context.Context, ev Event) error {
	s.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Str("key", ev.Key).
		Interface("metadata", ev.Metadata).
		Time("at", ev.At).
		Msg("audit")
	return nil
}
