package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/arena-manager/internal/models"
)

// Store é onde o Logger grava; na aplicação é o repositório gorm.
type Store interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

// Logger grava eventos como linhas de audit_logs.
type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	entry := models.AuditLog{
		RequestID:     ev.RequestID,
		ActorID:       ev.ActorID,
		ActorUsername: ev.ActorUsername,
		ActorRole:     ev.ActorRole,
		Action:        ev.Action,
		Entity:        ev.Entity,
		EntityID:      ev.EntityID,
		Metadata:      encodeMetadata(ev.Metadata),
	}
	return l.store.Create(ctx, &entry)
}

func encodeMetadata(meta any) string {
	if meta == nil {
		return ""
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return ""
	}
	return string(b)
}

// ZapSink registra a trilha no log quando não há banco configurado.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("audit")}
}

func (z *ZapSink) Log(_ context.Context, ev Event) error {
	fields := []zap.Field{
		zap.String("request_id", ev.RequestID),
		zap.String("actor", ev.ActorUsername),
		zap.String("role", ev.ActorRole),
		zap.String("entity", ev.Entity),
	}
	if ev.ActorID != nil {
		fields = append(fields, zap.Uint("actor_id", *ev.ActorID))
	}
	if ev.EntityID != nil {
		fields = append(fields, zap.Uint("entity_id", *ev.EntityID))
	}
	if meta := encodeMetadata(ev.Metadata); meta != "" {
		fields = append(fields, zap.String("metadata", meta))
	}
	z.log.Info(ev.Action, fields...)
	return nil
}
