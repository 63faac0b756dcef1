package bootstrap

import (
	"context"
	"time"

	"go-fieldtrack/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit records through zap under the "audit" logger name,
// tagged with the service and environment so they can be filtered downstream.
type StdoutAuditLogger struct {
	service string
	env     string
}

func NewStdoutAuditLogger(service, env string) *StdoutAuditLogger {
	return &StdoutAuditLogger{service: service, env: env}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("service", l.service),
		zap.String("env", l.env),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
