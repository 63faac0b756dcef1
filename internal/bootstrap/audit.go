package bootstrap

import "context"

const (
	ActionServerStart    = "SERVER_START"
	ActionServerShutdown = "SERVER_SHUTDOWN"
)

// AuditLog is a process lifecycle record.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
