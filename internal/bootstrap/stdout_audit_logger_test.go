package bootstrap

import (
	"context"
	"testing"

	"go-fieldtrack/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := contextutil.WithRequestID(context.Background(), "req-42")
	NewStdoutAuditLogger("fieldtrack-api", "test").Log(ctx, AuditLog{
		Action:  ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"reason": "interrupt"},
	})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, ActionServerShutdown, fields["action"])
	assert.Equal(t, "fieldtrack-api", fields["service"])
	assert.Equal(t, "test", fields["env"])
	assert.Equal(t, "req-42", fields["request_id"])
}
