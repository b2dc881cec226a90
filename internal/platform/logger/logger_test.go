package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RedactsContactDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Info("manufacturer created",
		"manufacturer_id", "m-1",
		"contact_email", "jane@example.com",
		"Phone", "+49 1234",
		"contact", map[string]interface{}{"name": "Jane", "email": "jane@example.com"},
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "m-1", fields["manufacturer_id"])
	assert.Equal(t, redacted, fields["contact_email"])
	assert.Equal(t, redacted, fields["Phone"])
	assert.Equal(t, map[string]interface{}{"name": "Jane", "email": redacted}, fields["contact"])
}

func TestLogger_WithKeepsRedaction(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core)).With("email", "x@example.com")

	log.Warn("lookup failed")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, redacted, logs.All()[0].ContextMap()["email"])
}

func TestLogger_OddKeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	NewFromZap(zap.New(core)).Debug("dangling", "status", 200, "orphan")

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, 200, logs.All()[0].ContextMap()["status"])
}

func TestNew(t *testing.T) {
	for _, mode := range []string{"production", "development", ""} {
		l, err := New(mode)
		require.NoError(t, err)
		assert.NotNil(t, l.SugaredLogger)
	}
}
