package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	for value, want := range map[string]bool{"": false, "0": false, "false": false, "1": true, "TRUE": true, "on": true} {
		t.Setenv("OTEL_ENABLED", value)
		assert.Equal(t, want, Enabled(), "OTEL_ENABLED=%q", value)
	}
}

func TestSampleRatio(t *testing.T) {
	tests := map[string]float64{"": 1, "0.25": 0.25, "-3": 0, "7": 1, "abc": 1}
	for value, want := range tests {
		t.Setenv("OTEL_SAMPLER_RATIO", value)
		assert.Equal(t, want, sampleRatio(), "OTEL_SAMPLER_RATIO=%q", value)
	}
}

func TestHeaders(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=abc, broken, =nokey, tenant=acme")
	assert.Equal(t, map[string]string{"x-api-key": "abc", "tenant": "acme"}, headers())

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	assert.Nil(t, headers())
}
