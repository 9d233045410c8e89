package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

func TestEnabledLevels(t *testing.T) {
	levels := enabledLevels(slog.WarnLevel)

	assert.Contains(t, levels, slog.ErrorLevel)
	assert.Contains(t, levels, slog.WarnLevel)
	assert.NotContains(t, levels, slog.InfoLevel)
	assert.NotContains(t, levels, slog.DebugLevel)
}

func TestWithServiceNameDoesNotMutateInput(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	in := Fields{"request_id": "r1"}

	out := withServiceName(in)

	assert.Equal(t, DefaultServiceName, out["service_name"])
	assert.Equal(t, "r1", out["request_id"])
	assert.NotContains(t, in, "service_name")
}

func TestWithServiceNameFromEnv(t *testing.T) {
	t.Setenv("SERVICE_NAME", "web-2")
	assert.Equal(t, "web-2", withServiceName(nil)["service_name"])

	kept := withServiceName(Fields{"service_name": "explicit"})
	assert.Equal(t, "explicit", kept["service_name"])
}

func TestInitDefaultsToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	Init("  ")
	assert.NotNil(t, Log)
	InfoWithFields("init test", Fields{"k": "v"})
}

type recordingLogger struct {
	Logger
	calls []string
}

func (r *recordingLogger) Debug(args ...any) { r.calls = append(r.calls, "debug") }
func (r *recordingLogger) Info(args ...any)  { r.calls = append(r.calls, "info") }
func (r *recordingLogger) Warn(args ...any)  { r.calls = append(r.calls, "warn") }
func (r *recordingLogger) Error(args ...any) { r.calls = append(r.calls, "error") }

func TestWithFieldsKeepsLevelForCustomLogger(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	rec := &recordingLogger{}
	Log = rec

	DebugWithFields("d", nil)
	InfoWithFields("i", nil)
	WarnWithFields("w", nil)
	ErrorWithFields("e", nil)

	assert.Equal(t, []string{"debug", "info", "warn", "error"}, rec.calls)
}
