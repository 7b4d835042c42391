package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetQuiet(false)
		SetDebug(false)
		SetLogger(nil)
	})
	return &out, &errOut
}

func TestConsoleStreams(t *testing.T) {
	tests := []struct {
		name      string
		emit      func()
		toStderr  bool
		wantParts []string
	}{
		{name: "error", emit: func() { Error("something", "went wrong") }, toStderr: true, wantParts: []string{"Error:", "something went wrong"}},
		{name: "warning", emit: func() { Warning("this is a warning") }, toStderr: true, wantParts: []string{"Warning:", "this is a warning"}},
		{name: "success", emit: func() { Success("operation completed") }, wantParts: []string{checkmark, "operation completed"}},
		{name: "info", emit: func() { Info("fyi") }, wantParts: []string{"fyi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := captureOutput(t)
			tt.emit()

			got, other := out.String(), errOut.String()
			if tt.toStderr {
				got, other = other, got
			}
			for _, part := range tt.wantParts {
				assert.Contains(t, got, part)
			}
			assert.Empty(t, other)
		})
	}
}

func TestQuietSuppressesInfoAndSuccess(t *testing.T) {
	out, errOut := captureOutput(t)
	SetQuiet(true)

	Info("hidden")
	Success("hidden too")
	Warning("shown")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "shown")
}

func TestDebugIsGated(t *testing.T) {
	_, errOut := captureOutput(t)

	Debug("invisible")
	require.Empty(t, errOut.String())

	SetDebug(true)
	Debug("visible")
	require.Contains(t, errOut.String(), "Debug:")
	require.Contains(t, errOut.String(), "visible")
}

func TestMessagesMirrorToLogger(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)

	Error("e")
	Warning("w")
	Info("i")
	Success("s")

	require.Equal(t, []string{"error:e", "warn:w", "info:i", "info:s"}, rec.entries)
}
