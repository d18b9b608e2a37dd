package log

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	logger := New()
	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if logger.GetLogrus() == nil {
		t.Fatal("GetLogrus() returned nil")
	}
}

func TestNew_LevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := New()
	if got := logger.GetLogrus().GetLevel(); got != logrus.DebugLevel {
		t.Errorf("New() level = %v; want debug", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"bogus", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	logger := New()

	logger.SetLevel("error")
	if got := logger.GetLogrus().GetLevel(); got != logrus.ErrorLevel {
		t.Errorf("SetLevel(error) level = %v; want error", got)
	}

	logger.SetLevel("nonsense")
	if got := logger.GetLogrus().GetLevel(); got != logrus.InfoLevel {
		t.Errorf("SetLevel(nonsense) level = %v; want info fallback", got)
	}
}

func TestWithField(t *testing.T) {
	logger := New()

	entry := logger.WithField("component", "session")
	if entry.Data["component"] != "session" {
		t.Error("WithField did not attach the field")
	}

	entry = logger.WithFields(logrus.Fields{"a": 1, "b": 2})
	if len(entry.Data) != 2 {
		t.Errorf("WithFields attached %d fields; want 2", len(entry.Data))
	}
}
