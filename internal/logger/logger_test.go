package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{zlog: zerolog.New(buf).With().Timestamp().Logger()}
}

func TestNew_DevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("development", &buf)

	if log.GetZerolog() == nil {
		t.Fatal("Expected zerolog instance to be available")
	}

	log.Debug("visible in development", nil)
	if !strings.Contains(buf.String(), "visible in development") {
		t.Error("Expected debug output in development mode")
	}
}

func TestNew_ProductionMode(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("production", &buf)

	log.Debug("hidden in production", nil)
	if buf.Len() != 0 {
		t.Error("Debug message should not appear in production logging")
	}

	log.Info("building created", Fields{"building_id": 7})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got error: %v", err)
	}
	if entry["message"] != "building created" {
		t.Errorf("Unexpected message %v", entry["message"])
	}
	if entry["service"] != "heritage" {
		t.Errorf("Expected service field, got %v", entry["service"])
	}
	if entry["building_id"] != float64(7) {
		t.Errorf("Expected building_id field, got %v", entry["building_id"])
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name  string
		emit  func(*Logger)
		level string
		want  string
	}{
		{
			name:  "debug",
			emit:  func(l *Logger) { l.Debug("debug message", Fields{"key": "value1"}) },
			level: "debug",
			want:  "value1",
		},
		{
			name:  "info",
			emit:  func(l *Logger) { l.Info("info message", Fields{"zone": "Centre"}) },
			level: "info",
			want:  "Centre",
		},
		{
			name:  "warn",
			emit:  func(l *Logger) { l.Warn("warning message", Fields{"reason": "not_found"}) },
			level: "warn",
			want:  "not_found",
		},
		{
			name:  "error",
			emit:  func(l *Logger) { l.Error("error occurred", errors.New("test error"), nil) },
			level: "error",
			want:  "test error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newBufferLogger(&buf))

			output := buf.String()
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("Expected level %s in %s", tt.level, output)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("Expected %q in %s", tt.want, output)
			}
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	child := newBufferLogger(&buf).With(Fields{"entity": "zone", "zone_id": 3})

	child.Info("zone loaded", nil)

	output := buf.String()
	if !strings.Contains(output, `"entity":"zone"`) {
		t.Error("Expected log output to contain entity field from context")
	}
	if !strings.Contains(output, `"zone_id":3`) {
		t.Error("Expected log output to contain zone_id field from context")
	}
}

func TestWithRequestIDAndComponent(t *testing.T) {
	var buf bytes.Buffer
	child := newBufferLogger(&buf).WithRequestID("req-12345").WithComponent("dashboard")

	child.Info("request received", nil)

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-12345"`) {
		t.Error("Expected log output to contain request ID")
	}
	if !strings.Contains(output, `"component":"dashboard"`) {
		t.Error("Expected log output to contain component")
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("dropped", Fields{"k": "v"})
	log.Error("dropped", errors.New("boom"), nil)
}
