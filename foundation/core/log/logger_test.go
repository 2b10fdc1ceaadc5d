// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, formatters, context fields and
//              error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Reworked for the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"trace", LevelTrace, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TEXT"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(TEXT) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("entries below level written: %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "visible") {
		t.Errorf("warn entry missing: %q", buf.String())
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("todctl").WithField("component", "timex").Info("parsed", Fields{"value": "12:30:00"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]string{
		"level":     "info",
		"message":   "parsed",
		"logger":    "todctl",
		"component": "timex",
		"value":     "12:30:00",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("rejected", Fields{"minute": 61, "hour": 1})

	if !strings.Contains(buf.String(), "[hour=1 minute=61]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestLogger_WithDoesNotMutate(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	_ = logger.WithField("extra", true).WithLevel(LevelError)

	logger.Info("plain")
	if strings.Contains(buf.String(), "extra") {
		t.Errorf("WithField mutated the receiver: %q", buf.String())
	}
	if logger.GetLevel() != LevelInfo {
		t.Errorf("WithLevel mutated the receiver: %v", logger.GetLevel())
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity maps to info",
			err:       mdwerror.New("invalid time").WithCode(mdwerror.CodeInvalidTime).WithDetail("hour", 25),
			wantLevel: "info",
			wantCode:  "INVALID_TIME",
		},
		{
			name:      "high severity maps to error",
			err:       mdwerror.New("db down").WithCode(mdwerror.CodeDatabaseError),
			wantLevel: "error",
			wantCode:  "DATABASE_ERROR",
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger should not enable any level")
	}
	logger.Error("dropped")
}
