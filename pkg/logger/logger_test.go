package logger

import (
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	if got := LevelCritical.DiscordColor(); got != 0xFF0000 {
		t.Errorf("LevelCritical.DiscordColor() = %#x, want %#x", got, 0xFF0000)
	}

	if got := LevelError.DiscordColor(); got != 0xFF0000 {
		t.Errorf("LevelError.DiscordColor() = %#x, want %#x", got, 0xFF0000)
	}

	if got := LevelSuccess.DiscordColor(); got != 0x00FF00 {
		t.Errorf("LevelSuccess.DiscordColor() = %#x, want %#x", got, 0x00FF00)
	}
}

func TestNewLogger(t *testing.T) {
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("NewLogger returned nil")
	}
	defer l.Close()

	// Logging must not panic even without webhooks configured
	l.Info("mensaje de prueba", "Test")
	l.Error("error de prueba", "Test")
}

func TestGet(t *testing.T) {
	l1 := Get()
	l2 := Get()

	if l1 == nil {
		t.Fatal("Get() returned nil")
	}

	if l1 != l2 {
		t.Error("Get() should return the same logger on subsequent calls")
	}
}
