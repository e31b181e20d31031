package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNotifyCommands(t *testing.T) {
	tests := []struct {
		name     string
		cmd      tea.Cmd
		wantType NotificationType
		wantDur  time.Duration
	}{
		{"success", notifySuccessCmd("hello"), NotificationSuccess, DefaultNotificationDuration},
		{"error", notifyErrorCmd("hello"), NotificationError, LongNotificationDuration},
		{"warning", notifyWarningCmd("hello"), NotificationWarning, DefaultNotificationDuration},
		{"info", notifyInfoCmd("hello"), NotificationInfo, QuickNotificationDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.cmd().(AddNotificationMsg)
			if !ok {
				t.Fatalf("cmd() = %T, want AddNotificationMsg", tt.cmd())
			}
			if msg.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", msg.Type, tt.wantType)
			}
			if msg.Message != "hello" {
				t.Errorf("Message = %q, want %q", msg.Message, "hello")
			}
			if msg.Duration != tt.wantDur {
				t.Errorf("Duration = %v, want %v", msg.Duration, tt.wantDur)
			}
		})
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(time.Millisecond) == nil {
		t.Error("tickCmd returned nil")
	}
	if defaultTickCmd() == nil {
		t.Error("defaultTickCmd returned nil")
	}
}

func TestCommandsHelper(t *testing.T) {
	c := NewCommands(nil)

	if c.DefaultTick() == nil {
		t.Error("DefaultTick returned nil")
	}
	if c.Quit() == nil {
		t.Error("Quit returned nil")
	}

	msg, ok := c.NotifyInfo("hi")().(AddNotificationMsg)
	if !ok || msg.Message != "hi" {
		t.Errorf("NotifyInfo produced %+v", msg)
	}
}
