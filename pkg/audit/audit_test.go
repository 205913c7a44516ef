package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := LoginEvent{
		Username: "jdoe",
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "townclerk") {
		t.Error("Expected app name 'townclerk' in output")
	}
	if !strings.Contains(output, "login") {
		t.Error("Expected message ID 'login' in output")
	}
	if !strings.Contains(output, "jdoe") {
		t.Error("Expected username in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully logged in") {
		t.Error("Expected success message in output")
	}
}

func TestLoginEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     LoginEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful login",
			event: LoginEvent{
				Username: "jdoe",
				ClientIP: "10.0.0.1",
				Success:  true,
			},
			wantMsg:   "successfully logged in",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "login",
		},
		{
			name: "failed login",
			event: LoginEvent{
				Username:     "jdoe",
				ClientIP:     "10.0.0.1",
				Success:      false,
				ErrorMessage: "invalid credentials",
			},
			wantMsg:   "failed to log in",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestRecordEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   RecordEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful create",
			event: RecordEvent{
				Actor:    "jdoe",
				Resource: "mail-in",
				RecordID: 42,
				Action:   "create",
				Success:  true,
			},
			wantMsg: "performed create on mail-in 42",
			wantSev: SeverityInfo,
		},
		{
			name: "failed delete",
			event: RecordEvent{
				Actor:    "jdoe",
				Resource: "users",
				RecordID: 7,
				Action:   "delete",
				Success:  false,
			},
			wantMsg: "failed to delete users 7",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
		})
	}
}

func TestMailReadEvent(t *testing.T) {
	event := MailReadEvent{Actor: "jdoe", MailID: 3, UserID: 9}

	if got := event.MessageID(); got != "mail-read" {
		t.Errorf("MessageID() = %q, want %q", got, "mail-read")
	}
	if !strings.Contains(event.Message(), "marked mail 3 as read for user 9") {
		t.Errorf("Message() = %q", event.Message())
	}
	sd := event.StructuredData()
	if sd[SDIDSubject]["mail"] != "3" {
		t.Errorf("StructuredData() mail = %q, want %q", sd[SDIDSubject]["mail"], "3")
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`a"b]c\d`)
	want := `"a\"b\]c\\d"`
	if got != want {
		t.Errorf("escapeSDValue() = %s, want %s", got, want)
	}
}
