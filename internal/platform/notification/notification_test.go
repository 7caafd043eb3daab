package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTemplateEngine_Render(t *testing.T) {
	e := NewTemplateEngine()

	subject, body, err := e.Render("booking-confirmation", map[string]string{
		"first_name":   "Jane",
		"doctor_name":  "Dr. Chen",
		"specialty":    "dermatology",
		"scheduled_at": "2026-09-10 14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(subject, "Dr. Chen") {
		t.Errorf("subject missing doctor name: %q", subject)
	}
	if !strings.Contains(body, "Jane") || !strings.Contains(body, "2026-09-10 14:00") {
		t.Errorf("body not fully rendered: %q", body)
	}
}

func TestTemplateEngine_Render_MissingDataLeavesPlaceholder(t *testing.T) {
	e := NewTemplateEngine()

	_, body, err := e.Render("booking-confirmation", map[string]string{"first_name": "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(body, "{{doctor_name}}") {
		t.Errorf("expected unresolved placeholder preserved, got %q", body)
	}
}

func TestTemplateEngine_Render_UnknownTemplate(t *testing.T) {
	e := NewTemplateEngine()
	if _, _, err := e.Render("no-such-template", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestTemplateEngine_RegisterTemplate(t *testing.T) {
	e := NewTemplateEngine()
	e.RegisterTemplate(Template{ID: "custom", Subject: "Hi {{name}}", Body: "Hello {{name}}"})

	subject, _, err := e.Render("custom", map[string]string{"name": "Sam"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Hi Sam" {
		t.Errorf("expected rendered subject, got %q", subject)
	}
}

func TestManager_SendFromTemplate(t *testing.T) {
	sender := &MockEmailSender{}
	mgr := NewManager(sender, NewTemplateEngine())

	n, err := mgr.SendFromTemplate(context.Background(), "booking-confirmation", map[string]string{
		"first_name":   "Jane",
		"doctor_name":  "Dr. Chen",
		"specialty":    "dermatology",
		"scheduled_at": "2026-09-10 14:00",
	}, "jane@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Status != "sent" {
		t.Errorf("expected sent, got %q", n.Status)
	}
	if n.SentAt == nil {
		t.Error("expected sent_at to be set")
	}

	calls := sender.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 email, got %d", len(calls))
	}
	if calls[0].To != "jane@example.com" {
		t.Errorf("wrong recipient: %q", calls[0].To)
	}
}

func TestManager_Send_Failure(t *testing.T) {
	sender := &MockEmailSender{ShouldFail: true, FailError: "smtp unreachable"}
	mgr := NewManager(sender, NewTemplateEngine())

	n := &Notification{Recipient: "jane@example.com", Subject: "s", Body: "b"}
	if err := mgr.Send(context.Background(), n); err == nil {
		t.Fatal("expected send error")
	}
	if n.Status != "failed" || n.Error == "" {
		t.Errorf("expected failed status with error, got status=%q error=%q", n.Status, n.Error)
	}

	// failed notifications stay retrievable
	got, err := mgr.Get(n.ID)
	if err != nil {
		t.Fatalf("failed notification not recorded: %v", err)
	}
	if got.Status != "failed" {
		t.Errorf("expected failed, got %q", got.Status)
	}
}

func TestManager_Retry(t *testing.T) {
	sender := &MockEmailSender{ShouldFail: true, FailError: "smtp unreachable"}
	mgr := NewManager(sender, NewTemplateEngine())

	n := &Notification{Recipient: "jane@example.com", Subject: "s", Body: "b"}
	_ = mgr.Send(context.Background(), n)

	sender.ShouldFail = false
	if err := mgr.Retry(context.Background(), n.ID); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	got, _ := mgr.Get(n.ID)
	if got.Status != "sent" || got.Error != "" {
		t.Errorf("expected sent with cleared error, got status=%q error=%q", got.Status, got.Error)
	}
}

func TestManager_Retry_NotFailed(t *testing.T) {
	mgr := NewManager(&MockEmailSender{}, NewTemplateEngine())
	n := &Notification{Recipient: "jane@example.com", Subject: "s", Body: "b"}
	_ = mgr.Send(context.Background(), n)

	if err := mgr.Retry(context.Background(), n.ID); err == nil {
		t.Fatal("expected error retrying a sent notification")
	}
}

func TestManager_Stats(t *testing.T) {
	sender := &MockEmailSender{}
	mgr := NewManager(sender, NewTemplateEngine())

	_ = mgr.Send(context.Background(), &Notification{Recipient: "a@example.com", Subject: "s", Body: "b"})
	sender.ShouldFail = true
	sender.FailError = "boom"
	_ = mgr.Send(context.Background(), &Notification{Recipient: "b@example.com", Subject: "s", Body: "b"})

	stats := mgr.Stats()
	if stats["sent"] != 1 || stats["failed"] != 1 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestLogSender(t *testing.T) {
	s := &LogSender{Logger: zerolog.Nop()}
	if err := s.SendEmail(context.Background(), "jane@example.com", "s", "b"); err != nil {
		t.Fatalf("log sender must never fail: %v", err)
	}
}
