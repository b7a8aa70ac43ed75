package session

import (
	"strings"
	"testing"
	"time"
)

func TestSecretFilterRawSecret(t *testing.T) {
	t.Setenv("HARNESSD_SECRET_API_TOKEN", "s3cretP@ss")

	f := NewSecretFilter()
	input := `{"result": "logged in with s3cretP@ss successfully"}`
	got := f.Redact(input)

	if strings.Contains(got, "s3cretP@ss") {
		t.Errorf("raw secret should be redacted, got: %s", got)
	}
	if !strings.Contains(got, "[REDACTED:HARNESSD_SECRET_API_TOKEN]") {
		t.Errorf("expected redaction placeholder, got: %s", got)
	}
}

func TestSecretFilterURLEncodedSecret(t *testing.T) {
	t.Setenv("HARNESSD_SECRET_API_TOKEN", "p@ssw0rd")

	f := NewSecretFilter()
	input := `{"url": "https://example.com/login?pass=p%40ssw0rd"}`
	got := f.Redact(input)

	if strings.Contains(got, "p%40ssw0rd") {
		t.Errorf("URL-encoded secret should be redacted, got: %s", got)
	}
	if !strings.Contains(got, "[REDACTED:HARNESSD_SECRET_API_TOKEN:urlencoded]") {
		t.Errorf("expected urlencoded redaction placeholder, got: %s", got)
	}
}

func TestSecretFilterNoSecrets(t *testing.T) {
	f := NewSecretFilter()
	input := "nothing to redact here"
	got := f.Redact(input)

	if got != input {
		t.Errorf("no-op expected, got: %s", got)
	}
}

func TestSecretFilterMultipleSecrets(t *testing.T) {
	t.Setenv("HARNESSD_SECRET_USER", "admin")
	t.Setenv("HARNESSD_SECRET_PASS", "hunter2")

	f := NewSecretFilter()
	input := "user=admin pass=hunter2 done"
	got := f.Redact(input)

	if strings.Contains(got, "hunter2") {
		t.Errorf("password should be redacted, got: %s", got)
	}
	if !strings.Contains(got, "[REDACTED:HARNESSD_SECRET_USER]") {
		t.Errorf("expected user placeholder, got: %s", got)
	}
	if !strings.Contains(got, "[REDACTED:HARNESSD_SECRET_PASS]") {
		t.Errorf("expected pass placeholder, got: %s", got)
	}
}

func TestTrackerUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(start)

	if !tr.StartedAt().Equal(start) {
		t.Fatalf("StartedAt: got %v, want %v", tr.StartedAt(), start)
	}
	got := tr.Uptime(start.Add(90 * time.Second))
	if got != 90*time.Second {
		t.Fatalf("Uptime: got %v, want 90s", got)
	}
}
