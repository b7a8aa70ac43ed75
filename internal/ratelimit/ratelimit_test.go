package ratelimit

import "testing"

func TestSetLimit_FirstNCallsAdmitted(t *testing.T) {
	l := New()
	l.SetLimit(3)

	for i := 0; i < 3; i++ {
		if exceeded := l.RecordAndCheck(); exceeded {
			t.Fatalf("call %d: expected not exceeded", i)
		}
	}
	if exceeded := l.RecordAndCheck(); !exceeded {
		t.Error("4th call within the window should report exceeded")
	}
}

func TestDisabled_NeverRecordsOrExceeds(t *testing.T) {
	l := New()
	for i := 0; i < 10; i++ {
		if exceeded := l.RecordAndCheck(); exceeded {
			t.Fatalf("disabled limiter should never report exceeded, call %d", i)
		}
	}
	if rate := l.CurrentRate(); rate != 0 {
		t.Errorf("expected rate 0 when disabled, got %d", rate)
	}
}

func TestSetLimit_ClearsWindow(t *testing.T) {
	l := New()
	l.SetLimit(1)
	l.RecordAndCheck()
	l.SetLimit(5)
	if rate := l.CurrentRate(); rate != 0 {
		t.Errorf("expected window cleared after SetLimit, got rate %d", rate)
	}
}

func TestCurrentRate_TracksRecordedEvents(t *testing.T) {
	l := New()
	l.SetLimit(10)
	l.RecordAndCheck()
	l.RecordAndCheck()
	if rate := l.CurrentRate(); rate != 2 {
		t.Errorf("expected rate 2, got %d", rate)
	}
}

func TestNonPositiveLimit_Disables(t *testing.T) {
	l := New()
	l.SetLimit(0)
	if exceeded := l.RecordAndCheck(); exceeded {
		t.Error("limit of 0 should disable the limiter")
	}
	l.SetLimit(-1)
	if exceeded := l.RecordAndCheck(); exceeded {
		t.Error("negative limit should disable the limiter")
	}
}
