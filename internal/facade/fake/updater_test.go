package fake

import (
	"context"
	"testing"
)

func TestUpdaterNoUpdateAvailable(t *testing.T) {
	u := NewUpdater("1.0.0")
	info, err := u.CheckForUpdate(context.Background())
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if info.Available {
		t.Fatal("expected no update available when latest equals current")
	}
	if info.CurrentVersion != "1.0.0" {
		t.Errorf("expected current version 1.0.0, got %s", info.CurrentVersion)
	}
}

func TestUpdaterApply(t *testing.T) {
	u := NewUpdater("1.0.0")
	u.SetLatest("1.1.0", "bugfixes")

	info, err := u.CheckForUpdate(context.Background())
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if !info.Available {
		t.Fatal("expected update to be available")
	}
	if info.LatestVersion != "1.1.0" || info.ReleaseNotes != "bugfixes" {
		t.Errorf("unexpected update info: %+v", info)
	}

	if err := u.ApplyUpdate(context.Background(), info); err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}

	after, err := u.CheckForUpdate(context.Background())
	if err != nil {
		t.Fatalf("CheckForUpdate after apply: %v", err)
	}
	if after.Available {
		t.Fatal("expected no update available after applying")
	}
	if after.CurrentVersion != "1.1.0" {
		t.Errorf("expected current version advanced to 1.1.0, got %s", after.CurrentVersion)
	}
}

func TestUpdaterApplyFailure(t *testing.T) {
	u := NewUpdater("1.0.0")
	u.SetLatest("1.1.0", "")
	u.SetFailing(true)

	info, _ := u.CheckForUpdate(context.Background())
	if err := u.ApplyUpdate(context.Background(), info); err == nil {
		t.Fatal("expected ApplyUpdate to fail when the updater is set to fail")
	}
}

func TestUpdaterApplyNoneAvailable(t *testing.T) {
	u := NewUpdater("1.0.0")
	info, _ := u.CheckForUpdate(context.Background())
	if err := u.ApplyUpdate(context.Background(), info); err == nil {
		t.Fatal("expected ApplyUpdate to fail when no update is available")
	}
}
