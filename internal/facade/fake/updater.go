package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/joestump/harnessd/internal/facade"
)

// Updater is an in-memory stand-in for the real auto-updater: tests seed
// the latest version it should report via SetLatest. ApplyUpdate advances
// the current version to info.LatestVersion; it fails when SetFailing(true)
// is in effect or when info reports no update available.
type Updater struct {
	mu      sync.Mutex
	current string
	latest  string
	notes   string
	failing bool
}

func NewUpdater(currentVersion string) *Updater {
	return &Updater{current: currentVersion, latest: currentVersion}
}

// SetLatest is a test fixture helper for making an update "available".
func (u *Updater) SetLatest(version, notes string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.latest = version
	u.notes = notes
}

// SetFailing is a test fixture helper for making ApplyUpdate fail.
func (u *Updater) SetFailing(failing bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failing = failing
}

func (u *Updater) CheckForUpdate(_ context.Context) (facade.UpdateInfo, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	info := facade.UpdateInfo{
		CurrentVersion: u.current,
		LatestVersion:  u.latest,
		ReleaseNotes:   u.notes,
	}
	if u.latest != u.current {
		info.Available = true
		info.DownloadURL = fmt.Sprintf("https://example.invalid/releases/%s", u.latest)
	}
	return info, nil
}

func (u *Updater) ApplyUpdate(_ context.Context, info facade.UpdateInfo) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.failing {
		return fmt.Errorf("update download failed")
	}
	if !info.Available {
		return fmt.Errorf("no update available")
	}
	u.current = info.LatestVersion
	return nil
}
