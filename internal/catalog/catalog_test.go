package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/joestump/harnessd/internal/actionlog"
	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/confirm"
	"github.com/joestump/harnessd/internal/estop"
	"github.com/joestump/harnessd/internal/facade/fake"
	"github.com/joestump/harnessd/internal/monitor"
	"github.com/joestump/harnessd/internal/ratelimit"
	"github.com/joestump/harnessd/internal/reportstore"
	"github.com/joestump/harnessd/internal/safezone"
	"github.com/joestump/harnessd/internal/session"
)

func testDeps(t *testing.T) *Deps {
	t.Helper()
	reports, err := reportstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open report store: %v", err)
	}
	t.Cleanup(func() { _ = reports.Close() })

	return &Deps{
		Caps:     fake.NewCapabilities(),
		Log:      actionlog.New(),
		Limiter:  ratelimit.New(),
		SafeZone: safezone.New(),
		EStop:    estop.New(),
		Confirm:  confirm.NewWithDir(t.TempDir()),
		Monitors: monitor.New(),
		Reports:  reports,
		Session:  session.NewTracker(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Secrets:  session.NewSecretFilter(),
	}
}

var nameRE = regexp.MustCompile(`^[a-z]+\.[a-z_]+$`)

func TestCatalogCommandCount(t *testing.T) {
	r := command.NewRegistry()
	Register(r, testDeps(t))

	all := r.All()
	if len(all) < 172 || len(all) > 175 {
		t.Fatalf("expected 172-175 registered commands, got %d", len(all))
	}
	if len(all) != 173 {
		t.Errorf("expected exactly 173 registered commands (the authoritative catalog size), got %d", len(all))
	}
}

func TestCatalogNamesDescriptionsAndUniqueness(t *testing.T) {
	r := command.NewRegistry()
	Register(r, testDeps(t))

	seen := make(map[string]bool)
	for _, d := range r.All() {
		if !nameRE.MatchString(d.Name) {
			t.Errorf("command name %q does not match ^[a-z]+\\.[a-z_]+$", d.Name)
		}
		if len(d.Description) < 10 {
			t.Errorf("command %q description shorter than 10 characters", d.Name)
		}
		key := d.Name
		if seen[key] {
			t.Errorf("duplicate command name %q", d.Name)
		}
		seen[key] = true
	}
}

// TestCatalogVerbEnforcement spot-checks that a known mutation is rejected
// via Get and a known read-only command is rejected via Do.
func TestCatalogVerbEnforcement(t *testing.T) {
	r := command.NewRegistry()
	Register(r, testDeps(t))
	d := command.NewDispatcher(r)
	ctx := context.Background()

	e := d.Get(ctx, "mouse.click", "")
	if e.OK {
		t.Fatal("expected mouse.click (a mutation) to be rejected via get")
	}

	e = d.Do(ctx, "window.list", "")
	if e.OK {
		t.Fatal("expected window.list (read-only) to be rejected via do")
	}
}

// TestCatalogMissingRequiredParam checks that omitting a required
// parameter surfaces invalid_parameter rather than panicking.
func TestCatalogMissingRequiredParam(t *testing.T) {
	r := command.NewRegistry()
	Register(r, testDeps(t))
	d := command.NewDispatcher(r)

	e := d.Do(context.Background(), "window.close", "{}")
	if e.OK {
		t.Fatal("expected missing required parameter to fail")
	}
}

func TestCatalogHelpNeverFails(t *testing.T) {
	r := command.NewRegistry()
	Register(r, testDeps(t))
	d := command.NewDispatcher(r)

	for _, topic := range []string{"", "window", "mouse.click", "does.not_exist"} {
		e := d.Help(topic)
		if topic == "does.not_exist" {
			if e.OK {
				t.Errorf("expected help(%q) to report not found", topic)
			}
			continue
		}
		if !e.OK {
			t.Errorf("help(%q) unexpectedly failed: %+v", topic, e)
		}
	}
}
