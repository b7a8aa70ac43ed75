// Package catalog registers the authoritative ~170-command set (C14)
// against a command.Registry, wiring each handler to the capability facade
// and the core safety/observability components.
package catalog

import (
	"github.com/joestump/harnessd/internal/actionlog"
	"github.com/joestump/harnessd/internal/command"
	"github.com/joestump/harnessd/internal/confirm"
	"github.com/joestump/harnessd/internal/estop"
	"github.com/joestump/harnessd/internal/facade"
	"github.com/joestump/harnessd/internal/monitor"
	"github.com/joestump/harnessd/internal/ratelimit"
	"github.com/joestump/harnessd/internal/reportstore"
	"github.com/joestump/harnessd/internal/safezone"
	"github.com/joestump/harnessd/internal/session"
)

// Deps bundles everything catalog handlers are built against.
type Deps struct {
	Caps     *facade.Capabilities
	Log      *actionlog.Log
	Limiter  *ratelimit.Limiter
	SafeZone *safezone.Store
	EStop    *estop.Stop
	Confirm  *confirm.Store
	Monitors *monitor.Manager
	Reports  *reportstore.Store
	Session  *session.Tracker
	Secrets  *session.SecretFilter
}

// Register wires every category into r.
func Register(r *command.Registry, d *Deps) {
	registerWindow(r, d)
	registerMouse(r, d)
	registerKeyboard(r, d)
	registerClipboard(r, d)
	registerScreen(r, d)
	registerProcess(r, d)
	registerFile(r, d)
	registerUI(r, d)
	registerVision(r, d)
	registerOCR(r, d)
	registerDisplay(r, d)
	registerDesktop(r, d)
	registerCoord(r, d)
	registerSystem(r, d)
	registerShell(r, d)
	registerMonitor(r, d)
	registerSession(r, d)
	registerReport(r, d)
	registerSafety(r, d)
	registerOffice(r, d)
	registerApp(r, d)
	registerDialog(r, d)
	registerObserve(r, d)
	registerRecord(r, d)
	registerUpdate(r, d)
}
