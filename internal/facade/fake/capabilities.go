package fake

import (
	"github.com/joestump/harnessd/internal/facade"
	"github.com/joestump/harnessd/internal/facade/osimpl"
)

// NewCapabilities assembles a complete facade.Capabilities from the
// in-memory fakes in this package, sharing a single State across the
// Window, Process, UIAutomation, and Observer surfaces. FileSystem, Shell,
// and SystemInfo are backed by the real OS (osimpl), since those are
// generic stdlib operations rather than platform UI automation that needs
// faking for tests.
func NewCapabilities() *facade.Capabilities {
	state := NewState()
	clipboard := NewClipboard()
	dialogs := NewDialogHandler()

	return &facade.Capabilities{
		Mouse:           NewMouse(),
		Keyboard:        NewKeyboard(),
		Clipboard:       clipboard,
		Screen:          NewScreen(),
		Window:          NewWindow(state),
		Process:         NewProcess(state),
		FileSystem:      osimpl.NewFileSystem(),
		Shell:           osimpl.NewShell(),
		Display:         NewDisplay(),
		SystemInfo:      osimpl.NewSystemInfo(),
		OCR:             NewOCR(),
		UIAutomation:    NewUIAutomation(state),
		VirtualDesktop:  NewVirtualDesktop(),
		TemplateMatcher: NewTemplateMatcher(),
		DialogHandler:   dialogs,
		Observer:        NewObserver(state, clipboard, dialogs),
		ActionRecorder:  NewActionRecorder(),
		DocumentReader:  NewDocumentReader(),
		HWPReader:       NewHWPReader(),
		Updater:         NewUpdater("0.1.0"),
	}
}
