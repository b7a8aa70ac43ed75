package facade

import "context"

// Mouse synthesizes pointer input.
type Mouse interface {
	Click(ctx context.Context, x, y int, button string) error
	DoubleClick(ctx context.Context, x, y int, button string) error
	Move(ctx context.Context, x, y int) error
	Drag(ctx context.Context, from, to Point, button string) error
	Scroll(ctx context.Context, dx, dy int) error
	ScrollHorizontal(ctx context.Context, amount int) error
	DragWindow(ctx context.Context, handle string, to Point) error
	ButtonDown(ctx context.Context, button string) error
	ButtonUp(ctx context.Context, button string) error
	SmoothMove(ctx context.Context, to Point, durationMs int) error
	Position(ctx context.Context) (Point, error)
}

// Keyboard synthesizes key input.
type Keyboard interface {
	Type(ctx context.Context, text string) error
	Press(ctx context.Context, key string) error
	KeyDown(ctx context.Context, key string) error
	KeyUp(ctx context.Context, key string) error
	ToggleLock(ctx context.Context, key string) error
	Hotkey(ctx context.Context, keys []string) error
	HotkeyWait(ctx context.Context, keys []string, timeoutMs int) error
	IsPressed(ctx context.Context, key string) (bool, error)
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	GetText(ctx context.Context) (string, error)
	GetHTML(ctx context.Context) (string, error)
	GetImageBase64(ctx context.Context) (string, error)
	GetFiles(ctx context.Context) ([]string, error)
	GetFormats(ctx context.Context) (ClipboardFormats, error)
	SetText(ctx context.Context, text string) error
	SetImageBase64(ctx context.Context, data string) error
	SetHTML(ctx context.Context, html string) error
	SetFiles(ctx context.Context, paths []string) error
}

// Screen captures pixels.
type Screen interface {
	Capture(ctx context.Context) ([]byte, error)
	CaptureRegion(ctx context.Context, r Rect) ([]byte, error)
	CaptureWindow(ctx context.Context, handle string) ([]byte, error)
	CaptureMonitor(ctx context.Context, monitorID string) ([]byte, error)
	CaptureWindowRegion(ctx context.Context, handle string, r Rect) ([]byte, error)
}

// Window manages top-level windows.
type Window interface {
	List(ctx context.Context) ([]WindowInfo, error)
	Get(ctx context.Context, handle string) (WindowInfo, error)
	GetForeground(ctx context.Context) (WindowInfo, error)
	Focus(ctx context.Context, handle string) error
	Resize(ctx context.Context, handle string, width, height int) error
	Close(ctx context.Context, handle string) error
	Minimize(ctx context.Context, handle string) error
	Maximize(ctx context.Context, handle string) error
	Restore(ctx context.Context, handle string) error
	Move(ctx context.Context, handle string, x, y int) error
	Hide(ctx context.Context, handle string) error
	Show(ctx context.Context, handle string) error
	SetAlwaysOnTop(ctx context.Context, handle string, on bool) error
	SetOpacity(ctx context.Context, handle string, opacity float64) error
	Wait(ctx context.Context, titleContains string, timeoutMs int) (WindowInfo, error)
	WaitClose(ctx context.Context, handle string, timeoutMs int) error
	WaitIdle(ctx context.Context, handle string, timeoutMs int) error
	GetChildren(ctx context.Context, handle string) ([]WindowInfo, error)
	FindByPID(ctx context.Context, pid int) ([]WindowInfo, error)
}

// Process enumerates and controls OS processes.
type Process interface {
	List(ctx context.Context) ([]ProcessInfo, error)
	GetInfo(ctx context.Context, pid int) (ProcessInfo, error)
	Check(ctx context.Context, pid int) (bool, error)
	WaitExit(ctx context.Context, pid int, timeoutMs int) error
	ListByWindow(ctx context.Context, handle string) ([]ProcessInfo, error)
	FindByPort(ctx context.Context, port int) ([]ProcessInfo, error)
	FindByPath(ctx context.Context, path string) ([]ProcessInfo, error)
	GetChildren(ctx context.Context, pid int) ([]ProcessInfo, error)
	FindByWindow(ctx context.Context, handle string) (ProcessInfo, error)
	Start(ctx context.Context, path string, args []string) (int, error)
	StartAdvanced(ctx context.Context, path string, args []string, cwd string, env map[string]string) (int, error)
	Stop(ctx context.Context, pid int) error
	StopByName(ctx context.Context, name string) (int, error)
	StopTree(ctx context.Context, pid int) (int, error)
}

// FileSystem performs filesystem operations on behalf of handlers.
type FileSystem interface {
	Read(ctx context.Context, path string) (string, error)
	ReadBytes(ctx context.Context, path string) ([]byte, error)
	List(ctx context.Context, path string) ([]FileInfo, error)
	Check(ctx context.Context, path string) (bool, error)
	Info(ctx context.Context, path string) (FileInfo, error)
	Search(ctx context.Context, root, pattern string) ([]string, error)
	Hash(ctx context.Context, path, algorithm string) (string, error)
	Write(ctx context.Context, path, content string) error
	WriteBytes(ctx context.Context, path string, data []byte) error
	Copy(ctx context.Context, src, dst string) error
	Move(ctx context.Context, src, dst string) error
	CreateDirectory(ctx context.Context, path string) error
	Delete(ctx context.Context, path string) error
}

// Shell runs external commands.
type Shell interface {
	Run(ctx context.Context, command string, args []string, cwd string, timeoutMs int) (stdout, stderr string, exitCode int, err error)
}

// Display enumerates monitors and the pointer position.
type Display interface {
	List(ctx context.Context) ([]DisplayInfo, error)
	GetPrimary(ctx context.Context) (DisplayInfo, error)
	GetAt(ctx context.Context, p Point) (DisplayInfo, error)
	GetCursorPosition(ctx context.Context) (Point, error)
	SetCursorPosition(ctx context.Context, p Point) error
}

// SystemInfo exposes host/environment information (the only facade surface
// the core's outer host may read configuration through, per §6.4).
type SystemInfo interface {
	GetInfo(ctx context.Context) (map[string]any, error)
	GetEnv(ctx context.Context, key string) (string, error)
	ListEnv(ctx context.Context) (map[string]string, error)
	GetMetrics(ctx context.Context) (map[string]any, error)
}

// OCR reads text from pixels.
type OCR interface {
	Read(ctx context.Context) (string, error)
	ReadRegion(ctx context.Context, r Rect) (string, error)
	ReadDetailed(ctx context.Context, r Rect) ([]TextHit, error)
	ReadImage(ctx context.Context, path string) (string, error)
}

// UIAutomation inspects and drives accessibility trees.
type UIAutomation interface {
	GetFocused(ctx context.Context) (UIElement, error)
	GetTree(ctx context.Context, handle string) (UIElement, error)
	Find(ctx context.Context, handle, selector string) (UIElement, error)
	WaitElement(ctx context.Context, handle, selector string, timeoutMs int) (UIElement, error)
	Annotate(ctx context.Context, handle string) ([]byte, error)
	DetectClickables(ctx context.Context, handle string) ([]UIElement, error)
	DetectInputs(ctx context.Context, handle string) ([]UIElement, error)
	GetAt(ctx context.Context, p Point) (UIElement, error)
	Click(ctx context.Context, elementID string) error
	SetValue(ctx context.Context, elementID, value string) error
	TypeInto(ctx context.Context, elementID, text string) error
	Invoke(ctx context.Context, elementID string) error
	SelectMenu(ctx context.Context, handle, path string) error
	Select(ctx context.Context, elementID, option string) error
	Expand(ctx context.Context, elementID string) error
}

// VirtualDesktop manages virtual desktops/workspaces.
type VirtualDesktop interface {
	List(ctx context.Context) ([]string, error)
	Current(ctx context.Context) (string, error)
	SwitchTo(ctx context.Context, id string) error
	MoveWindow(ctx context.Context, handle, desktopID string) error
}

// TemplateMatcher finds an image within the screen.
type TemplateMatcher interface {
	FindImage(ctx context.Context, templatePath string, threshold float64) (Rect, bool, error)
}

// DialogHandler inspects and dismisses dialog-class windows.
type DialogHandler interface {
	List(ctx context.Context) ([]WindowInfo, error)
	Accept(ctx context.Context, handle string) error
	Dismiss(ctx context.Context, handle string) error
	GetText(ctx context.Context, handle string) (string, error)
}

// Observer is the low-level change-detection primitive the monitor
// producers (C8) are built on: each call returns the current snapshot of
// whatever it watches so a producer can diff it against the last one.
type Observer interface {
	ListFiles(ctx context.Context, dir string, recursive bool) ([]FileInfo, error)
	ListProcesses(ctx context.Context) ([]ProcessInfo, error)
	ListWindows(ctx context.Context) ([]WindowInfo, error)
	ForegroundWindow(ctx context.Context) (WindowInfo, error)
	ClipboardText(ctx context.Context) (string, error)
	ListDialogs(ctx context.Context) ([]WindowInfo, error)
}

// RecordedAction is one entry captured while action recording is active.
type RecordedAction struct {
	Tool       string
	Parameters map[string]any
	At         int64 // unix millis
}

// ActionRecorder captures a macro-style sequence of dispatched mutations,
// independent of the Action Log (C2), for later playback or inspection.
type ActionRecorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) ([]RecordedAction, error)
	IsRecording(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

// DocumentReader parses Office-family documents (Word/Excel/PowerPoint).
type DocumentReader interface {
	Open(ctx context.Context, path string) (string, error) // returns an opaque document handle
	ReadText(ctx context.Context, docHandle string) (string, error)
	ReadTables(ctx context.Context, docHandle string) ([][][]string, error)
	GetMetadata(ctx context.Context, docHandle string) (map[string]any, error)
	ListBookmarks(ctx context.Context, docHandle string) ([]string, error)
	GotoBookmark(ctx context.Context, docHandle, bookmark string) error
	ReadSheet(ctx context.Context, docHandle, sheetName string) ([][]string, error)
	ListSheets(ctx context.Context, docHandle string) ([]string, error)
	ExportPDF(ctx context.Context, docHandle, outPath string) error
	ReadSlideText(ctx context.Context, docHandle string, slideIndex int) (string, error)
}

// HWPReader parses Korean HWPX word-processor documents.
type HWPReader interface {
	Open(ctx context.Context, path string) (string, error)
	ReadText(ctx context.Context, docHandle string) (string, error)
	GetMetadata(ctx context.Context, docHandle string) (map[string]any, error)
}

// Updater checks for and applies binary updates to the running daemon. The
// actual download/verify/install mechanics are an external collaborator
// (§ out of scope); the core only ever sees these two calls.
type Updater interface {
	CheckForUpdate(ctx context.Context) (UpdateInfo, error)
	ApplyUpdate(ctx context.Context, info UpdateInfo) error
}

// Capabilities aggregates every capability surface. It is constructed once
// at startup and is read-only thereafter (§4.9).
type Capabilities struct {
	Mouse           Mouse
	Keyboard        Keyboard
	Clipboard       Clipboard
	Screen          Screen
	Window          Window
	Process         Process
	FileSystem      FileSystem
	Shell           Shell
	Display         Display
	SystemInfo      SystemInfo
	OCR             OCR
	UIAutomation    UIAutomation
	VirtualDesktop  VirtualDesktop
	TemplateMatcher TemplateMatcher
	DialogHandler   DialogHandler
	Observer        Observer
	ActionRecorder  ActionRecorder
	DocumentReader  DocumentReader
	HWPReader       HWPReader
	Updater         Updater
}
