package core

// Scene is the application content driven by a Context. Callbacks run with
// the graphics context current and must not manage the context or surface
// themselves.
type Scene interface {
	Create(width, height, dpi int) error
	Resize(width, height, dpi int) error
	Render() error
	Destroy()
}

// WindowHost is what a Context needs from the native window.
type WindowHost interface {
	NativeWindow() uintptr
	NativeDisplay() uintptr
	Show(visible bool)
}

// Lifecycle receives the four native window events. Context implements it.
type Lifecycle interface {
	OnCreate(width, height, dpi int) error
	OnResize(width, height, dpi int) error
	OnRender() error
	OnDestroy() error
}

// Platform is the part of the native window the event shim drives.
type Platform interface {
	RequestClose()
	FillBackground()
	ShowError(err error)
}

// Window abstraction implemented by the platform layer.
type Window interface {
	WindowHost
	Platform
	PollEvents()
	ShouldClose() bool
	FramebufferSize() (int, int)
	DPI() int
	SetEventCallback(cb func(Event))
}

// Event model emitted by the platform layer.
type Event interface{ isEvent() }

type EventCreate struct{ W, H, DPI int }

func (EventCreate) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventDPI reports a new monitor DPI; the window has already been resized
// to the suggested bounds.
type EventDPI struct{ DPI int }

func (EventDPI) isEvent() {}

type EventPaint struct{}

func (EventPaint) isEvent() {}

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventDestroy struct{}

func (EventDestroy) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
}

func (EventKey) isEvent() {}

// Key enum (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
)
