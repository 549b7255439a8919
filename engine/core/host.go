package core

import "log/slog"

// Host translates platform events into Lifecycle calls. It holds at most one
// pending fatal error: the first failing callback closes the window, later
// paints only fill the background, and the error is shown once the window
// is destroyed.
type Host struct {
	lc       Lifecycle
	platform Platform
	log      *slog.Logger

	created   bool
	destroyed bool
	width     int
	height    int
	dpi       int

	err      error
	exitCode int
}

func NewHost(platform Platform, lc Lifecycle) *Host {
	return &Host{
		lc:       lc,
		platform: platform,
		log:      Logger().With(slog.String("component", "host")),
		width:    1,
		height:   1,
		dpi:      96,
	}
}

// Handle dispatches one platform event.
func (h *Host) Handle(ev Event) {
	switch ev := ev.(type) {
	case EventCreate:
		if h.created {
			return
		}
		h.created = true
		h.width, h.height, h.dpi = max(ev.W, 1), max(ev.H, 1), max(ev.DPI, 1)
		h.fail(h.lc.OnCreate(h.width, h.height, h.dpi))

	case EventResize:
		if !h.live() {
			return
		}
		h.width, h.height = max(ev.W, 1), max(ev.H, 1)
		h.fail(h.lc.OnResize(h.width, h.height, h.dpi))

	case EventDPI:
		if !h.live() {
			return
		}
		h.dpi = max(ev.DPI, 1)
		h.fail(h.lc.OnResize(h.width, h.height, h.dpi))

	case EventPaint:
		if !h.live() {
			return
		}
		if h.err != nil {
			h.platform.FillBackground()
			return
		}
		h.fail(h.lc.OnRender())

	case EventKey:
		if ev.Down && ev.Key == KeyEscape {
			h.platform.RequestClose()
		}

	case EventCloseRequested:
		h.platform.RequestClose()

	case EventDestroy:
		if !h.created || h.destroyed {
			return
		}
		h.destroyed = true
		h.fail(h.lc.OnDestroy())
		if h.err != nil {
			h.log.Error("fatal error", slog.Any("err", h.err))
			h.platform.ShowError(h.err)
			h.exitCode = 1
		}
	}
}

// Err returns the pending error, if any.
func (h *Host) Err() error { return h.err }

// ExitCode is 1 once a pending error has been shown, 0 otherwise.
func (h *Host) ExitCode() int { return h.exitCode }

func (h *Host) live() bool { return h.created && !h.destroyed }

func (h *Host) fail(err error) {
	if err == nil {
		return
	}
	if h.err != nil {
		h.log.Warn("dropping error while another is pending", slog.Any("err", err))
		return
	}
	h.err = err
	h.platform.RequestClose()
}
