package core

import "runtime"

// Run drives win until it is closed and returns the process exit code.
// Events reach lc through a Host; the create event is synthesized from the
// window's initial framebuffer size and DPI.
func Run(win Window, lc Lifecycle) int {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	host := NewHost(win, lc)
	win.SetEventCallback(host.Handle)

	w, h := win.FramebufferSize()
	host.Handle(EventCreate{W: w, H: h, DPI: win.DPI()})

	for !win.ShouldClose() {
		win.PollEvents()
		host.Handle(EventPaint{})
	}

	host.Handle(EventDestroy{})
	return host.ExitCode()
}
