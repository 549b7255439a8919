package core

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hubastard/grove-gles/engine/egl"
	"github.com/hubastard/grove-gles/engine/gfx/gles"
	"github.com/hubastard/grove-gles/engine/profiler"
)

// State of a Context.
type State int

const (
	StateUninitialized State = iota
	StateCreated
	StateRunning
	StateResizing
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateResizing:
		return "resizing"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrNotCreated = errors.New("graphics context not created")
	ErrDestroyed  = errors.New("graphics context destroyed")
)

var (
	anglePlatformAttribs = []egl.Int{
		egl.PLATFORM_ANGLE_TYPE_ANGLE, egl.PLATFORM_ANGLE_TYPE_D3D11_ANGLE,
		egl.PLATFORM_ANGLE_DEVICE_TYPE_ANGLE, egl.PLATFORM_ANGLE_DEVICE_TYPE_HARDWARE_ANGLE,
		egl.EXPERIMENTAL_PRESENT_PATH_ANGLE, egl.EXPERIMENTAL_PRESENT_PATH_COPY_ANGLE,
		egl.PLATFORM_ANGLE_ENABLE_AUTOMATIC_TRIM_ANGLE, egl.TRUE,
		egl.NONE,
	}

	configAttribs = []egl.Int{
		egl.RENDERABLE_TYPE, egl.OPENGL_ES3_BIT,
		egl.CONFORMANT, egl.OPENGL_ES3_BIT,
		egl.SURFACE_TYPE, egl.WINDOW_BIT,
		egl.RED_SIZE, 8,
		egl.GREEN_SIZE, 8,
		egl.BLUE_SIZE, 8,
		egl.ALPHA_SIZE, 0,
		egl.STENCIL_SIZE, 8,
		egl.NONE,
	}

	contextAttribs = []egl.Int{
		egl.CONTEXT_CLIENT_VERSION, 3,
		egl.NONE,
	}
)

// Option customizes a Context.
type Option func(*Context)

// WithClock replaces time.Now for frame throttling and statistics.
func WithClock(now func() time.Time) Option {
	return func(c *Context) { c.now = now }
}

// Context owns the EGL display, surface and context of one window, plus the
// optional multisample framebuffer, and drives a Scene through the window
// lifecycle.
//
// Resize events only record the new geometry; the scene's Resize callback
// and the multisample storage reallocation run at the next render, so a
// burst of resizes costs one reallocation.
type Context struct {
	host  WindowHost
	scene Scene
	egl   egl.API
	gl    gles.Functions
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
	gate  *throttle

	display egl.Display
	surface egl.Surface
	context egl.Context

	// rbo and fbo are either both live or both empty.
	samples int
	rbo     gles.Resource[gles.RenderbufferKind]
	fbo     gles.Resource[gles.FramebufferKind]

	width, height, dpi int
	resizePending      bool
	sceneCreated       bool
	state              State
	stats              profiler.Frames
}

var _ Lifecycle = (*Context)(nil)

func NewContext(host WindowHost, scene Scene, api egl.API, fns gles.Functions, cfg Config, opts ...Option) *Context {
	c := &Context{
		host:    host,
		scene:   scene,
		egl:     api,
		gl:      fns,
		cfg:     cfg,
		log:     Logger().With(slog.String("component", "context")),
		now:     time.Now,
		gate:    newThrottle(cfg.Policy, cfg.FrameInterval),
		samples: max(cfg.Samples, 1),
		width:   1,
		height:  1,
		dpi:     96,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) State() State { return c.state }

// Samples returns the effective sample count; it drops to 1 when the
// multisample framebuffer could not be created.
func (c *Context) Samples() int { return c.samples }

func (c *Context) Size() (int, int) { return c.width, c.height }

func (c *Context) DPI() int { return c.dpi }

// Multisampled reports whether frames are rendered offscreen and resolved
// into the window surface.
func (c *Context) Multisampled() bool { return c.fbo.Valid() && c.rbo.Valid() }

func (c *Context) Stats() profiler.Frames { return c.stats }

// OnCreate establishes the display, surface and context, sets up
// multisampling when requested, creates the scene and shows the window.
func (c *Context) OnCreate(width, height, dpi int) error {
	if c.state != StateUninitialized {
		return fmt.Errorf("create: context is %s", c.state)
	}
	// A failed attempt keeps its handles until OnDestroy releases them.
	if c.display != egl.NoDisplay {
		return errors.New("create: previous attempt failed, destroy first")
	}
	c.width, c.height, c.dpi = max(width, 1), max(height, 1), max(dpi, 1)

	if err := c.createDisplay(); err != nil {
		return err
	}
	if err := c.createContext(); err != nil {
		return err
	}
	c.state = StateCreated

	if c.samples > 1 {
		if err := c.createMultisample(); err != nil {
			gles.Clear(c.gl)
			c.destroyMultisample()
			c.log.Warn("multisampling disabled", slog.Int("samples", c.samples), slog.Any("err", err))
			c.samples = 1
		}
	}

	if err := c.scene.Create(c.width, c.height, c.dpi); err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	c.sceneCreated = true
	if err := c.scene.Resize(c.width, c.height, c.dpi); err != nil {
		return fmt.Errorf("resize scene: %w", err)
	}
	c.resizePending = false

	c.host.Show(true)
	c.state = StateRunning
	c.log.Debug("context created",
		slog.Int("width", c.width), slog.Int("height", c.height),
		slog.Int("dpi", c.dpi), slog.Int("samples", c.samples))
	return nil
}

func (c *Context) createDisplay() error {
	native := egl.NativeDisplay(c.host.NativeDisplay())
	c.display = c.egl.GetPlatformDisplay(egl.PLATFORM_ANGLE_ANGLE, native, anglePlatformAttribs)
	if c.display == egl.NoDisplay {
		c.log.Debug("ANGLE platform display unavailable", slog.String("err", egl.Current(c.egl).String()))
		c.display = c.egl.GetDisplay(native)
	}
	if c.display == egl.NoDisplay {
		return egl.Fail(c.egl, "Could not create OpenGL ES display")
	}
	major, minor, ok := c.egl.Initialize(c.display)
	if !ok {
		return egl.Fail(c.egl, "Could not initialize OpenGL ES display")
	}
	c.log.Info("EGL display", slog.String("version", fmt.Sprintf("%d.%d", major, minor)))
	return nil
}

func (c *Context) createContext() error {
	cfg, count, ok := c.egl.ChooseConfig(c.display, configAttribs)
	if !ok {
		return egl.Fail(c.egl, "Could not choose OpenGL ES config")
	}
	if count < 1 {
		return egl.ErrNoConfig
	}

	if !c.egl.BindAPI(egl.OPENGL_ES_API) {
		return egl.Fail(c.egl, "Could not bind OpenGL ES API")
	}

	c.surface = c.egl.CreateWindowSurface(c.display, cfg, egl.NativeWindow(c.host.NativeWindow()), nil)
	if c.surface == egl.NoSurface {
		return egl.Fail(c.egl, "Could not create OpenGL ES surface")
	}

	c.context = c.egl.CreateContext(c.display, cfg, egl.NoContext, contextAttribs)
	if c.context == egl.NoContext {
		return egl.Fail(c.egl, "Could not create OpenGL ES context")
	}
	if !c.egl.MakeCurrent(c.display, c.surface, c.surface, c.context) {
		return egl.Fail(c.egl, "Could not attach OpenGL ES context")
	}

	interval := egl.Int(0)
	if c.cfg.VSync {
		interval = 1
	}
	if !c.egl.SwapInterval(c.display, interval) {
		c.log.Warn("swap interval not applied", slog.Any("err", egl.Fail(c.egl, "Could not set swap interval")))
	}

	if loader, ok := c.gl.(interface{ Init() error }); ok {
		if err := loader.Init(); err != nil {
			return fmt.Errorf("load OpenGL ES functions: %w", err)
		}
	}
	c.log.Info("OpenGL ES context", slog.String("version", c.gl.GetString(gles.VERSION)))
	return nil
}

func (c *Context) createMultisample() error {
	var rb, fb [1]uint32
	c.gl.GenRenderbuffers(rb[:])
	c.rbo = gles.Own[gles.RenderbufferKind](c.gl, rb[0])
	c.allocateMultisample()

	c.gl.GenFramebuffers(fb[:])
	c.fbo = gles.Own[gles.FramebufferKind](c.gl, fb[0])
	c.gl.BindFramebuffer(gles.FRAMEBUFFER, c.fbo.Name())
	c.gl.FramebufferRenderbuffer(gles.FRAMEBUFFER, gles.COLOR_ATTACHMENT0, gles.RENDERBUFFER, c.rbo.Name())
	status := c.gl.CheckFramebufferStatus(gles.FRAMEBUFFER)
	c.gl.BindFramebuffer(gles.FRAMEBUFFER, 0)

	if err := gles.Check(c.gl, "Could not create multisample framebuffer"); err != nil {
		return err
	}
	if status != gles.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("multisample framebuffer incomplete (status 0x%04X)", status)
	}
	return nil
}

// allocateMultisample (re)sizes the renderbuffer storage to the current
// geometry.
func (c *Context) allocateMultisample() {
	c.gl.BindRenderbuffer(gles.RENDERBUFFER, c.rbo.Name())
	c.gl.RenderbufferStorageMultisample(gles.RENDERBUFFER, int32(c.samples), gles.RGBA8,
		int32(c.width), int32(c.height))
	c.gl.BindRenderbuffer(gles.RENDERBUFFER, 0)
}

func (c *Context) destroyMultisample() {
	c.fbo.Close()
	c.rbo.Close()
}

// OnResize records the new geometry. Graphics resources are updated at the
// next OnRender.
func (c *Context) OnResize(width, height, dpi int) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	c.width, c.height, c.dpi = max(width, 1), max(height, 1), max(dpi, 1)
	c.resizePending = true
	if c.state == StateRunning {
		c.state = StateResizing
	}
	c.stats.Resize()
	return nil
}

// OnRender applies a pending resize, renders the scene, resolves the
// multisample buffer and presents the frame.
func (c *Context) OnRender() error {
	switch c.state {
	case StateUninitialized, StateCreated:
		return ErrNotCreated
	case StateDestroyed:
		return ErrDestroyed
	}
	if !c.gate.allow(c.now()) {
		c.stats.Skip()
		return nil
	}
	end := c.stats.Begin(c.now)
	err := c.render()
	end(err)
	return err
}

func (c *Context) render() error {
	if c.resizePending {
		if err := c.scene.Resize(c.width, c.height, c.dpi); err != nil {
			return fmt.Errorf("resize scene: %w", err)
		}
		if c.Multisampled() {
			c.allocateMultisample()
			if err := gles.Check(c.gl, "Could not resize multisample renderbuffer"); err != nil {
				return err
			}
		}
		c.resizePending = false
		c.state = StateRunning
	}

	// Anything pending here was left behind by an earlier frame.
	if err := gles.Check(c.gl, "Stale OpenGL ES error before render"); err != nil {
		return err
	}

	ms := c.Multisampled()
	if ms {
		c.gl.BindFramebuffer(gles.FRAMEBUFFER, c.fbo.Name())
	}

	if err := c.scene.Render(); err != nil {
		return fmt.Errorf("render scene: %w", err)
	}

	if ms {
		w, h := int32(c.width), int32(c.height)
		c.gl.BindFramebuffer(gles.FRAMEBUFFER, 0)
		c.gl.BindFramebuffer(gles.READ_FRAMEBUFFER, c.fbo.Name())
		c.gl.BindFramebuffer(gles.DRAW_FRAMEBUFFER, 0)
		c.gl.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, gles.COLOR_BUFFER_BIT, gles.NEAREST)
		c.gl.BindFramebuffer(gles.READ_FRAMEBUFFER, 0)
	}

	if !c.egl.SwapBuffers(c.display, c.surface) {
		return egl.Fail(c.egl, "Could not swap buffers")
	}
	return gles.Check(c.gl, "Could not render frame")
}

// OnDestroy destroys the scene, the multisample framebuffer and the EGL
// objects in that order. Calling it again is a no-op.
func (c *Context) OnDestroy() error {
	if c.state == StateDestroyed {
		return nil
	}
	var errs []error

	if c.sceneCreated {
		c.scene.Destroy()
		c.sceneCreated = false
	}
	c.destroyMultisample()

	if c.display != egl.NoDisplay {
		if !c.egl.MakeCurrent(c.display, egl.NoSurface, egl.NoSurface, egl.NoContext) {
			errs = append(errs, egl.Fail(c.egl, "Could not detach OpenGL ES context"))
		}
		if c.context != egl.NoContext {
			if !c.egl.DestroyContext(c.display, c.context) {
				errs = append(errs, egl.Fail(c.egl, "Could not destroy OpenGL ES context"))
			}
			c.context = egl.NoContext
		}
		if c.surface != egl.NoSurface {
			if !c.egl.DestroySurface(c.display, c.surface) {
				errs = append(errs, egl.Fail(c.egl, "Could not destroy OpenGL ES surface"))
			}
			c.surface = egl.NoSurface
		}
		if !c.egl.Terminate(c.display) {
			errs = append(errs, egl.Fail(c.egl, "Could not terminate OpenGL ES display"))
		}
		c.display = egl.NoDisplay
	}

	c.state = StateDestroyed
	c.log.Debug("context destroyed", slog.Any("frames", c.stats))

	err := errors.Join(errs...)
	if err != nil {
		c.log.Warn("context teardown failed", slog.Any("err", err))
	}
	return err
}
