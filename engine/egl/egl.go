// Package egl describes the subset of EGL used to bind an OpenGL ES 3
// context to a native window. The calls themselves live behind the API
// interface so the lifecycle code can run against the system library
// (see package eglbinding) or a recording fake.
package egl

// Native EGL handle types. They are opaque pointers on every platform we
// support, so uintptr carries them without cgo.
type (
	Int           int32
	Enum          uint32
	Display       uintptr
	Surface       uintptr
	Context       uintptr
	Config        uintptr
	NativeDisplay uintptr
	NativeWindow  uintptr
)

const (
	NoDisplay Display = 0
	NoSurface Surface = 0
	NoContext Context = 0

	DefaultDisplay NativeDisplay = 0
)

// https://www.khronos.org/registry/EGL/api/EGL/egl.h
const (
	FALSE Int = 0
	TRUE  Int = 1

	ALPHA_SIZE             Int = 0x3021
	BLUE_SIZE              Int = 0x3022
	GREEN_SIZE             Int = 0x3023
	RED_SIZE               Int = 0x3024
	DEPTH_SIZE             Int = 0x3025
	STENCIL_SIZE           Int = 0x3026
	SURFACE_TYPE           Int = 0x3033
	NONE                   Int = 0x3038
	RENDERABLE_TYPE        Int = 0x3040
	CONFORMANT             Int = 0x3042
	CONTEXT_CLIENT_VERSION Int = 0x3098

	WINDOW_BIT     Int = 0x0004
	OPENGL_ES3_BIT Int = 0x0040

	OPENGL_ES_API Enum = 0x30A0
)

// ANGLE platform extension (EGL_ANGLE_platform_angle and friends).
const (
	PLATFORM_ANGLE_ANGLE Enum = 0x3202

	PLATFORM_ANGLE_TYPE_ANGLE                  Int = 0x3203
	PLATFORM_ANGLE_TYPE_D3D11_ANGLE            Int = 0x3208
	PLATFORM_ANGLE_DEVICE_TYPE_ANGLE           Int = 0x3209
	PLATFORM_ANGLE_DEVICE_TYPE_HARDWARE_ANGLE  Int = 0x320A
	PLATFORM_ANGLE_ENABLE_AUTOMATIC_TRIM_ANGLE Int = 0x320F
	EXPERIMENTAL_PRESENT_PATH_ANGLE            Int = 0x33A4
	EXPERIMENTAL_PRESENT_PATH_FAST_ANGLE       Int = 0x33A9
	EXPERIMENTAL_PRESENT_PATH_COPY_ANGLE       Int = 0x33AA
)

// API is the EGL function table. Boolean results mirror EGLBoolean; on a
// false result the reason is available from GetError.
type API interface {
	// GetPlatformDisplay wraps eglGetPlatformDisplayEXT. Implementations
	// without the extension return NoDisplay.
	GetPlatformDisplay(platform Enum, native NativeDisplay, attribs []Int) Display
	GetDisplay(native NativeDisplay) Display
	Initialize(d Display) (major, minor Int, ok bool)
	ChooseConfig(d Display, attribs []Int) (cfg Config, count Int, ok bool)
	BindAPI(api Enum) bool
	CreateWindowSurface(d Display, cfg Config, win NativeWindow, attribs []Int) Surface
	CreateContext(d Display, cfg Config, share Context, attribs []Int) Context
	MakeCurrent(d Display, draw, read Surface, ctx Context) bool
	SwapInterval(d Display, interval Int) bool
	SwapBuffers(d Display, s Surface) bool
	DestroyContext(d Display, ctx Context) bool
	DestroySurface(d Display, s Surface) bool
	Terminate(d Display) bool
	GetError() Int
}
