package egl

import (
	"errors"
	"fmt"
)

// Category names the EGL error domain.
const Category = "EGL Error"

// Code is a value returned by eglGetError.
type Code Int

// https://www.khronos.org/registry/EGL/sdk/docs/man/html/eglGetError.xhtml
const (
	Success           Code = 0x3000
	NotInitialized    Code = 0x3001
	BadAccess         Code = 0x3002
	BadAlloc          Code = 0x3003
	BadAttribute      Code = 0x3004
	BadConfig         Code = 0x3005
	BadContext        Code = 0x3006
	BadCurrentSurface Code = 0x3007
	BadDisplay        Code = 0x3008
	BadMatch          Code = 0x3009
	BadNativePixmap   Code = 0x300A
	BadNativeWindow   Code = 0x300B
	BadParameter      Code = 0x300C
	BadSurface        Code = 0x300D
	ContextLost       Code = 0x300E
)

var messages = map[Code]string{
	Success:           "Success",
	NotInitialized:    "Not initialized",
	BadAccess:         "EGL cannot access a requested resource",
	BadAlloc:          "EGL failed to allocate resources for the requested operation",
	BadAttribute:      "An unrecognized attribute or attribute value was passed in the attribute list",
	BadContext:        "An EGLContext argument does not name a valid EGL rendering context",
	BadConfig:         "An EGLConfig argument does not name a valid EGL frame buffer configuration",
	BadCurrentSurface: "The current surface of the calling thread is no longer valid",
	BadDisplay:        "An EGLDisplay argument does not name a valid EGL display connection",
	BadSurface:        "An EGLSurface argument does not name a valid surface configured for GL rendering",
	BadMatch:          "Arguments are inconsistent",
	BadParameter:      "One or more argument values are invalid",
	BadNativePixmap:   "A NativePixmapType argument does not refer to a valid native pixmap",
	BadNativeWindow:   "A NativeWindowType argument does not refer to a valid native window",
	ContextLost:       "A power management event has occurred",
}

// String returns the human readable message for c.
func (c Code) String() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error code: %d", int32(c))
}

// Current fetches the calling thread's EGL error. Reading it resets the
// state to Success.
func Current(api API) Code {
	return Code(api.GetError())
}

// ErrNoConfig is returned when no frame buffer configuration satisfies the
// requested attributes.
var ErrNoConfig = errors.New("could not choose a valid OpenGL ES 3 config")

// Error is a failed EGL call.
type Error struct {
	Code Code
	Op   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s 0x%04X)", e.Op, e.Code, Category, int32(e.Code))
}

// Domain returns the error category.
func (e *Error) Domain() string { return Category }

// Fail builds an *Error from the current EGL error state.
func Fail(api API, op string) *Error {
	return &Error{Code: Current(api), Op: op}
}

// Check returns nil when no EGL error is pending and an *Error naming op
// otherwise.
func Check(api API, op string) error {
	if code := Current(api); code != Success {
		return &Error{Code: code, Op: op}
	}
	return nil
}
