package gles

import (
	"errors"
	"fmt"
)

// Category names the OpenGL ES error domain.
const Category = "OpenGL Error"

// Code is a value returned by glGetError.
type Code Enum

// https://www.khronos.org/registry/OpenGL-Refpages/es3.0/html/glGetError.xhtml
func (c Code) String() string {
	switch Enum(c) {
	case NO_ERROR:
		return "Success"
	case INVALID_ENUM:
		return "Invalid enumerated argument"
	case INVALID_VALUE:
		return "Invalid numeric argument"
	case INVALID_OPERATION:
		return "Invalid operation"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "Invalid framebuffer operation"
	case OUT_OF_MEMORY:
		return "Out of memory"
	}
	return fmt.Sprintf("Unknown error code: %d", uint32(c))
}

// Current fetches and resets the oldest pending GL error flag.
func Current(f Functions) Code {
	return Code(f.GetError())
}

// Clear drains every pending GL error flag. It is only meant for discarding
// transient state after an optional feature failed to initialize.
func Clear(f Functions) {
	// A lost context may report errors forever.
	for i := 0; i < 16; i++ {
		if Current(f) == Code(NO_ERROR) {
			return
		}
	}
}

// ErrIndexOutOfRange is returned by bounds-checked batch access.
var ErrIndexOutOfRange = errors.New("index out of range")

// Error is a failed GL call.
type Error struct {
	Code Code
	Op   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s 0x%04X)", e.Op, e.Code, Category, uint32(e.Code))
}

// Domain returns the error category.
func (e *Error) Domain() string { return Category }

// Check returns nil when no GL error is pending and an *Error naming op
// otherwise.
func Check(f Functions, op string) error {
	if code := Current(f); code != Code(NO_ERROR) {
		return &Error{Code: code, Op: op}
	}
	return nil
}
