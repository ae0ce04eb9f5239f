package xsatmgr

import "errors"

var (
	// ErrOutputNotFound is returned when no connected output matches the
	// requested name.
	ErrOutputNotFound = errors.New("output not found")
	// ErrUnknownProperty is returned when the display server has no
	// property registered under the requested name.
	ErrUnknownProperty = errors.New("property name not known to display server")
	// ErrPropertyNotOnOutput is returned when the output does not
	// advertise the property, typically because the hardware lacks color
	// management support.
	ErrPropertyNotOnOutput = errors.New("property not present on output")
	// ErrTransmitFailed is returned when the server rejected the property
	// change or the apply synchronization failed.
	ErrTransmitFailed = errors.New("property change not applied")
)
