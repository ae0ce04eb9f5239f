package xsatmgr

// Output is an opaque display output handle, valid for the lifetime of
// the Session that produced it.
type Output uint32

// OutputInfo pairs an output handle with its connector name as reported
// by the display server.
type OutputInfo struct {
	Name   string
	Output Output
}

// PropertyID is a display-server-internal identifier for a property name
// (an interned atom under X11).
type PropertyID uint32

// Format is the bit width of one element of a property array value.
type Format uint8

const (
	Format16 Format = 16
	Format32 Format = 32
)

// Well-known DRM color management property names.
const (
	PropCTM     = "CTM"
	PropDegamma = "DEGAMMA_LUT"
	PropRegamma = "GAMMA_LUT"
)

// Session is the capability the core needs from a live display server
// connection. Connection setup and teardown belong to the caller; a
// Session is assumed usable for the whole of one apply run. The xrandr
// sub-package provides the real implementation, tests use a fake.
type Session interface {
	// Outputs enumerates the currently known outputs.
	Outputs() ([]OutputInfo, error)
	// LookupProperty resolves a property name to its server identifier.
	// The bool is false when the server has no such name registered.
	LookupProperty(name string) (PropertyID, bool, error)
	// OutputHasProperty reports whether the output advertises the
	// property.
	OutputHasProperty(out Output, prop PropertyID) (bool, error)
	// ChangeOutputProperty replaces the property's value with the given
	// integer array. For Format16 only the low 16 bits of each element
	// are transmitted.
	ChangeOutputProperty(out Output, prop PropertyID, format Format, data []uint32) error
	// Sync blocks until all pending changes have been applied by the
	// server.
	Sync() error
}
