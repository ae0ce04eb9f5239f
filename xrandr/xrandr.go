// Package xrandr implements the xsatmgr display session over the X11
// RandR protocol using the pure-Go xgb binding.
package xrandr

import (
	"encoding/binary"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"github.com/NogradThGin/xsatmgr"
)

// Session is a live X11 connection with the RandR extension initialized.
type Session struct {
	conn *xgb.Conn
	root xproto.Window
}

var _ xsatmgr.Session = (*Session)(nil)

// Open connects to the X display (the DISPLAY environment variable when
// display is empty) and initializes the RandR extension.
func Open(display string) (*Session, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize RandR extension: %w", err)
	}
	root := xproto.Setup(conn).DefaultScreen(conn).Root
	return &Session{conn: conn, root: root}, nil
}

// Close disconnects from the display server.
func (s *Session) Close() {
	s.conn.Close()
}

// Outputs enumerates the outputs of the default screen's current RandR
// resources.
func (s *Session) Outputs() ([]xsatmgr.OutputInfo, error) {
	res, err := randr.GetScreenResourcesCurrent(s.conn, s.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("get screen resources: %w", err)
	}
	outputs := make([]xsatmgr.OutputInfo, 0, len(res.Outputs))
	for _, out := range res.Outputs {
		info, err := randr.GetOutputInfo(s.conn, out, 0).Reply()
		if err != nil {
			return nil, fmt.Errorf("get output info: %w", err)
		}
		outputs = append(outputs, xsatmgr.OutputInfo{
			Name:   string(info.Name),
			Output: xsatmgr.Output(out),
		})
	}
	return outputs, nil
}

// LookupProperty interns the property name only if it already exists on
// the server, mirroring XInternAtom with only_if_exists set.
func (s *Session) LookupProperty(name string) (xsatmgr.PropertyID, bool, error) {
	reply, err := xproto.InternAtom(s.conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, false, fmt.Errorf("intern atom %q: %w", name, err)
	}
	if reply.Atom == xproto.AtomNone {
		return 0, false, nil
	}
	return xsatmgr.PropertyID(reply.Atom), true, nil
}

// OutputHasProperty queries the property's configuration on the output.
// The server answers BadName for a property the output does not carry.
func (s *Session) OutputHasProperty(out xsatmgr.Output, prop xsatmgr.PropertyID) (bool, error) {
	_, err := randr.QueryOutputProperty(s.conn, randr.Output(out), xproto.Atom(prop)).Reply()
	if err != nil {
		if _, ok := err.(xproto.NameError); ok {
			return false, nil
		}
		return false, fmt.Errorf("query output property: %w", err)
	}
	return true, nil
}

// ChangeOutputProperty replaces the property value with the given integer
// array. xgb speaks LSB-first on the wire, so elements are serialized
// little-endian regardless of the host order.
func (s *Session) ChangeOutputProperty(out xsatmgr.Output, prop xsatmgr.PropertyID, format xsatmgr.Format, data []uint32) error {
	var buf []byte
	switch format {
	case xsatmgr.Format16:
		buf = make([]byte, 0, len(data)*2)
		for _, w := range data {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(w))
		}
	case xsatmgr.Format32:
		buf = make([]byte, 0, len(data)*4)
		for _, w := range data {
			buf = binary.LittleEndian.AppendUint32(buf, w)
		}
	default:
		return fmt.Errorf("unsupported property format %d", format)
	}
	err := randr.ChangeOutputPropertyChecked(s.conn, randr.Output(out),
		xproto.Atom(prop), xproto.AtomInteger, byte(format),
		xproto.PropModeReplace, uint32(len(data)), buf).Check()
	if err != nil {
		return fmt.Errorf("change output property: %w", err)
	}
	return nil
}

// Sync performs a no-op round trip, guaranteeing every previously issued
// request has been processed by the server, the xgb equivalent of XSync.
func (s *Session) Sync() error {
	if _, err := xproto.GetInputFocus(s.conn).Reply(); err != nil {
		return fmt.Errorf("sync with display server: %w", err)
	}
	return nil
}
