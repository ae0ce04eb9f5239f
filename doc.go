// Package xsatmgr adjusts display color rendering through the DRM color
// management properties exposed over X11 RandR.
//
// The core pipeline turns a requested saturation level into a 3x3 color
// transform matrix (CTM), encodes it in the signed-magnitude Q31.32
// fixed-point format the kernel expects, packs it into a word-padded
// 32-bit blob and transmits it to a named output's CTM property. De- and
// regamma lookup tables can be generated and transmitted the same way.
//
// The display server is abstracted behind the Session interface, so the
// whole pipeline can be exercised without an X connection. A real backend
// lives in the xrandr sub-package.
package xsatmgr

// Version is the release version of xsatmgr.
const Version = "0.3.0"
