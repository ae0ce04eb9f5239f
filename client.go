package xsatmgr

import (
	"fmt"
	"io"
	"log/slog"
)

// Client resolves outputs and transmits color management blobs over a
// Session. All operations are synchronous; a failure at any stage is
// terminal for that call and nothing is retried.
type Client struct {
	sess   Session
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a structured logger for the client. The default
// discards all logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client on top of a live Session.
func New(sess Session, opts ...Option) *Client {
	c := &Client{
		sess:   sess,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveOutput finds the output with exactly the given connector name.
// The comparison is case-sensitive with no normalization; the first
// match wins.
func (c *Client) ResolveOutput(name string) (Output, error) {
	outputs, err := c.sess.Outputs()
	if err != nil {
		return 0, fmt.Errorf("list outputs: %w", err)
	}
	for _, info := range outputs {
		if info.Name == name {
			c.logger.Debug("resolved output", "name", name, "output", uint32(info.Output))
			return info.Output, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrOutputNotFound, name)
}

// SetCTM encodes the matrix into the signed-magnitude Q31.32 wire format,
// packs it into the 18-word blob and applies it to the output's CTM
// property.
func (c *Client) SetCTM(out Output, m ColorMatrix) error {
	return c.setBlob(out, PropCTM, Format32, PackCTM(EncodeCTM(m)))
}

// SetDegamma applies a degamma lookup table to the output.
func (c *Client) SetDegamma(out Output, lut LUT) error {
	return c.setBlob(out, PropDegamma, Format16, PackLUT(lut))
}

// SetRegamma applies a regamma lookup table to the output.
func (c *Client) SetRegamma(out Output, lut LUT) error {
	return c.setBlob(out, PropRegamma, Format16, PackLUT(lut))
}

// setBlob transmits a packed property value: resolve the property name,
// check the output advertises it, replace the value, then sync so the
// change is applied before returning. A lookup or advertisement failure
// never reaches the write step.
func (c *Client) setBlob(out Output, name string, format Format, data []uint32) error {
	prop, ok, err := c.sess.LookupProperty(name)
	if err != nil {
		return fmt.Errorf("look up property %q: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	has, err := c.sess.OutputHasProperty(out, prop)
	if err != nil {
		return fmt.Errorf("query property %q on output: %w", name, err)
	}
	if !has {
		return fmt.Errorf("%w: %q", ErrPropertyNotOnOutput, name)
	}
	if err := c.sess.ChangeOutputProperty(out, prop, format, data); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrTransmitFailed, name, err)
	}
	if err := c.sess.Sync(); err != nil {
		return fmt.Errorf("%w: sync after %q: %v", ErrTransmitFailed, name, err)
	}
	c.logger.Debug("property applied",
		"property", name, "elements", len(data), "format", int(format))
	return nil
}
