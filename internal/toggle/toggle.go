// SPDX-License-Identifier: Unlicense OR MIT

// Package toggle holds the two-state background controller driven by the
// toggle button.
package toggle

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	// ColorA is shown while the controller is not alternate, including
	// before the first activation.
	ColorA = nrgba(colornames.White)
	// ColorB is shown while the controller is alternate.
	ColorB = nrgba(colornames.Cyan)
)

// Controller owns the toggle state. It is not safe for concurrent use;
// callers drive it from the window's event goroutine.
type Controller struct {
	isAlternate bool
	activations int
}

// New returns a controller showing ColorA.
func New() *Controller {
	return new(Controller)
}

// Activate flips the state. Called once per button activation.
func (c *Controller) Activate() {
	c.isAlternate = !c.isAlternate
	c.activations++
}

// Alternate reports whether ColorB is current.
func (c *Controller) Alternate() bool {
	return c.isAlternate
}

// Activations returns how many times Activate was called.
func (c *Controller) Activations() int {
	return c.activations
}

// Color returns the panel background for the current state.
func (c *Controller) Color() color.NRGBA {
	if c.isAlternate {
		return ColorB
	}
	return ColorA
}

// nrgba converts an opaque color from the named table; the paint ops take
// non-premultiplied colors.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
