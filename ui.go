// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"

	log "github.com/go-pkgz/lgr"

	"togglebg/internal/toggle"
)

const buttonLabel = "Toggle Background"

type UI struct {
	theme  *material.Theme
	button widget.Clickable
	toggle *toggle.Controller
}

type (
	C = layout.Context
	D = layout.Dimensions
)

func newUI() *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	return &UI{
		theme:  th,
		toggle: toggle.New(),
	}
}

// Layout draws the panel above the button. Clicks reported since the
// last frame are applied before the panel is painted.
func (u *UI) Layout(gtx C) D {
	for u.button.Clicked(gtx) {
		u.onToggleActivated()
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, u.layoutPanel),
		layout.Rigid(u.layoutButton),
	)
}

func (u *UI) onToggleActivated() {
	u.toggle.Activate()
	log.Printf("[DEBUG] toggle #%d, alternate=%t, color=%v",
		u.toggle.Activations(), u.toggle.Alternate(), u.toggle.Color())
}

func (u *UI) layoutPanel(gtx C) D {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, u.toggle.Color(), clip.Rect{Max: size}.Op())
	return D{Size: size}
}

func (u *UI) layoutButton(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return material.Button(u.theme, &u.button, buttonLabel).Layout(gtx)
}
