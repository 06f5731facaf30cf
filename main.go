// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program with a button that toggles the background of a panel
// between white and cyan. See https://gioui.org for more information.

import (
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	log "github.com/go-pkgz/lgr"
)

const (
	windowTitle  = "Toggle Background"
	windowWidth  = unit.Dp(400)
	windowHeight = unit.Dp(300)
)

func main() {
	log.Setup(log.Msec, log.LevelBraces)
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title(windowTitle),
			app.Size(windowWidth, windowHeight),
		)
		log.Printf("[INFO] opening %q window", windowTitle)
		if err := run(w, newUI()); err != nil {
			log.Printf("[ERROR] failed: %v", err)
			os.Exit(1)
		}
		log.Printf("[INFO] window closed")
		os.Exit(0)
	}()
	app.Main()
}

// run processes window events until the window is destroyed.
func run(w *app.Window, u *UI) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return closeErr(e)
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// closeErr reports the toolkit failure carried by a destroy event. A nil
// result means the user closed the window.
func closeErr(e app.DestroyEvent) error {
	if e.Err != nil {
		return fmt.Errorf("window destroyed: %w", e.Err)
	}
	return nil
}
