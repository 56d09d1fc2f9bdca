// Package tcellhost runs a split-pane layout in a terminal using tcell.
//
// The host measures containers in cells, translates left-button mouse
// input into pointer events and draws each leaf as a titled box.
package tcellhost

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	splitpane "github.com/grindlemire/go-splitpane"
	"github.com/grindlemire/go-splitpane/internal/debug"
)

// Host owns a tcell screen and the layout drawn on it.
type Host struct {
	screen  tcell.Screen
	layout  *splitpane.SplitLayout
	styles  Styles
	content ContentFunc

	layoutOpts []splitpane.Option

	capture     func(splitpane.PointerEvent)
	prevButtons tcell.ButtonMask
}

// New creates a host drawing cfg on screen. The screen must already be
// initialized; the caller keeps ownership of it.
func New(screen tcell.Screen, cfg splitpane.Config, opts ...Option) (*Host, error) {
	h := &Host{
		screen:  screen,
		styles:  DefaultStyles(),
		content: defaultContent,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}

	layout, err := splitpane.New(cfg, h, h.layoutOpts...)
	if err != nil {
		return nil, err
	}
	h.layout = layout
	return h, nil
}

// Layout returns the layout driven by the host.
func (h *Host) Layout() *splitpane.SplitLayout {
	return h.layout
}

// Measure returns the cells available to the panes of a container along
// its axis, separators excluded.
func (h *Host) Measure(c splitpane.Container) float64 {
	extent, _, ok := h.layout.Frame().Extent(c.SplitID)
	if !ok {
		return 0
	}
	return float64(extent)
}

// CapturePointer routes every mouse event to fn until released.
func (h *Host) CapturePointer(fn func(splitpane.PointerEvent)) func() {
	h.capture = fn
	return func() {
		h.capture = nil
	}
}

// Captured returns true while a drag holds the pointer.
func (h *Host) Captured() bool {
	return h.capture != nil
}

// Resize arranges the layout to fill the screen.
func (h *Host) Resize() {
	w, ht := h.screen.Size()
	h.layout.Arrange(splitpane.NewRect(0, 0, w, ht))
}

// HandleEvent processes one screen event. It returns true when the user
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.Resize()
		h.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.HandleMouse(x, y, ev.Buttons())
	}
	return false
}

// HandleMouse translates a mouse report into pointer events. A drag starts
// when the left button goes down on a separator, moves while it stays
// down and ends on release, wherever the mouse is.
func (h *Host) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	down := buttons&tcell.Button1 != 0
	prevDown := h.prevButtons&tcell.Button1 != 0
	h.prevButtons = buttons

	px, py := float64(x), float64(y)
	if h.capture != nil {
		if down {
			h.capture(splitpane.PointerEvent{Kind: splitpane.PointerMove, X: px, Y: py})
		} else if prevDown {
			h.capture(splitpane.PointerEvent{Kind: splitpane.PointerUp, X: px, Y: py})
		}
		return
	}

	if down && !prevDown {
		h.layout.PointerDown(px, py)
	}
}

// Run draws the layout and processes events until the user quits or ctx
// is cancelled. Mouse reporting is enabled for the duration of the call.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	h.Resize()
	h.Draw()
	debug.Log("tcellhost: running")

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h.screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if h.HandleEvent(ev) {
					return nil
				}
				h.Draw()
			}
		}
	})

	err := g.Wait()
	debug.Log("tcellhost: stopped: %v", err)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tcellhost: %w", err)
	}
	return nil
}

// Close closes the layout. The screen is left to the caller.
func (h *Host) Close() error {
	return h.layout.Close()
}
