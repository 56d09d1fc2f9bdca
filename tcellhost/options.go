package tcellhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	splitpane "github.com/grindlemire/go-splitpane"
)

// Option is a functional option for configuring a Host.
type Option func(*Host) error

// Styles are the styles used to draw a layout.
type Styles struct {
	Border    tcell.Style
	Title     tcell.Style
	Content   tcell.Style
	Separator tcell.Style
	Active    tcell.Style // separator being dragged
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Border:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Title:     tcell.StyleDefault.Bold(true),
		Content:   tcell.StyleDefault,
		Separator: tcell.StyleDefault.Foreground(tcell.ColorGray),
		Active:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// ContentFunc returns the text drawn inside a leaf.
type ContentFunc func(box splitpane.PaneBox) string

func defaultContent(box splitpane.PaneBox) string {
	if box.Content == nil {
		return ""
	}
	return fmt.Sprint(box.Content)
}

// WithStyles sets the drawing styles.
func WithStyles(s Styles) Option {
	return func(h *Host) error {
		h.styles = s
		return nil
	}
}

// WithContent sets the function producing the text inside each leaf.
func WithContent(fn ContentFunc) Option {
	return func(h *Host) error {
		if fn == nil {
			return fmt.Errorf("content func cannot be nil")
		}
		h.content = fn
		return nil
	}
}

// WithLayoutOptions passes options through to splitpane.New.
func WithLayoutOptions(opts ...splitpane.Option) Option {
	return func(h *Host) error {
		h.layoutOpts = append(h.layoutOpts, opts...)
		return nil
	}
}
