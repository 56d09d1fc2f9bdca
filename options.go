package splitpane

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a SplitLayout.
type Option func(*SplitLayout) error

// WithOnChange sets the root listener. fn receives the new configuration
// and the event seen at the root level exactly once per committed change.
func WithOnChange(fn func(Config, SplitUpdateEvent)) Option {
	return func(s *SplitLayout) error {
		s.onChange = fn
		return nil
	}
}

// WithSeparatorSize sets the thickness in cells of the separator between
// adjacent panes. Default is 1. Zero hides separators from hit testing.
func WithSeparatorSize(n int) Option {
	return func(s *SplitLayout) error {
		if n < 0 {
			return fmt.Errorf("separator size cannot be negative")
		}
		s.separator = n
		return nil
	}
}

// WithClock sets the time source for event timestamps. Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *SplitLayout) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		s.now = now
		return nil
	}
}
