package splitpane

import (
	"fmt"
	"math"
	"time"

	"github.com/grindlemire/go-splitpane/internal/debug"
	"github.com/grindlemire/go-splitpane/internal/drag"
	"github.com/grindlemire/go-splitpane/internal/emit"
	"github.com/grindlemire/go-splitpane/internal/layout"
	"github.com/grindlemire/go-splitpane/internal/tree"
)

// SplitLayout is one live split-pane layout. It owns the pane tree, the
// drag gesture and the level subscriptions. Methods are not safe for
// concurrent use except Subscribe and the returned Unsubscribe.
type SplitLayout struct {
	host     Host
	tree     *tree.Tree
	repairs  []Repair
	emitter  *emit.Emitter
	drag     *drag.Controller
	onChange func(Config, SplitUpdateEvent)

	separator int
	now       func() time.Time

	frame    Frame
	arranged bool
	closed   bool
}

// New builds a layout from cfg. Invalid sizes and bounds are repaired (see
// Repairs); duplicate pane IDs are an error.
//
// host may be nil, in which case containers are measured from the last
// Arrange call and pointer events must be delivered through Pointer.
func New(cfg Config, host Host, opts ...Option) (*SplitLayout, error) {
	s := &SplitLayout{
		emitter:   emit.NewEmitter(),
		separator: 1,
		now:       time.Now,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	t, repairs, err := tree.Build(cfg.Direction, cfg.Panes)
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}
	s.tree = t
	s.repairs = repairs
	for _, r := range repairs {
		debug.Log("layout: repaired %s", r)
	}

	if host == nil {
		host = frameHost{s}
	}
	s.host = host
	s.drag = drag.New(model{s}, host)
	return s, nil
}

// Config returns the current configuration, including committed sizes.
func (s *SplitLayout) Config() Config {
	return Config{
		Direction: s.tree.Direction(),
		Panes:     s.tree.Specs(),
	}
}

// Repairs returns the fixes applied when the current configuration was built.
func (s *SplitLayout) Repairs() []Repair {
	out := make([]Repair, len(s.repairs))
	copy(out, s.repairs)
	return out
}

// Replace swaps in a new configuration wholesale and ends any drag in
// progress. When the new configuration differs from the old one only by
// the order of siblings, a reorder event is emitted at the deepest level
// containing every change. Other replacements are silent.
func (s *SplitLayout) Replace(cfg Config) error {
	if s.closed {
		return ErrClosed
	}

	t, repairs, err := tree.Build(cfg.Direction, cfg.Panes)
	if err != nil {
		return fmt.Errorf("replace layout: %w", err)
	}
	for _, r := range repairs {
		debug.Log("layout: repaired %s", r)
	}

	s.drag.End()
	prev := s.tree
	s.tree = t
	s.repairs = repairs
	s.rearrange()
	debug.Log("layout: replaced with %d panes", t.Len())

	if path, ok := tree.Reordered(prev, t); ok {
		owners, err := t.Owners(path)
		if err != nil {
			return err
		}
		s.emit(owners, SplitUpdateEvent{Kind: Reorder, SplitID: owners[0], Timestamp: s.now()})
	}
	return nil
}

// Solve returns the layout instructions for the current tree.
func (s *SplitLayout) Solve() []Instruction {
	return layout.Solve(s.tree)
}

// Arrange resolves the layout inside area and keeps the result for hit
// testing and measuring.
func (s *SplitLayout) Arrange(area Rect) Frame {
	s.frame = layout.Resolve(s.Solve(), s.tree.Direction(), area, s.separator)
	s.arranged = true
	return s.frame
}

// Frame returns the result of the last Arrange call, updated after every
// commit.
func (s *SplitLayout) Frame() Frame {
	return s.frame
}

func (s *SplitLayout) rearrange() {
	if s.arranged {
		s.Arrange(s.frame.Area)
	}
}

// PointerDown starts a drag if (x, y) lies on a separator of the last
// arranged frame. It returns true when a drag started.
func (s *SplitLayout) PointerDown(x, y float64) bool {
	if s.closed || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	sep, ok := s.frame.SeparatorAt(int(math.Floor(x)), int(math.Floor(y)))
	if !ok {
		return false
	}
	return s.BeginDrag(sep, x, y)
}

// BeginDrag starts a drag on sep with the pointer at (x, y). A drag
// already in progress is left alone and false is returned.
func (s *SplitLayout) BeginDrag(sep SeparatorBox, x, y float64) bool {
	if s.closed {
		return false
	}
	return s.drag.Begin(drag.Target{Level: sep.Level, Index: sep.Index}, drag.Point{X: x, Y: y})
}

// Pointer dispatches a pointer event. Hosts that capture the pointer
// through CapturePointer do not need to call it for moves and ups.
func (s *SplitLayout) Pointer(ev PointerEvent) {
	if ev.Kind == PointerDown {
		s.PointerDown(ev.X, ev.Y)
		return
	}
	s.drag.Handle(ev)
}

// DragState returns the current drag state.
func (s *SplitLayout) DragState() DragState {
	return s.drag.State()
}

// Subscribe adds a listener for events at the level owned by the split
// with the given ID. The empty ID names the root level.
func (s *SplitLayout) Subscribe(splitID string, fn Listener) (Unsubscribe, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if splitID != "" {
		path, ok := s.tree.Lookup(splitID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pane %q", ErrNoSuchLevel, splitID)
		}
		if _, err := s.tree.Level(path); err != nil {
			return nil, err
		}
	}
	return s.emitter.Subscribe(splitID, fn), nil
}

// Close ends any drag, releases the pointer capture and drops all
// listeners. Closing twice is a no-op.
func (s *SplitLayout) Close() error {
	if s.closed {
		return nil
	}
	s.drag.Close()
	s.emitter.Reset()
	s.closed = true
	debug.Log("layout: closed")
	return nil
}

// commit is the single write path for sizes.
func (s *SplitLayout) commit(path tree.Path, sizes []float64, splitID string) error {
	if s.closed {
		return ErrClosed
	}
	next, err := s.tree.Commit(path, sizes)
	if err != nil {
		return err
	}
	owners, err := next.Owners(path)
	if err != nil {
		return err
	}
	s.tree = next
	s.rearrange()
	debug.Log("layout: commit level %s sizes %v", path, sizes)

	s.emit(owners, SplitUpdateEvent{Kind: Resize, SplitID: splitID, Timestamp: s.now()})
	return nil
}

// emit delivers ev to every level from the mutated one up to the root and
// then reports the root's view of it to onChange.
func (s *SplitLayout) emit(owners []string, ev SplitUpdateEvent) {
	deliveries := s.emitter.Emit(owners, ev)
	if s.onChange != nil && len(deliveries) > 0 {
		s.onChange(s.Config(), deliveries[len(deliveries)-1].Event)
	}
}

// model adapts SplitLayout to the drag controller.
type model struct{ s *SplitLayout }

func (m model) Level(path tree.Path) (tree.Level, error) {
	return m.s.tree.Level(path)
}

func (m model) Commit(path tree.Path, sizes []float64, splitID string) error {
	return m.s.commit(path, sizes, splitID)
}

// frameHost measures from the last arranged frame and leaves pointer
// routing to Pointer.
type frameHost struct{ s *SplitLayout }

func (h frameHost) Measure(c Container) float64 {
	extent, _, ok := h.s.frame.Extent(c.SplitID)
	if !ok {
		return 0
	}
	return float64(extent)
}

func (h frameHost) CapturePointer(func(PointerEvent)) func() {
	return func() {}
}
