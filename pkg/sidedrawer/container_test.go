package sidedrawer

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

type phaseLog struct {
	phases []gesture.Phase
}

func (l *phaseLog) handle(_ *gesture.Recognizer, s gesture.Sample) {
	l.phases = append(l.phases, s.Phase)
}

func (l *phaseLog) began() bool {
	for _, p := range l.phases {
		if p == gesture.PhaseBegan {
			return true
		}
	}
	return false
}

func newTestContainer() (*Container, *fakePanel) {
	side := &fakePanel{}
	return New(side, &fakePanel{}, testOptions()), side
}

func TestNewPanicsWithoutPanels(t *testing.T) {
	tests := []struct {
		name       string
		side, main Panel
	}{
		{"no side", nil, &fakePanel{}},
		{"no main", &fakePanel{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, ok := recover().(error)
				if !ok || !errors.Is(err, ErrMissingPanel) {
					t.Fatalf("recovered %v, want ErrMissingPanel", err)
				}
			}()
			New(tt.side, tt.main, testOptions())
		})
	}
}

func TestContainerRestingLayout(t *testing.T) {
	c, _ := newTestContainer()

	l := c.Layout()
	if l.Side.X != -300 || l.Side.W != 300 || l.Side.H != 667 {
		t.Errorf("side rect at rest = %+v", l.Side)
	}
	if l.OverlayOpacity != 0 {
		t.Errorf("overlay opacity at rest = %v", l.OverlayOpacity)
	}
	if l.Main != (Rect{W: 375, H: 667}) {
		t.Errorf("main rect = %+v", l.Main)
	}

	c.Open(false)
	l = c.Layout()
	if l.Side.X != 0 || l.OverlayOpacity != 0.4 {
		t.Errorf("open layout = %+v", l)
	}
}

func TestContainerEdgeSwipeOpens(t *testing.T) {
	c, side := newTestContainer()

	drag(c, 5, 300, 200, 302, 10, ms(16))

	if !c.Drawer().IsOpen() {
		t.Fatal("edge swipe past a third did not open")
	}
	if len(side.events) != 2 || side.events[0] != "begin(true,true)" {
		t.Errorf("hooks = %v", side.events)
	}
}

func TestContainerShortEdgeSwipeSnapsBack(t *testing.T) {
	c, _ := newTestContainer()

	// 60 units over a second is well under the fast swipe threshold.
	drag(c, 5, 300, 65, 300, 10, ms(100))

	if c.Drawer().IsOpen() {
		t.Fatal("short slow swipe opened the drawer")
	}
	if c.Drawer().Frame() != (Frame{}) {
		t.Errorf("frame = %+v, want closed", c.Drawer().Frame())
	}
}

func TestContainerEdgeBandGating(t *testing.T) {
	c, _ := newTestContainer()

	drag(c, 21, 300, 250, 300, 10, ms(16))
	if c.Drawer().IsOpen() {
		t.Fatal("swipe starting outside the band opened the drawer")
	}

	drag(c, 19, 300, 250, 300, 10, ms(16))
	if !c.Drawer().IsOpen() {
		t.Fatal("swipe starting inside the band did not open the drawer")
	}
}

func TestContainerEdgeBeatsHorizontalScroller(t *testing.T) {
	c, _ := newTestContainer()
	var carousel phaseLog
	c.AddRecognizer(gesture.NewPan("carousel", gesture.AxisHorizontal, carousel.handle), LayerMain)

	drag(c, 5, 300, 200, 300, 10, ms(16))

	if !c.Drawer().IsOpen() {
		t.Fatal("edge swipe over a carousel did not open")
	}
	if carousel.began() {
		t.Errorf("carousel also recognized the edge swipe: %v", carousel.phases)
	}
}

func TestContainerScrollerOutsideBandUnaffected(t *testing.T) {
	c, _ := newTestContainer()
	var carousel phaseLog
	c.AddRecognizer(gesture.NewPan("carousel", gesture.AxisHorizontal, carousel.handle), LayerMain)

	drag(c, 100, 300, 300, 300, 10, ms(16))

	if c.Drawer().IsOpen() {
		t.Fatal("carousel swipe opened the drawer")
	}
	if !carousel.began() {
		t.Errorf("carousel did not recognize: %v", carousel.phases)
	}
}

func TestContainerVerticalScrollerUnaffected(t *testing.T) {
	c, _ := newTestContainer()
	var list phaseLog
	c.AddRecognizer(gesture.NewPan("list", gesture.AxisVertical, list.handle), LayerMain)

	drag(c, 5, 300, 7, 100, 10, ms(16))

	if !list.began() {
		t.Fatalf("vertical list did not recognize a drag at the edge: %v", list.phases)
	}
	if c.Drawer().IsOpen() || c.Drawer().Flags().EdgeInProgress {
		t.Errorf("vertical drag moved the drawer: open %v flags %+v", c.Drawer().IsOpen(), c.Drawer().Flags())
	}
}

func TestContainerOverlayTapCloses(t *testing.T) {
	c, side := newTestContainer()
	c.Open(false)
	side.events = nil

	tap(c, 340, 300)

	if c.Drawer().IsOpen() {
		t.Fatal("overlay tap did not close")
	}
	if len(side.events) != 2 || side.events[0] != "begin(false,true)" {
		t.Errorf("hooks = %v", side.events)
	}
}

func TestContainerTapOnPanelStaysOpen(t *testing.T) {
	c, _ := newTestContainer()
	c.Open(false)
	var item phaseLog
	c.AddRecognizer(gesture.NewTap("item", item.handle), LayerSide)

	tap(c, 100, 300)

	if !c.Drawer().IsOpen() {
		t.Fatal("tap inside the panel closed the drawer")
	}
	if len(item.phases) != 1 || item.phases[0] != gesture.PhaseEnded {
		t.Errorf("panel item phases = %v, want [ended]", item.phases)
	}
}

func TestContainerReverseSwipeCloses(t *testing.T) {
	c, _ := newTestContainer()
	c.Open(false)
	var carousel phaseLog
	c.AddRecognizer(gesture.NewPan("carousel", gesture.AxisHorizontal, carousel.handle), LayerMain)

	drag(c, 340, 300, 100, 300, 10, ms(16))

	if c.Drawer().IsOpen() {
		t.Fatal("reverse swipe did not close")
	}
	if len(carousel.phases) != 0 {
		t.Errorf("content under the overlay saw the swipe: %v", carousel.phases)
	}
}

func TestContainerShortReverseSwipeStaysOpen(t *testing.T) {
	c, _ := newTestContainer()
	c.Open(false)

	drag(c, 250, 300, 200, 300, 10, ms(100))

	if !c.Drawer().IsOpen() {
		t.Fatal("short reverse swipe closed the drawer")
	}
	if got := c.Drawer().Frame().Offset; got != 300 {
		t.Errorf("offset = %v, want 300", got)
	}
}

func TestContainerHitTest(t *testing.T) {
	c, _ := newTestContainer()

	if got := c.HitTest(gesture.Point{X: 100, Y: 10}); got != LayerMain {
		t.Errorf("closed hit = %v, want main", got)
	}

	c.Open(false)
	if got := c.HitTest(gesture.Point{X: 100, Y: 10}); got != LayerSide {
		t.Errorf("open hit in panel = %v, want side", got)
	}
	if got := c.HitTest(gesture.Point{X: 350, Y: 10}); got != LayerOverlay {
		t.Errorf("open hit beside panel = %v, want overlay", got)
	}
}

func TestContainerOverlayTapWhileClosing(t *testing.T) {
	clock := &fakeClock{}
	animator := NewTweenAnimator(clock.now)
	side := &fakePanel{}
	opts := testOptions()
	opts.Animator = animator
	c := New(side, &fakePanel{}, opts)

	c.Open(true)
	clock.t = ms(400)
	animator.Tick()

	c.Close(true)
	clock.t = ms(450)
	animator.Tick()

	if c.Layout().OverlayOpacity <= 0.01 {
		t.Fatalf("overlay already hidden at %v", c.Layout().OverlayOpacity)
	}
	if got := c.HitTest(gesture.Point{X: 350, Y: 300}); got != LayerMain {
		t.Errorf("hit beside a closing panel = %v, want main", got)
	}

	before := len(side.events)
	tap(c, 350, 300)
	if got := side.events[before:]; len(got) != 0 {
		t.Errorf("tap on a closing drawer drove hooks %v", got)
	}

	clock.t = ms(800)
	animator.Tick()
	if c.Drawer().State() != StateClosed || c.Layout().OverlayOpacity != 0 {
		t.Errorf("state %v opacity %v, want closed", c.Drawer().State(), c.Layout().OverlayOpacity)
	}
}
