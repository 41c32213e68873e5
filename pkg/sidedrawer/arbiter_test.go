package sidedrawer

import (
	"testing"

	"github.com/BrandonKowalski/sidedrawer/pkg/sidedrawer/gesture"
)

func TestArbiterEdgeBand(t *testing.T) {
	a := Arbiter{EdgeGestureWidth: 20}
	closed := Flags{}

	if a.ShouldReceive(RoleEdgeOpen, 21, closed) {
		t.Error("edge gesture received a touch outside the band")
	}
	if !a.ShouldReceive(RoleEdgeOpen, 19, closed) {
		t.Error("edge gesture refused a touch inside the band")
	}
	if !a.ShouldReceive(RoleEdgeOpen, 20, closed) {
		t.Error("edge gesture refused a touch on the band boundary")
	}
	if a.ShouldReceive(RoleEdgeOpen, 5, Flags{Open: true}) {
		t.Error("edge gesture received a touch while open")
	}
}

func TestArbiterReverseGating(t *testing.T) {
	a := Arbiter{EdgeGestureWidth: 20}

	for _, x := range []float64{0, 10, 100, 1000} {
		if a.ShouldReceive(RoleDragClose, x, Flags{}) {
			t.Errorf("close gesture received a touch at %v while closed", x)
		}
		if a.ShouldReceive(RoleDragClose, x, Flags{EdgeInProgress: true}) {
			t.Errorf("close gesture received a touch at %v while closed and edge in progress", x)
		}
		if !a.ShouldReceive(RoleDragClose, x, Flags{Open: true}) {
			t.Errorf("close gesture refused a touch at %v while open", x)
		}
	}
}

func TestArbiterForeignAlwaysReceives(t *testing.T) {
	a := Arbiter{EdgeGestureWidth: 20}

	for _, role := range []Role{RoleForeignHorizontal, RoleForeignVertical, RoleTap} {
		for _, f := range []Flags{{}, {Open: true}, {EdgeInProgress: true}} {
			if !a.ShouldReceive(role, 5, f) {
				t.Errorf("%v refused a touch with flags %+v", role, f)
			}
		}
	}
}

func TestArbiterSimultaneity(t *testing.T) {
	a := Arbiter{EdgeGestureWidth: 20}

	tests := []struct {
		name    string
		role    Role
		originX float64
		flags   Flags
		want    bool
	}{
		{"edge in band", RoleEdgeOpen, 10, Flags{}, true},
		{"edge outside band", RoleEdgeOpen, 30, Flags{}, false},
		{"edge revoked once in progress", RoleEdgeOpen, 10, Flags{EdgeInProgress: true}, false},
		{"close gesture", RoleDragClose, 10, Flags{Open: true}, false},
		{"foreign", RoleForeignHorizontal, 10, Flags{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ShouldRecognizeSimultaneously(tt.role, tt.originX, RoleForeignHorizontal, tt.flags); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArbiterRequiredToFail(t *testing.T) {
	a := Arbiter{EdgeGestureWidth: 20}

	if !a.ShouldBeRequiredToFailBy(RoleEdgeOpen, RoleForeignHorizontal, 10) {
		t.Error("horizontal pan in band does not wait for the edge gesture")
	}
	if a.ShouldBeRequiredToFailBy(RoleEdgeOpen, RoleForeignHorizontal, 40) {
		t.Error("horizontal pan outside band waits for the edge gesture")
	}
	if a.ShouldBeRequiredToFailBy(RoleEdgeOpen, RoleForeignVertical, 10) {
		t.Error("vertical pan waits for the edge gesture")
	}
	if a.ShouldBeRequiredToFailBy(RoleEdgeOpen, RoleTap, 10) {
		t.Error("tap waits for the edge gesture")
	}
	if a.ShouldBeRequiredToFailBy(RoleDragClose, RoleForeignHorizontal, 10) {
		t.Error("horizontal pan waits for the close gesture")
	}
}

func TestRoleFor(t *testing.T) {
	tests := []struct {
		r    *gesture.Recognizer
		want Role
	}{
		{gesture.NewPan("h", gesture.AxisHorizontal, nil), RoleForeignHorizontal},
		{gesture.NewPan("v", gesture.AxisVertical, nil), RoleForeignVertical},
		{gesture.NewPan("free", gesture.AxisFree, nil), RoleForeignHorizontal},
		{gesture.NewTap("tap", nil), RoleTap},
	}

	for _, tt := range tests {
		if got := RoleFor(tt.r); got != tt.want {
			t.Errorf("RoleFor(%s) = %v, want %v", tt.r.Name(), got, tt.want)
		}
	}
}
