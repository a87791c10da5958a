package geometry

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// dimensionsIndependent is the generic contract-level substitutability
// check: setting one dimension must leave the other untouched, for any
// Resizable, regardless of its concrete type.
func dimensionsIndependent(r Resizable, w, h float64) bool {
	r.SetWidth(w)
	r.SetHeight(h)
	return r.Width() == w && r.Height() == h
}

func TestRectangle_DimensionsAreIndependent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := rapid.Float64Range(0, 1e6).Draw(rt, "width")
		h := rapid.Float64Range(0, 1e6).Draw(rt, "height")

		rect := NewRectangle(1, 1)
		if !dimensionsIndependent(rect, w, h) {
			rt.Fatalf("rectangle coupled its dimensions: w=%v h=%v got %vx%v",
				w, h, rect.Width(), rect.Height())
		}
		if rect.Area() != w*h {
			rt.Fatalf("area %v, want %v", rect.Area(), w*h)
		}
	})
}

// coupledSquare is the classic hazard: a "square" pretending to be a
// resizable rectangle by silently moving the other dimension. It exists
// only to show that the generic check above catches it.
type coupledSquare struct {
	side float64
}

func (s *coupledSquare) SetWidth(w float64)  { s.side = w }
func (s *coupledSquare) SetHeight(h float64) { s.side = h }
func (s *coupledSquare) Width() float64      { return s.side }
func (s *coupledSquare) Height() float64     { return s.side }
func (s *coupledSquare) Area() float64       { return s.side * s.side }

func TestCoupledVariant_FailsSubstitutabilityCheck(t *testing.T) {
	// 5x4: the caller set both dimensions and expects 20, the coupled
	// variant answers 16.
	var victim Resizable = &coupledSquare{}
	require.False(t, dimensionsIndependent(victim, 5, 4))
	require.Equal(t, 16.0, victim.Area())

	// The same drive against a real rectangle holds.
	require.True(t, dimensionsIndependent(NewRectangle(1, 1), 5, 4))
}

func TestSquare_IsNotResizable(t *testing.T) {
	// The redesign keeps Square outside the Resizable contract entirely, so
	// the hazard above cannot be expressed with the shipped types.
	resizable := reflect.TypeOf((*Resizable)(nil)).Elem()
	require.False(t, reflect.TypeOf(&Square{}).Implements(resizable))

	shape := reflect.TypeOf((*Shape)(nil)).Elem()
	require.True(t, reflect.TypeOf(&Square{}).Implements(shape))
}

func TestSquare_AreaTracksSide(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		side := rapid.Float64Range(0, 1e6).Draw(rt, "side")

		sq := NewSquare(1)
		sq.SetSide(side)
		if sq.Area() != side*side {
			rt.Fatalf("area %v, want %v", sq.Area(), side*side)
		}
	})
}
