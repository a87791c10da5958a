// Package geometry models shapes as sibling variants of small contracts.
// A square is deliberately not a kind of rectangle here: Square has no
// SetWidth or SetHeight, so it can never be bound where independent
// dimensions are part of the contract. Callers select shapes by capability,
// never by inspecting concrete types.
package geometry

// Shape is the minimal area contract every variant satisfies.
type Shape interface {
	Area() float64
}

// Resizable is the contract for shapes whose width and height vary
// independently. Setting one dimension must never move the other; a type
// that cannot promise that must not implement this interface.
type Resizable interface {
	Shape
	SetWidth(w float64)
	SetHeight(h float64)
	Width() float64
	Height() float64
}

// Rectangle has independent width and height.
type Rectangle struct {
	width  float64
	height float64
}

// NewRectangle creates a rectangle.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{width: width, height: height}
}

func (r *Rectangle) SetWidth(w float64)  { r.width = w }
func (r *Rectangle) SetHeight(h float64) { r.height = h }
func (r *Rectangle) Width() float64      { return r.width }
func (r *Rectangle) Height() float64     { return r.height }
func (r *Rectangle) Area() float64       { return r.width * r.height }

// Square has a single side length. It satisfies Shape but not Resizable,
// which is the point: the constraint lives in the type, not in a runtime
// check.
type Square struct {
	side float64
}

// NewSquare creates a square.
func NewSquare(side float64) *Square {
	return &Square{side: side}
}

func (s *Square) SetSide(side float64) { s.side = side }
func (s *Square) Side() float64        { return s.side }
func (s *Square) Area() float64        { return s.side * s.side }
