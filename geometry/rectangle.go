package geometry

import (
	"math"

	"github.com/ctessum/geom"
)

// Rectangle is an axis-aligned box. Bounds are stored as given; nothing
// checks that xmin <= xmax or ymin <= ymax.
type Rectangle struct {
	xmin, ymin, xmax, ymax float64
}

func NewRectangle(xmin, ymin, xmax, ymax float64) Rectangle {
	return Rectangle{xmin: xmin, ymin: ymin, xmax: xmax, ymax: ymax}
}

// EmptyRectangle returns a rectangle with no extent. Merging it with any
// rectangle r yields r.
func EmptyRectangle() Rectangle {
	return RectangleFromBounds(geom.NewBounds())
}

// RectangleFromBounds converts a geom.Bounds. A nil b gives EmptyRectangle.
func RectangleFromBounds(b *geom.Bounds) Rectangle {
	if b == nil {
		return EmptyRectangle()
	}
	return NewRectangle(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

func (r Rectangle) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: r.xmin, Y: r.ymin},
		Max: geom.Point{X: r.xmax, Y: r.ymax},
	}
}

func (r Rectangle) XMin() float64 { return r.xmin }
func (r Rectangle) YMin() float64 { return r.ymin }
func (r Rectangle) XMax() float64 { return r.xmax }
func (r Rectangle) YMax() float64 { return r.ymax }

func (r Rectangle) Width() float64 {
	return r.xmax - r.xmin
}

func (r Rectangle) Height() float64 {
	return r.ymax - r.ymin
}

// IsEmpty reports whether a maximum bound lies below its minimum, as is the
// case for EmptyRectangle.
func (r Rectangle) IsEmpty() bool {
	return r.Bounds().Empty()
}

func (r Rectangle) TopLeft() Vector {
	return NewPoint(r.xmin, r.ymin)
}

func (r Rectangle) BottomRight() Vector {
	return NewPoint(r.xmax, r.ymax)
}

func (r Rectangle) Center() Vector {
	return NewPoint((r.xmin+r.xmax)/2, (r.ymin+r.ymax)/2)
}

func (r Rectangle) Equals(other Rectangle) bool {
	return r.TopLeft().Equals(other.TopLeft()) && r.BottomRight().Equals(other.BottomRight())
}

func (r *Rectangle) Set(xmin, ymin, xmax, ymax float64) {
	r.xmin = xmin
	r.ymin = ymin
	r.xmax = xmax
	r.ymax = ymax
}

// Intercept reports whether r and other do NOT intersect. Despite its name
// it is a disjointness test; rectangles that only share an edge are not
// disjoint. See Overlaps for the positive form.
func (r Rectangle) Intercept(other Rectangle) bool {
	return r.xmax < other.xmin ||
		r.xmin > other.xmax ||
		r.ymax < other.ymin ||
		r.ymin > other.ymax
}

// Overlaps reports whether r and other share at least one point.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Bounds().Overlaps(other.Bounds())
}

// Merge returns the rectangle whose minimums are the smaller of both
// minimums and whose maximums are the larger of both maximums.
func (r Rectangle) Merge(other Rectangle) Rectangle {
	return RectangleFromBounds(&geom.Bounds{
		Min: geom.Point{X: math.Min(r.xmin, other.xmin), Y: math.Min(r.ymin, other.ymin)},
		Max: geom.Point{X: math.Max(r.xmax, other.xmax), Y: math.Max(r.ymax, other.ymax)},
	})
}

// Less orders rectangles by their top-left corner. Rectangles with equal
// corners also compare as less.
func (r Rectangle) Less(other Rectangle) bool {
	if r.TopLeft().Less(other.TopLeft()) {
		return true
	}
	return r.Equals(other)
}

func (r Rectangle) Clone() Rectangle {
	return NewRectangle(r.xmin, r.ymin, r.xmax, r.ymax)
}

func (r Rectangle) String() string {
	return "[" + r.TopLeft().String() + ", " + r.BottomRight().String() + "]"
}
