package geometry

import (
	"math"

	"github.com/ctessum/geom"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func (v Vector) ToGeomPoint() geom.Point {
	return geom.Point{X: v.X, Y: v.Y}
}

func VectorFromGeomPoint(p geom.Point) Vector {
	return NewPoint(p.X, p.Y)
}

func (v Vector) ToVec2() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

func VectorFromVec2(vec f64.Vec2) Vector {
	return NewVector(vec[0], vec[1])
}

// ToFixed converts v to 26.6 fixed point, rounding to the nearest 1/64.
func (v Vector) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}

// Transform applies the affine matrix m in place:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
func (v *Vector) Transform(m f64.Aff3) *Vector {
	x, y := v.X, v.Y
	v.X = m[0]*x + m[1]*y + m[2]
	v.Y = m[3]*x + m[4]*y + m[5]
	return v
}
