package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind tells which constructor produced a Vector. Clone uses it to build a
// value of the same kind.
type Kind uint8

const (
	KindVector Kind = iota
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	default:
		return "vector"
	}
}

var factories = [...]func(x, y float64) Vector{
	KindVector: NewVector,
	KindPoint:  NewPoint,
}

// DefaultPrecision is the number of decimal digits Round is usually called with.
const DefaultPrecision = 2

var ErrInvalidPrecision = errors.New("invalid rounding precision")

var powersOfTen = [...]float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000, 10000000000}

// Vector is a mutable pair of planar coordinates. Methods that change the
// vector return the receiver so calls can be chained.
type Vector struct {
	X float64
	Y float64

	kind Kind
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y, kind: KindVector}
}

func NewPoint(x, y float64) Vector {
	return Vector{X: x, Y: y, kind: KindPoint}
}

func (v Vector) Kind() Kind {
	return v.kind
}

func (v *Vector) SetAxes(x, y float64) *Vector {
	v.X = x
	v.Y = y
	return v
}

func (v *Vector) SetX(x float64) *Vector {
	v.X = x
	return v
}

func (v *Vector) SetY(y float64) *Vector {
	v.Y = y
	return v
}

func (v Vector) GetX() float64 {
	return v.X
}

func (v Vector) GetY() float64 {
	return v.Y
}

// Angle is an alias of HorizontalAngle.
func (v Vector) Angle() float64 {
	return v.HorizontalAngle()
}

func (v Vector) AngleDeg() float64 {
	return v.HorizontalAngleDeg()
}

// Direction is an alias of HorizontalAngle.
func (v Vector) Direction() float64 {
	return v.HorizontalAngle()
}

func (v Vector) ToArray() [2]float64 {
	return [2]float64{v.X, v.Y}
}

func (v Vector) ToObject() map[string]float64 {
	return map[string]float64{"x": v.X, "y": v.Y}
}

// String renders the vector as "(x, y)".
func (v Vector) String() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v *Vector) Abs() *Vector {
	v.X = math.Abs(v.X)
	v.Y = math.Abs(v.Y)
	return v
}

func (v *Vector) Reverse() *Vector {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

func (v *Vector) ReverseX() *Vector {
	v.X = -v.X
	return v
}

func (v *Vector) ReverseY() *Vector {
	v.Y = -v.Y
	return v
}

// Clone returns an independent copy built by the constructor of v's kind.
func (v Vector) Clone() Vector {
	if int(v.kind) >= len(factories) {
		return NewVector(v.X, v.Y)
	}
	return factories[v.kind](v.X, v.Y)
}

func (v *Vector) Add(other Vector) *Vector {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v *Vector) AddX(other Vector) *Vector {
	v.X += other.X
	return v
}

func (v *Vector) AddY(other Vector) *Vector {
	v.Y += other.Y
	return v
}

func (v *Vector) Subtract(other Vector) *Vector {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vector) SubtractX(other Vector) *Vector {
	v.X -= other.X
	return v
}

func (v *Vector) SubtractY(other Vector) *Vector {
	v.Y -= other.Y
	return v
}

func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector) EqualsX(other Vector) bool {
	return v.X == other.X
}

func (v Vector) EqualsY(other Vector) bool {
	return v.Y == other.Y
}

// Less orders vectors by Y, then by X, treating values closer than about
// 1e-6 as equal. It is meant for sorting and deduplicating float input and
// is not transitive at the tolerance boundary.
func (v Vector) Less(other Vector) bool {
	dy := v.Y - other.Y
	if dy < -0.0000001 {
		return true
	}
	if dy < 0.000001 && dy > -0.000001 && v.X-other.X < -0.000001 {
		return true
	}
	return false
}

func (v *Vector) Multiply(other Vector) *Vector {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v *Vector) MultiplyX(other Vector) *Vector {
	v.X *= other.X
	return v
}

func (v *Vector) MultiplyY(other Vector) *Vector {
	v.Y *= other.Y
	return v
}

func (v *Vector) MultiplyByScalar(n float64) *Vector {
	v.X *= n
	v.Y *= n
	return v
}

// Divide divides component-wise. A zero component in other yields ±Inf or NaN.
func (v *Vector) Divide(other Vector) *Vector {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v *Vector) DivideX(other Vector) *Vector {
	v.X /= other.X
	return v
}

func (v *Vector) DivideY(other Vector) *Vector {
	v.Y /= other.Y
	return v
}

func (v *Vector) DivideByScalar(n float64) *Vector {
	v.X /= n
	v.Y /= n
	return v
}

// Truncate drops the fractional part of both components.
func (v *Vector) Truncate() *Vector {
	v.X = math.Trunc(v.X)
	v.Y = math.Trunc(v.Y)
	return v
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Length() float64 {
	return v.Magnitude()
}

func (v Vector) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize scales v to unit length. The zero vector becomes (NaN, NaN).
func (v *Vector) Normalize() *Vector {
	return v.DivideByScalar(v.Magnitude())
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) Distance(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vector) DistanceX(other Vector) float64 {
	return v.X - other.X
}

func (v Vector) DistanceY(other Vector) float64 {
	return v.Y - other.Y
}

func (v Vector) DistanceSqr(other Vector) float64 {
	dx, dy := v.DistanceX(other), v.DistanceY(other)
	return dx*dx + dy*dy
}

func (v Vector) HorizontalAngle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vector) HorizontalAngleDeg() float64 {
	return RadiansToDegrees(v.HorizontalAngle())
}

// VerticalAngle measures the angle from the Y axis.
func (v Vector) VerticalAngle() float64 {
	return math.Atan2(v.X, v.Y)
}

func (v Vector) VerticalAngleDeg() float64 {
	return RadiansToDegrees(v.VerticalAngle())
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	cosTheta := v.Dot(other) / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

// Rotate turns v counterclockwise by angle radians about the origin.
func (v *Vector) Rotate(angle float64) *Vector {
	sin, cos := math.Sincos(angle)
	x, y := v.X, v.Y
	v.X = x*cos - y*sin
	v.Y = x*sin + y*cos
	return v
}

func (v *Vector) RotateDeg(angle float64) *Vector {
	return v.Rotate(DegreesToRadians(angle))
}

// reflected = incident - 2*(incident·normal)*normal
func (v *Vector) Reflect(normal Vector) *Vector {
	dotProduct := v.Dot(normal)
	v.X -= 2 * dotProduct * normal.X
	v.Y -= 2 * dotProduct * normal.Y
	return v
}

// Round rounds both components to n decimal digits, halves going up: each
// component is scaled by 10^n, shifted by one half and floored. n must be in
// [0, 10]; otherwise v is left unchanged and ErrInvalidPrecision is returned.
func (v *Vector) Round(n int) (*Vector, error) {
	if n < 0 || n >= len(powersOfTen) {
		return v, fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidPrecision, n, len(powersOfTen)-1)
	}
	p := powersOfTen[n]
	v.X = math.Floor(0.5+v.X*p) / p
	v.Y = math.Floor(0.5+v.Y*p) / p
	return v, nil
}

func (v *Vector) RandomizeX(topLeft, bottomRight Vector) *Vector {
	v.X = randomBetween(math.Min(topLeft.X, bottomRight.X), math.Max(topLeft.X, bottomRight.X))
	return v
}

func (v *Vector) RandomizeY(topLeft, bottomRight Vector) *Vector {
	v.Y = randomBetween(math.Min(topLeft.Y, bottomRight.Y), math.Max(topLeft.Y, bottomRight.Y))
	return v
}

// Randomize places v at a random position inside the box spanned by the two
// corners. Either corner may be the minimum on either axis.
func (v *Vector) Randomize(topLeft, bottomRight Vector) *Vector {
	return v.RandomizeX(topLeft, bottomRight).RandomizeY(topLeft, bottomRight)
}
