package geometry

import "math"

// Line is a segment between two endpoints. A zero-length line is valid.
type Line struct {
	point1 Vector
	point2 Vector
}

func NewLine(point1, point2 Vector) Line {
	return Line{point1: point1, point2: point2}
}

func (l *Line) SetPoint1(point1 Vector) {
	l.point1 = point1
}

func (l Line) Point1() Vector {
	return l.point1
}

func (l *Line) SetPoint2(point2 Vector) {
	l.point2 = point2
}

func (l Line) Point2() Vector {
	return l.point2
}

// Points returns both endpoints, point1 first.
func (l Line) Points() [2]Vector {
	return [2]Vector{l.point1, l.point2}
}

func (l Line) Length(calc DistanceCalculator) float64 {
	return calc.Distance(l.point1, l.point2)
}

// Reverse returns a new line running from point2 to point1.
func (l Line) Reverse() Line {
	return Line{point1: l.point2, point2: l.point1}
}

// PerpendicularDistance calculates the shortest distance from p to the
// infinite line through both endpoints. For a zero-length line it is the
// distance from p to point1.
func (l Line) PerpendicularDistance(p Vector) float64 {
	// Vector from line start to end
	lineVec := NewVector(l.point2.X-l.point1.X, l.point2.Y-l.point1.Y)
	// Vector from line start to point
	pointVec := NewVector(p.X-l.point1.X, p.Y-l.point1.Y)
	if lineVec.LengthSq() == 0 {
		return pointVec.Magnitude()
	}
	return pointVec.Magnitude() * math.Sin(pointVec.AngleTo(lineVec))
}
