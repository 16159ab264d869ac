package geometry

import "math"

// degrees is the number of degrees in one radian.
const degrees = 180 / math.Pi

func RadiansToDegrees(rad float64) float64 {
	return rad * degrees
}

func DegreesToRadians(deg float64) float64 {
	return deg / degrees
}
