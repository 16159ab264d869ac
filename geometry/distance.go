package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrUnknownMetric = errors.New("unknown distance metric")

// DistanceCalculator measures the distance between two points. Line.Length
// takes one so callers can pick the metric.
type DistanceCalculator interface {
	Distance(a, b Vector) float64
}

// DistanceFunc adapts an ordinary function to DistanceCalculator.
type DistanceFunc func(a, b Vector) float64

func (f DistanceFunc) Distance(a, b Vector) float64 {
	return f(a, b)
}

var (
	Euclidean DistanceCalculator = DistanceFunc(func(a, b Vector) float64 {
		return a.Distance(b)
	})
	Manhattan DistanceCalculator = DistanceFunc(func(a, b Vector) float64 {
		return math.Abs(a.DistanceX(b)) + math.Abs(a.DistanceY(b))
	})
)

var metrics = map[string]DistanceCalculator{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
}

// MetricByName looks up a calculator by its case-insensitive name.
func MetricByName(name string) (DistanceCalculator, error) {
	calc, ok := metrics[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return calc, nil
}
