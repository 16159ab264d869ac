package geometry

import (
	"testing"

	"github.com/ctessum/geom"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestGeomPoint(t *testing.T) {
	v := NewVector(1.5, -2)
	if p := v.ToGeomPoint(); p != (geom.Point{X: 1.5, Y: -2}) {
		t.Fatalf("ToGeomPoint() = %v", p)
	}
	back := VectorFromGeomPoint(geom.Point{X: 3, Y: 4})
	if !back.Equals(NewPoint(3, 4)) || back.Kind() != KindPoint {
		t.Fatalf("VectorFromGeomPoint() = %v (%v)", back, back.Kind())
	}
}

func TestVec2(t *testing.T) {
	v := NewPoint(7, 8)
	if got := v.ToVec2(); got != (f64.Vec2{7, 8}) {
		t.Fatalf("ToVec2() = %v", got)
	}
	if got := VectorFromVec2(f64.Vec2{-1, 2}); !got.Equals(NewVector(-1, 2)) {
		t.Fatalf("VectorFromVec2() = %v", got)
	}
}

func TestToFixed(t *testing.T) {
	got := NewVector(1.5, -0.25).ToFixed()
	if want := (fixed.Point26_6{X: 96, Y: -16}); got != want {
		t.Fatalf("ToFixed() = %v; want %v", got, want)
	}
}

func TestTransform(t *testing.T) {
	v := NewVector(1, 1)
	v.Transform(f64.Aff3{1, 0, 2, 0, 1, 3})
	if !v.Equals(NewVector(3, 4)) {
		t.Fatalf("translate = %v; want (3, 4)", v)
	}

	v.Transform(f64.Aff3{2, 0, 0, 0, -1, 0})
	if !v.Equals(NewVector(6, -4)) {
		t.Fatalf("scale = %v; want (6, -4)", v)
	}
}
