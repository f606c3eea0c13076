package geom

import (
	"fmt"

	"github.com/arloliu/hoverline/errs"
)

// Point is a 2D coordinate in screen, render or data space.
type Point struct {
	X, Y float64
}

// Transform is a 2D affine matrix mapping chart-local render coordinates to
// screen coordinates, stored in the [a b c d e f] layout:
//
//	screenX = a*x + c*y + e
//	screenY = b*x + d*y + f
//
// It captures pan, zoom, scroll and container offset of the chart surface.
type Transform [6]float64

// Identity is the transform of a chart drawn at the screen origin without scaling.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Translate returns a pure translation transform.
func Translate(dx, dy float64) Transform {
	return Transform{1, 0, 0, 1, dx, dy}
}

// Scale returns a pure scaling transform.
func Scale(sx, sy float64) Transform {
	return Transform{sx, 0, 0, sy, 0, 0}
}

// Mul returns the transform that applies t first and then u.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[1]*u[2],
		t[0]*u[1] + t[1]*u[3],
		t[2]*u[0] + t[3]*u[2],
		t[2]*u[1] + t[3]*u[3],
		t[4]*u[0] + t[5]*u[2] + u[4],
		t[4]*u[1] + t[5]*u[3] + u[5],
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t[0]*p.X + t[2]*p.Y + t[4],
		Y: t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// Invert returns the inverse transform.
//
// Returns errs.ErrSingularTransform when the linear part has a zero or
// non-finite determinant.
func (t Transform) Invert() (Transform, error) {
	det := t[0]*t[3] - t[1]*t[2]
	if det == 0 || !isFinite(det) {
		return Transform{}, fmt.Errorf("%w: det=%v", errs.ErrSingularTransform, det)
	}

	return Transform{
		t[3] / det,
		-t[1] / det,
		-t[2] / det,
		t[0] / det,
		(t[2]*t[5] - t[3]*t[4]) / det,
		(t[1]*t[4] - t[0]*t[5]) / det,
	}, nil
}

// ScreenToLocal maps a pointer position into chart-local render space by
// applying the inverse of the current screen transform.
//
// The transform is inverted on every call because the host may change it
// between pointer events (scroll, resize, zoom).
func ScreenToLocal(screenX, screenY float64, t Transform) (Point, error) {
	inv, err := t.Invert()
	if err != nil {
		return Point{}, err
	}

	return inv.Apply(Point{X: screenX, Y: screenY}), nil
}
