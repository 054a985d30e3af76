package geodesy

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// centerToleranceSquared bounds how close to the centre a point may be
	// before it is projected along its radius instead of the surface normal.
	centerToleranceSquared = 0.1
	surfaceEpsilon         = 1e-12
	maxSurfaceIterations   = 64
)

// Ellipsoid is a triaxial ellipsoid centred on the origin of an
// Earth-centred, Earth-fixed frame.
type Ellipsoid struct {
	radii               r3.Vector
	radiiSquared        r3.Vector
	oneOverRadiiSquared r3.Vector
}

// WGS84 is the World Geodetic System 1984 reference ellipsoid, in metres.
var WGS84 = NewEllipsoid(6378137.0, 6378137.0, 6356752.3142451793)

// NewEllipsoid builds an ellipsoid from its radii along x, y and z.
func NewEllipsoid(x, y, z float64) Ellipsoid {
	return Ellipsoid{
		radii:               r3.Vector{X: x, Y: y, Z: z},
		radiiSquared:        r3.Vector{X: x * x, Y: y * y, Z: z * z},
		oneOverRadiiSquared: r3.Vector{X: 1 / (x * x), Y: 1 / (y * y), Z: 1 / (z * z)},
	}
}

// Radii returns the ellipsoid radii.
func (e Ellipsoid) Radii() r3.Vector { return e.radii }

// GeodeticSurfaceNormal returns the unit normal of the surface passing
// through p.
func (e Ellipsoid) GeodeticSurfaceNormal(p r3.Vector) r3.Vector {
	return mulComponents(p, e.oneOverRadiiSquared).Normalize()
}

// ScaleToGeodeticSurface projects p onto the ellipsoid surface along the
// geodetic normal. It reports false when p is too close to the centre for the
// projection to be defined.
func (e Ellipsoid) ScaleToGeodeticSurface(p r3.Vector) (r3.Vector, bool) {
	inv2 := e.oneOverRadiiSquared
	x2 := p.X * p.X * inv2.X
	y2 := p.Y * p.Y * inv2.Y
	z2 := p.Z * p.Z * inv2.Z

	squaredNorm := x2 + y2 + z2
	ratio := math.Sqrt(1 / squaredNorm)

	// Radial projection, used as the result near the centre.
	intersection := p.Mul(ratio)
	if squaredNorm < centerToleranceSquared {
		if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
			return r3.Vector{}, false
		}
		return intersection, true
	}

	gradient := mulComponents(intersection, inv2).Mul(2)

	// Newton iteration on the multiplier lambda of p = s + lambda*gradient/2.
	lambda := (1 - ratio) * p.Norm() / (0.5 * gradient.Norm())
	correction := 0.0

	var xm, ym, zm float64
	for i := 0; i < maxSurfaceIterations; i++ {
		lambda -= correction

		xm = 1 / (1 + lambda*inv2.X)
		ym = 1 / (1 + lambda*inv2.Y)
		zm = 1 / (1 + lambda*inv2.Z)

		xm2, ym2, zm2 := xm*xm, ym*ym, zm*zm
		xm3, ym3, zm3 := xm2*xm, ym2*ym, zm2*zm

		f := x2*xm2 + y2*ym2 + z2*zm2 - 1
		if math.Abs(f) <= surfaceEpsilon {
			break
		}

		denominator := x2*xm3*inv2.X + y2*ym3*inv2.Y + z2*zm3*inv2.Z
		derivative := -2 * denominator
		correction = f / derivative
	}

	return r3.Vector{X: p.X * xm, Y: p.Y * ym, Z: p.Z * zm}, true
}

func mulComponents(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}
