package geodesy

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	rad2deg = 180 / math.Pi
	deg2rad = math.Pi / 180
)

// Cartographic is a position relative to an ellipsoid. Longitude and
// latitude are in radians, height is in the linear unit of the ellipsoid.
type Cartographic struct {
	Longitude float64
	Latitude  float64
	Height    float64
}

// FromDegrees builds a Cartographic from angles in degrees.
func FromDegrees(lon, lat, height float64) Cartographic {
	return Cartographic{Longitude: lon * deg2rad, Latitude: lat * deg2rad, Height: height}
}

// Degrees returns longitude and latitude in degrees.
func (c Cartographic) Degrees() (lon, lat float64) {
	return c.Longitude * rad2deg, c.Latitude * rad2deg
}

// FromCartesian converts an Earth-centred Cartesian position to geodetic
// coordinates. It reports false when p lies at (or very near) the centre of
// the ellipsoid.
func (e Ellipsoid) FromCartesian(p r3.Vector) (Cartographic, bool) {
	surface, ok := e.ScaleToGeodeticSurface(p)
	if !ok {
		return Cartographic{}, false
	}
	n := e.GeodeticSurfaceNormal(surface)
	h := p.Sub(surface)

	return Cartographic{
		Longitude: math.Atan2(n.Y, n.X),
		Latitude:  math.Asin(n.Z),
		Height:    sign(h.Dot(p)) * h.Norm(),
	}, true
}

// ToCartesian converts geodetic coordinates back to an Earth-centred
// Cartesian position.
func (e Ellipsoid) ToCartesian(c Cartographic) r3.Vector {
	cosLat := math.Cos(c.Latitude)
	n := r3.Vector{
		X: cosLat * math.Cos(c.Longitude),
		Y: cosLat * math.Sin(c.Longitude),
		Z: math.Sin(c.Latitude),
	}.Normalize()
	k := mulComponents(e.radiiSquared, n)
	gamma := math.Sqrt(n.Dot(k))
	return k.Mul(1 / gamma).Add(n.Mul(c.Height))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
