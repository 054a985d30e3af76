package geodesy

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func assertNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %.12f want %.12f (tol %g)", name, got, want, tol)
	}
}

func TestFromCartesian_EquatorPrimeMeridian(t *testing.T) {
	c, ok := WGS84.FromCartesian(r3.Vector{X: 6378137, Y: 0, Z: 0})
	if !ok {
		t.Fatalf("expected conversion")
	}
	lon, lat := c.Degrees()
	assertNear(t, "lon", lon, 0, 1e-12)
	assertNear(t, "lat", lat, 0, 1e-12)
	assertNear(t, "height", c.Height, 0, 1e-9)
}

func TestFromCartesian_NorthPoleAboveSurface(t *testing.T) {
	c, ok := WGS84.FromCartesian(r3.Vector{Z: 6356752.3142451793 + 100})
	if !ok {
		t.Fatalf("expected conversion")
	}
	_, lat := c.Degrees()
	assertNear(t, "lat", lat, 90, 1e-9)
	assertNear(t, "height", c.Height, 100, 1e-6)
}

func TestFromCartesian_BelowSurfaceIsNegative(t *testing.T) {
	c, ok := WGS84.FromCartesian(r3.Vector{Y: 6378137 - 250})
	if !ok {
		t.Fatalf("expected conversion")
	}
	lon, lat := c.Degrees()
	assertNear(t, "lon", lon, 90, 1e-9)
	assertNear(t, "lat", lat, 0, 1e-9)
	assertNear(t, "height", c.Height, -250, 1e-6)
}

func TestFromCartesian_Centre(t *testing.T) {
	if _, ok := WGS84.FromCartesian(r3.Vector{}); ok {
		t.Fatalf("expected centre to be undefined")
	}
}

func TestFromCartesian_RoundTrip(t *testing.T) {
	points := []Cartographic{
		FromDegrees(13.404954, 52.520008, 34),
		FromDegrees(-122.4194, 37.7749, 16.5),
		FromDegrees(151.2093, -33.8688, 0),
		FromDegrees(-179.5, -89.25, 8848.86),
	}
	for _, want := range points {
		p := WGS84.ToCartesian(want)
		got, ok := WGS84.FromCartesian(p)
		if !ok {
			t.Fatalf("conversion failed for %+v", want)
		}
		assertNear(t, "lon", got.Longitude, want.Longitude, 1e-11)
		assertNear(t, "lat", got.Latitude, want.Latitude, 1e-11)
		assertNear(t, "height", got.Height, want.Height, 1e-5)
	}
}

func TestToCartesian_KnownPoint(t *testing.T) {
	p := WGS84.ToCartesian(FromDegrees(-75.61209430782448, 40.042530611425896, 0))
	assertNear(t, "x", p.X, 1215011.9317263428, 1e-3)
	assertNear(t, "y", p.Y, -4736309.3434217675, 1e-3)
	assertNear(t, "z", p.Z, 4081602.0044800863, 1e-3)
}

func TestScaleToGeodeticSurface_OnSurfaceIsFixedPoint(t *testing.T) {
	in := WGS84.ToCartesian(FromDegrees(45, 45, 0))
	out, ok := WGS84.ScaleToGeodeticSurface(in)
	if !ok {
		t.Fatalf("expected projection")
	}
	if d := in.Distance(out); d > 1e-6 {
		t.Fatalf("surface point moved by %g", d)
	}
}
