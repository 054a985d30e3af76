package stage

import (
	"context"
	"errors"

	"github.com/flarebyte/tilegeo/internal/geodesy"
	"github.com/flarebyte/tilegeo/internal/logging"
	"github.com/flarebyte/tilegeo/internal/report"
)

const toGeodeticStage = "to-geodetic"

func toGeodeticRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Position == nil {
		return Envelope{}, errors.New("to-geodetic: missing position")
	}
	// A position at the centre of the ellipsoid has no geodetic equivalent
	// and is reported as the zero coordinate.
	var c report.Coordinate
	if carto, ok := geodesy.WGS84.FromCartesian(*in.Position); ok {
		c.Longitude, c.Latitude = carto.Degrees()
		c.Height = carto.Height
	} else {
		deps.logger().Warn(ctx, "position is at the ellipsoid centre", logging.String("path", in.Path))
	}
	out := in
	out.Coordinate = &c
	return out, nil
}

func init() { Register(toGeodeticStage, toGeodeticRunner) }
