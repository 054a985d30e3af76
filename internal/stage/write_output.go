package stage

import (
	"context"
	"errors"
	"fmt"

	"github.com/flarebyte/tilegeo/internal/report"
)

const writeOutputStage = "write-output"

func writeOutputRunner(_ context.Context, in Envelope, deps Deps) (Envelope, error) {
	if in.Coordinate == nil {
		return Envelope{}, errors.New("write-output: missing coordinate")
	}
	if err := report.Write(deps.stdout(), *in.Coordinate, outputFormat(in.Meta)); err != nil {
		return Envelope{}, fmt.Errorf("write-output: %w", err)
	}
	return in, nil
}

func init() { Register(writeOutputStage, writeOutputRunner) }
