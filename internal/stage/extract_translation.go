package stage

import (
	"context"
	"errors"

	"github.com/flywave/go3d/float64/mat4"
	"github.com/golang/geo/r3"
)

const extractTranslationStage = "extract-translation"

// Translation returns the first three rows of the last column of m.
func Translation(m *mat4.T) r3.Vector {
	return r3.Vector{X: m[3][0], Y: m[3][1], Z: m[3][2]}
}

func extractTranslationRunner(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	if in.Matrix == nil {
		return Envelope{}, errors.New("extract-translation: missing matrix")
	}
	p := Translation(in.Matrix)
	out := in
	out.Position = &p
	return out, nil
}

func init() { Register(extractTranslationStage, extractTranslationRunner) }
