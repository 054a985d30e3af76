package stage

import (
	"context"
	"fmt"

	"github.com/flarebyte/tilegeo/internal/schema"
	"github.com/flywave/go3d/float64/mat4"
)

const unpackMatrixStage = "unpack-matrix"

// UnpackMatrix reads 16 values in column-major order: values[4*c+r] lands
// in column c, row r.
func UnpackMatrix(values []float64) (mat4.T, error) {
	if len(values) != schema.TransformLen {
		return mat4.T{}, fmt.Errorf("unpack-matrix: expected %d values, got %d", schema.TransformLen, len(values))
	}
	var arr [16]float64
	copy(arr[:], values)
	return mat4.FromArray(arr), nil
}

func unpackMatrixRunner(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	m, err := UnpackMatrix(in.Transform)
	if err != nil {
		return Envelope{}, &SchemaError{Path: in.Path, Err: err}
	}
	out := in
	out.Matrix = &m
	return out, nil
}

func init() { Register(unpackMatrixStage, unpackMatrixRunner) }
