package stage

import (
	"context"

	"github.com/flarebyte/tilegeo/internal/logging"
	"github.com/flarebyte/tilegeo/internal/schema"
)

const validateTransformStage = "validate-transform"

func validateTransformRunner(ctx context.Context, in Envelope, deps Deps) (Envelope, error) {
	values, err := schema.Transform(in.Document)
	if err != nil {
		deps.logger().Debug(ctx, "schema check failed", logging.String("path", in.Path), logging.String("cause", err.Error()))
		return Envelope{}, &SchemaError{Path: in.Path, Err: err}
	}
	out := in
	out.Transform = values
	return out, nil
}

func init() { Register(validateTransformStage, validateTransformRunner) }
