package run

import (
	"context"
	"errors"
	"io"

	"github.com/flarebyte/tilegeo/internal/logging"
	"github.com/flarebyte/tilegeo/internal/report"
	"github.com/flarebyte/tilegeo/internal/stage"
)

// Options configures a single extraction.
type Options struct {
	Format report.Format
	Stdout io.Writer
	Logger logging.Logger
}

// Stages is the fixed stage order for one tileset.
var Stages = []string{
	"read-tileset",
	"parse-json",
	"validate-transform",
	"unpack-matrix",
	"extract-translation",
	"to-geodetic",
	"write-output",
}

// Extract reads the tileset at path and writes its root position.
func Extract(ctx context.Context, path string, opts Options) error {
	in := stage.Envelope{Path: path, Meta: &stage.Meta{Format: opts.Format}}
	deps := stage.Deps{Stdout: opts.Stdout, Logger: opts.Logger}
	_, err := runStages(ctx, in, Stages, deps)
	return evaluateRunExit(err)
}

// runStages executes the provided list of stage names in order.
func runStages(ctx context.Context, in stage.Envelope, stages []string, deps stage.Deps) (stage.Envelope, error) {
	out := in
	var err error
	for _, name := range stages {
		out, err = stage.Run(ctx, name, out, deps)
		if err != nil {
			logUnexpected(ctx, deps.Logger, name, in.Path, err)
			return stage.Envelope{}, err
		}
	}
	return out, nil
}

// logUnexpected records failures that no typed stage error accounts for.
// Typed errors are already reported on stderr by the caller.
func logUnexpected(ctx context.Context, l logging.Logger, name, path string, err error) {
	var ec exitCoder
	if l == nil || errors.As(err, &ec) {
		return
	}
	l.Error(ctx, "stage failed",
		logging.String("stage", name),
		logging.String("path", path),
		logging.String("error", err.Error()))
}
