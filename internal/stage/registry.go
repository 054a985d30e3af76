package stage

import (
	"context"
	"io"
	"os"

	"github.com/flarebyte/tilegeo/internal/logging"
)

// Deps carries the collaborators a stage may use.
type Deps struct {
	Stdout io.Writer
	Logger logging.Logger
}

func (d Deps) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}

func (d Deps) logger() logging.Logger {
	if d.Logger == nil {
		return logging.Noop()
	}
	return d.Logger
}

// Runner executes a stage.
type Runner func(ctx context.Context, in Envelope, deps Deps) (Envelope, error)

var registry = map[string]Runner{}

// Register adds a stage runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// Run executes a registered stage by name.
func Run(ctx context.Context, name string, in Envelope, deps Deps) (Envelope, error) {
	r, ok := registry[name]
	if !ok {
		return Envelope{}, ErrUnknown{name: name}
	}
	out, err := r(ctx, in, deps)
	if err != nil {
		return Envelope{}, err
	}
	if out.Meta == nil {
		out.Meta = &Meta{}
	}
	out.Meta.Stage = name
	deps.logger().Debug(ctx, "stage done", logging.String("stage", name), logging.String("path", out.Path))
	return out, nil
}

// ErrUnknown is returned when a stage is not found.
type ErrUnknown struct{ name string }

func (e ErrUnknown) Error() string { return "unknown stage: " + e.name }
