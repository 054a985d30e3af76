package stage

import (
	"context"
	"os"
)

const readTilesetStage = "read-tileset"

func readTilesetRunner(ctx context.Context, in Envelope, _ Deps) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}
	b, err := os.ReadFile(in.Path)
	if err != nil {
		return Envelope{}, &FileReadError{Path: in.Path, Err: err}
	}
	out := in
	out.Content = b
	return out, nil
}

func init() { Register(readTilesetStage, readTilesetRunner) }
