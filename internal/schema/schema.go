// Package schema checks the shape of a decoded tileset document with CUE.
package schema

import (
	"fmt"
	"math"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// TransformLen is the number of values in a 4x4 transform.
const TransformLen = 16

// tilesetSchema is open: fields other than root.transform are ignored.
const tilesetSchema = `
import "list"

root: transform: [...number] & list.MinItems(16) & list.MaxItems(16)
`

var transformPath = cue.ParsePath("root.transform")

// Transform validates doc against the tileset schema and returns the
// root.transform values in document order.
func Transform(doc any) ([]float64, error) {
	ctx := cuecontext.New()
	s := ctx.CompileString(tilesetSchema)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("invalid schema: %v", err)
	}
	d := ctx.Encode(doc)
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("invalid document: %v", err)
	}
	if err := requireField(d, transformPath); err != nil {
		return nil, err
	}
	v := s.Unify(d)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid root.transform: %v", err)
	}

	var values []float64
	if err := v.LookupPath(transformPath).Decode(&values); err != nil {
		return nil, fmt.Errorf("invalid value for root.transform: %v", err)
	}
	return values, checkTransform(values)
}

func requireField(v cue.Value, p cue.Path) error {
	f := v.LookupPath(p)
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", p)
	}
	if f.Kind() != cue.ListKind {
		return fmt.Errorf("invalid type for field: %s (expected list)", p)
	}
	return nil
}

func checkTransform(values []float64) error {
	if len(values) != TransformLen {
		return fmt.Errorf("invalid length for root.transform: %d (expected %d)", len(values), TransformLen)
	}
	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("non-finite value in root.transform at index %d", i)
		}
	}
	return nil
}
