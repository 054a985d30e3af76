package stage

import (
	"github.com/flarebyte/tilegeo/internal/report"
	"github.com/flywave/go3d/float64/mat4"
	"github.com/golang/geo/r3"
)

// Meta holds run settings and the name of the last stage that ran.
type Meta struct {
	Stage  string        `json:"stage,omitempty"`
	Format report.Format `json:"format,omitempty"`
}

// Envelope is the contract between stages. Each stage fills in the next
// field; a nil pointer means the stage producing it has not run yet.
type Envelope struct {
	Path       string             `json:"path"`
	Content    []byte             `json:"-"`
	Document   any                `json:"-"`
	Transform  []float64          `json:"transform,omitempty"`
	Matrix     *mat4.T            `json:"matrix,omitempty"`
	Position   *r3.Vector         `json:"position,omitempty"`
	Coordinate *report.Coordinate `json:"coordinate,omitempty"`
	Meta       *Meta              `json:"meta,omitempty"`
}

func outputFormat(meta *Meta) report.Format {
	if meta == nil || meta.Format == "" {
		return report.FormatText
	}
	return meta.Format
}
