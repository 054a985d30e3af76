// Package report renders a geodetic coordinate for the console.
package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	angleDigits  = 6
	heightDigits = 2
)

// Coordinate is a geodetic position in degrees with its height in the
// linear unit of the source data.
type Coordinate struct {
	Longitude float64
	Latitude  float64
	Height    float64
}

// Format selects how a Coordinate is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var supportedFormats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range supportedFormats {
		if Format(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %q (supported: %s)", s, supportedFormatsCSV())
}

func supportedFormatsCSV() string {
	names := make([]string, 0, len(supportedFormats))
	for _, f := range supportedFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Text returns the single console line for c, newline terminated.
func Text(c Coordinate) string {
	lon, lat, h := fixedFields(c)
	return fmt.Sprintf("Longitude: %s Latitude: %s Height: %s\n", lon, lat, h)
}

// Write renders c to w in format f.
func Write(w io.Writer, c Coordinate, f Format) error {
	var (
		b   []byte
		err error
	)
	switch f {
	case FormatJSON:
		b, err = MarshalJSON(c)
	case FormatYAML:
		b, err = MarshalYAML(c)
	case FormatText, "":
		b = []byte(Text(c))
	default:
		return fmt.Errorf("unsupported format: %q", string(f))
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func fixedFields(c Coordinate) (lon, lat, h string) {
	return FormatFixed(c.Longitude, angleDigits),
		FormatFixed(c.Latitude, angleDigits),
		FormatFixed(c.Height, heightDigits)
}
