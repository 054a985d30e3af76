package report

import (
	"bytes"
	"encoding/json"
)

type jsonCoordinate struct {
	Longitude json.Number `json:"longitude"`
	Latitude  json.Number `json:"latitude"`
	Height    json.Number `json:"height"`
}

// MarshalJSON returns c as one compact JSON object, newline terminated,
// keeping the fixed precision of the text form.
func MarshalJSON(c Coordinate) ([]byte, error) {
	lon, lat, h := fixedFields(c)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(jsonCoordinate{
		Longitude: json.Number(lon),
		Latitude:  json.Number(lat),
		Height:    json.Number(h),
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
