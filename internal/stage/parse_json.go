package stage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"
)

const parseJSONStage = "parse-json"

// decodeDocument decodes one JSON value. Numbers that fit a float64 become
// float64; literals outside its range stay json.Number so that they only
// fail where a number is required.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return normalizeNumbers(doc), nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return x
		}
		return f
	case map[string]any:
		for k, vv := range x {
			x[k] = normalizeNumbers(vv)
		}
		return x
	case []any:
		for i, vv := range x {
			x[i] = normalizeNumbers(vv)
		}
		return x
	default:
		return v
	}
}

func parseJSONRunner(_ context.Context, in Envelope, _ Deps) (Envelope, error) {
	doc, err := decodeDocument(in.Content)
	if err != nil {
		return Envelope{}, &JSONParseError{Path: in.Path, Err: err}
	}
	out := in
	out.Document = doc
	return out, nil
}

func init() { Register(parseJSONStage, parseJSONRunner) }
