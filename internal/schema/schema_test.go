package schema

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return v
}

func TestTransform_Valid(t *testing.T) {
	doc := decode(t, `{
  "asset": {"version": "1.0"},
  "geometricError": 500,
  "root": {
    "boundingVolume": {"sphere": [0, 0, 0, 10]},
    "transform": [1,0,0,0, 0,1,0,0, 0,0,1,0, 6378137,0,0,1]
  }
}`)
	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != TransformLen {
		t.Fatalf("unexpected length: %d", len(got))
	}
	if got[12] != 6378137 || got[15] != 1 {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestTransform_MissingRoot(t *testing.T) {
	_, err := Transform(decode(t, `{"asset": {}}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "missing required field: root.transform") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransform_WrongLength(t *testing.T) {
	_, err := Transform(decode(t, `{"root": {"transform": [1,0,0,0, 0,1,0,0, 0,0,1,0]}}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.HasPrefix(err.Error(), "invalid root.transform") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransform_NonNumeric(t *testing.T) {
	_, err := Transform(decode(t, `{"root": {"transform": [1,0,0,0, 0,1,0,0, 0,0,1,0, "x",0,0,1]}}`))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestTransform_NotAList(t *testing.T) {
	_, err := Transform(decode(t, `{"root": {"transform": {"a": 1}}}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "expected list") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransform_TopLevelArray(t *testing.T) {
	if _, err := Transform(decode(t, `[1, 2, 3]`)); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTransform_Null(t *testing.T) {
	if _, err := Transform(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func identityWith(x any) map[string]any {
	transform := []any{1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 1.0, 0.0, x, 0.0, 0.0, 1.0}
	return map[string]any{"root": map[string]any{"transform": transform}}
}

func TestTransform_OverflowingLiteral(t *testing.T) {
	if _, err := Transform(identityWith(json.Number("1e400"))); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTransform_OverflowingLiteralElsewhereIgnored(t *testing.T) {
	doc := identityWith(6378137.0)
	doc["geometricError"] = json.Number("1e400")
	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[12] != 6378137 {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestCheckTransform_NonFinite(t *testing.T) {
	values := make([]float64, TransformLen)
	values[13] = math.Inf(1)
	if err := checkTransform(values); err == nil {
		t.Fatalf("expected error")
	}
}
