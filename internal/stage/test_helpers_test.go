package stage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTileset(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tileset.json")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write tileset: %v", err)
	}
	return p
}
