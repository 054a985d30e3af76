package run

import (
	"context"
	"errors"
	"testing"

	"github.com/flarebyte/tilegeo/internal/stage"
)

func assertExitCode(t *testing.T, err error, wantMsg string, wantCode int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != wantMsg {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ExitCode(err); got != wantCode {
		t.Fatalf("unexpected exit code: %d", got)
	}
}

func TestEvaluateRunExit_Nil(t *testing.T) {
	if err := evaluateRunExit(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ExitCode(nil) != 0 {
		t.Fatalf("unexpected exit code")
	}
}

func TestEvaluateRunExit_ReportedErrorsExitZero(t *testing.T) {
	assertExitCode(t, evaluateRunExit(&stage.SchemaError{}), "Invalid or missing transform matrix in tileset.json", 0)
	assertExitCode(t, evaluateRunExit(&stage.JSONParseError{Err: errors.New("bad")}), "Error parsing JSON: bad", 0)
	assertExitCode(t, evaluateRunExit(&stage.FileReadError{Err: errors.New("gone")}), "Error reading file: gone", 0)
}

func TestEvaluateRunExit_UsageExitsOne(t *testing.T) {
	assertExitCode(t, evaluateRunExit(&stage.UsageError{Usage: "tilegeo <path to tileset.json>"}), "Usage: tilegeo <path to tileset.json>", 1)
}

func TestEvaluateRunExit_UntypedIsExecutionError(t *testing.T) {
	err := evaluateRunExit(context.Canceled)
	assertExitCode(t, err, "context canceled", exitCodeExecErr)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped cause")
	}
}
