package main

import (
	"os"

	"github.com/flarebyte/tilegeo/cmd/tilegeo/root"
	"github.com/flarebyte/tilegeo/cmd/tilegeo/run"
	"github.com/flarebyte/tilegeo/internal/stage"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Every failure is reported as one line on stderr; only usage
		// errors and unexpected failures change the exit status.
		_, _ = os.Stderr.WriteString(stage.SanitizeErrorMessage(err.Error()) + "\n")
		if code := run.ExitCode(err); code != 0 {
			os.Exit(code)
		}
	}
}
