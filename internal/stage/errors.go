package stage

import "fmt"

const (
	exitCodeReported = 0
	exitCodeUsage    = 1
)

// UsageError reports a malformed command line. It is the only failure that
// ends the process with a non-zero status.
type UsageError struct {
	Usage  string
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return "Usage: " + e.Usage
}

func (e *UsageError) ExitCode() int { return exitCodeUsage }

// FileReadError reports that the tileset could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string { return fmt.Sprintf("Error reading file: %v", e.Err) }
func (e *FileReadError) Unwrap() error { return e.Err }
func (e *FileReadError) ExitCode() int { return exitCodeReported }

// JSONParseError reports that the tileset is not valid JSON.
type JSONParseError struct {
	Path string
	Err  error
}

func (e *JSONParseError) Error() string { return fmt.Sprintf("Error parsing JSON: %v", e.Err) }
func (e *JSONParseError) Unwrap() error { return e.Err }
func (e *JSONParseError) ExitCode() int { return exitCodeReported }

// SchemaError reports a missing or malformed root.transform.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string { return "Invalid or missing transform matrix in tileset.json" }
func (e *SchemaError) Unwrap() error { return e.Err }
func (e *SchemaError) ExitCode() int { return exitCodeReported }
