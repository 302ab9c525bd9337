// ABOUTME: Typed errors surfaced by the pipeline driver.
// ABOUTME: MissingInputError halts before any write; ExportWriteError surfaces as-is.
package pipeline

import "fmt"

// MissingInputError reports a required source file that does not exist. It is
// detected before the database is opened, so no partial state is created.
type MissingInputError struct {
	Dataset string
	Path    string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input file for %s: %s", e.Dataset, e.Path)
}

// ExportWriteError reports a result file that could not be written. It is
// surfaced to the caller, never retried.
type ExportWriteError struct {
	Path string
	Err  error
}

func (e *ExportWriteError) Error() string {
	return fmt.Sprintf("write export file %s: %v", e.Path, e.Err)
}

func (e *ExportWriteError) Unwrap() error {
	return e.Err
}
