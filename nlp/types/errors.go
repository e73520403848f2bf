package types

import "fmt"

// DataIOError reports a failure to open, read or parse an input file
type DataIOError struct {
	Path string
	Err  error
}

func (e *DataIOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Error occurred processing file: %s", e.Path)
	}
	return fmt.Sprintf("Error occurred processing file: %s: %v", e.Path, e.Err)
}

func (e *DataIOError) Unwrap() error {
	return e.Err
}
