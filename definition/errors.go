package definition

import (
	"errors"
	"fmt"
)

var (
	ErrNoInput  = errors.New("add SQL file with table definition")
	ErrNotExist = errors.New("file not exist")
	ErrNotSQL   = errors.New("file is not SQL file")
	ErrNoSchema = errors.New("table should have schema defined")
	ErrNoFields = errors.New("table has no field definitions")
	ErrNoType   = errors.New("field declaration has no type")
)

// LineError points a structural error at its source line.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
