package generator

import (
	"errors"
	"fmt"
)

var (
	ErrNoTable = errors.New("table description has no fields")

	errRenderFailed = errors.New("render failed")
)

func errRender(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", errRenderFailed, name, err)
}
