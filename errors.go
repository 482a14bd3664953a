// FILE: lixenwraith/fileenv/errors.go
package fileenv

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentMissing is matched by every ArgumentMissingError
	ErrArgumentMissing = errors.New("argument missing")
	// ErrTooManyArguments is returned for more than three directive arguments in strict mode
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrUnknownDirective is returned for directive names other than file_env and env_file
	ErrUnknownDirective = errors.New("unknown directive")
	// ErrInvalidConstName is returned when a constant name is not a Go identifier or is repeated
	ErrInvalidConstName = errors.New("invalid constant name")
	// ErrManifestFormat is returned when a manifest's format cannot be determined
	ErrManifestFormat = errors.New("unknown manifest format")
)

// ArgumentMissingError reports a directive argument that was needed by the
// fallback chain but not supplied. It aborts generation.
type ArgumentMissingError struct {
	Directive Directive
	Argument  Source
}

func (e *ArgumentMissingError) Error() string {
	return fmt.Sprintf("No %s argument supplied, try %s", e.Argument.argName(), e.Directive.Usage())
}

// Is makes errors.Is(err, ErrArgumentMissing) match
func (e *ArgumentMissingError) Is(target error) bool {
	return target == ErrArgumentMissing
}
