// FILE: lixenwraith/fileenv/directive.go
package fileenv

import "fmt"

// Directive names one of the two fallback orders
type Directive string

const (
	// DirectiveFileEnv tries the file, then the environment variable, then the default
	DirectiveFileEnv Directive = "file_env"
	// DirectiveEnvFile tries the environment variable, then the file, then the default
	DirectiveEnvFile Directive = "env_file"
)

// ParseDirective maps a directive name to its Directive
func ParseDirective(name string) (Directive, error) {
	switch d := Directive(name); d {
	case DirectiveFileEnv, DirectiveEnvFile:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownDirective, name, DirectiveFileEnv, DirectiveEnvFile)
	}
}

// Order returns the primary and secondary source kinds of the directive
func (d Directive) Order() (primary, secondary Source, err error) {
	switch d {
	case DirectiveFileEnv:
		return SourceFile, SourceEnv, nil
	case DirectiveEnvFile:
		return SourceEnv, SourceFile, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDirective, string(d))
	}
}

// Usage returns example call syntax with all three arguments
func (d Directive) Usage() string {
	switch d {
	case DirectiveEnvFile:
		return `env_file("ENV_NAME", "filename", "default_value")`
	default:
		return `file_env("filename", "ENV_NAME", "default_value")`
	}
}

func (d Directive) String() string { return string(d) }
