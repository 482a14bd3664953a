// FILE: lixenwraith/fileenv/source.go
package fileenv

import (
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Source identifies where a resolved value came from
type Source string

const (
	// SourceFile represents values read from a file
	SourceFile Source = "file"
	// SourceEnv represents values read from an environment variable
	SourceEnv Source = "env"
	// SourceDefault represents the literal default argument
	SourceDefault Source = "default"
)

// describe returns the human-readable source kind and the noun used for
// its identifier in diagnostics.
func (s Source) describe() (kind, noun string) {
	switch s {
	case SourceFile:
		return "file", "path"
	case SourceEnv:
		return "environment variable", "name"
	default:
		return string(s), "identifier"
	}
}

// argName is the argument name used in fatal usage errors
func (s Source) argName() string {
	switch s {
	case SourceFile:
		return "filename"
	case SourceEnv:
		return "environment variable"
	case SourceDefault:
		return "default value"
	default:
		return string(s)
	}
}

// Provider looks up the content behind a source identifier.
// Lookup reports false for every failure; the reason is not surfaced.
type Provider interface {
	Kind() Source
	Lookup(id string) (string, bool)
}

// ProviderFunc adapts a plain function to the Provider interface
type ProviderFunc struct {
	Source Source
	Fn     func(id string) (string, bool)
}

// Kind returns the source kind the function stands in for
func (p ProviderFunc) Kind() Source { return p.Source }

// Lookup calls the wrapped function
func (p ProviderFunc) Lookup(id string) (string, bool) { return p.Fn(id) }

// FileProvider reads whole files as text.
type FileProvider struct {
	// Dir is joined with relative paths. Empty means the working directory.
	Dir string

	// MaxFileSize makes larger files unavailable. Zero disables the limit.
	MaxFileSize int64
}

// Kind returns SourceFile
func (p FileProvider) Kind() Source { return SourceFile }

// Lookup returns the exact contents of the file at path. Missing files,
// unreadable files, directories, oversize files and content that is not
// valid UTF-8 all report false.
func (p FileProvider) Lookup(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	full := path
	if p.Dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(p.Dir, path)
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	if p.MaxFileSize > 0 && info.Size() > p.MaxFileSize {
		return "", false
	}

	data, err := os.ReadFile(full)
	if err != nil || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// EnvProvider reads environment variables.
type EnvProvider struct {
	// Prefix is prepended to every variable name before lookup
	Prefix string

	// LookupEnv replaces os.LookupEnv when set
	LookupEnv func(name string) (string, bool)
}

// Kind returns SourceEnv
func (p EnvProvider) Kind() Source { return SourceEnv }

// Lookup returns the value of the variable. A set but empty variable is
// found; an unset variable or a value that is not valid UTF-8 is not.
func (p EnvProvider) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(p.Prefix + name)
	if !ok || !utf8.ValidString(value) {
		return "", false
	}
	return value, true
}
