// FILE: lixenwraith/fileenv/generate.go
package fileenv

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// GeneratedHeader marks output files as generated for go vet and linters
const GeneratedHeader = "// Code generated by fileenv. DO NOT EDIT."

// Constant describes one generated constant and the directive call that
// produces its value
type Constant struct {
	Name      string   `toml:"name"`
	Directive string   `toml:"directive"`
	Args      []string `toml:"args"`
	Doc       string   `toml:"doc"`
}

// ResolvedConstant is a Constant with its final value
type ResolvedConstant struct {
	Constant
	Value  string
	Source Source
}

// Generator renders resolved constants as Go source
type Generator struct {
	// Package is the package clause of the generated file
	Package string
	// Command is recorded in the header comment when set
	Command string
}

// Render returns gofmt'ed Go source declaring every constant
func (g Generator) Render(consts []ResolvedConstant) ([]byte, error) {
	if !token.IsIdentifier(g.Package) {
		return nil, fmt.Errorf("invalid package name %q", g.Package)
	}

	seen := make(map[string]bool, len(consts))
	for _, c := range consts {
		if !token.IsIdentifier(c.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConstName, c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %q declared twice", ErrInvalidConstName, c.Name)
		}
		seen[c.Name] = true
	}

	var buf bytes.Buffer
	buf.WriteString(GeneratedHeader + "\n")
	if g.Command != "" {
		fmt.Fprintf(&buf, "// Command: %s\n", g.Command)
	}
	fmt.Fprintf(&buf, "\npackage %s\n", g.Package)

	if len(consts) > 0 {
		buf.WriteString("\nconst (\n")
		for _, c := range consts {
			for _, line := range docLines(c) {
				fmt.Fprintf(&buf, "\t// %s\n", line)
			}
			fmt.Fprintf(&buf, "\t%s = %s\n", c.Name, strconv.Quote(c.Value))
		}
		buf.WriteString(")\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func docLines(c ResolvedConstant) []string {
	var lines []string
	if c.Doc != "" {
		lines = append(lines, strings.Split(strings.TrimRight(c.Doc, "\n"), "\n")...)
	}
	if c.Directive != "" {
		quoted := make([]string, len(c.Args))
		for i, a := range c.Args {
			quoted[i] = strconv.Quote(a)
		}
		lines = append(lines, fmt.Sprintf("%s(%s) resolved from %s.", c.Directive, strings.Join(quoted, ", "), c.Source))
	}
	return lines
}

// WriteFile writes data to path atomically. An existing file with the same
// content is left untouched so unchanged constants do not bump its mtime.
func WriteFile(path string, data []byte) error {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op after a successful rename

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
