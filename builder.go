// File: lixenwraith/fileenv/builder.go
package fileenv

import (
	"fmt"
	"log/slog"
)

// Builder provides a fluent interface for building resolvers
type Builder struct {
	directive Directive
	file      Provider
	env       Provider
	logger    *slog.Logger
	lenient   bool
	err       error
}

// NewBuilder creates a new resolver builder for file_env with the
// working-directory file provider and the process environment
func NewBuilder() *Builder {
	return &Builder{
		directive: DirectiveFileEnv,
		file:      FileProvider{},
		env:       EnvProvider{},
	}
}

// WithDirective sets the fallback order
func (b *Builder) WithDirective(d Directive) *Builder {
	b.directive = d
	return b
}

// WithDirectiveName sets the fallback order from its name
func (b *Builder) WithDirectiveName(name string) *Builder {
	d, err := ParseDirective(name)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.directive = d
	return b
}

// WithFileProvider replaces the provider used for file identifiers
func (b *Builder) WithFileProvider(p Provider) *Builder {
	if p == nil {
		b.setErr(fmt.Errorf("file provider cannot be nil"))
		return b
	}
	b.file = p
	return b
}

// WithEnvProvider replaces the provider used for environment variable identifiers
func (b *Builder) WithEnvProvider(p Provider) *Builder {
	if p == nil {
		b.setErr(fmt.Errorf("environment provider cannot be nil"))
		return b
	}
	b.env = p
	return b
}

// WithLogger sets the logger receiving fallback diagnostics.
// A nil logger falls back to slog.Default at Build time.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// WithLenientArity makes the resolver ignore arguments past the third
// instead of rejecting them
func (b *Builder) WithLenientArity() *Builder {
	b.lenient = true
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build creates the Resolver with all specified options
func (b *Builder) Build() (*Resolver, error) {
	if b.err != nil {
		return nil, b.err
	}

	primary, secondary, err := b.directive.Order()
	if err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{
		directive: b.directive,
		primary:   b.provider(primary),
		secondary: b.provider(secondary),
		logger:    logger,
		lenient:   b.lenient,
	}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("resolver build failed: %v", err))
	}
	return r
}

func (b *Builder) provider(s Source) Provider {
	if s == SourceEnv {
		return b.env
	}
	return b.file
}
