// FILE: lixenwraith/fileenv/resolver.go
package fileenv

import (
	"fmt"
	"log/slog"
)

// maxArgs is the primary identifier, the secondary identifier and the default
const maxArgs = 3

// Outcome is the result of a single resolution attempt.
// Descriptor is the identifier that was consulted; for an unresolved
// outcome it is only used in diagnostics.
type Outcome struct {
	Value      string
	Resolved   bool
	Source     Source
	Descriptor string
}

// Resolver runs the fallback chain for one directive.
// A Resolver is immutable once built and safe for concurrent use.
type Resolver struct {
	directive Directive
	primary   Provider
	secondary Provider
	logger    *slog.Logger
	lenient   bool
}

// Directive returns the directive this resolver implements
func (r *Resolver) Directive() Directive {
	return r.directive
}

// Resolve returns the value of the first source in the chain that yields
// data. The only errors are author-time mistakes in the argument list.
func (r *Resolver) Resolve(args ...string) (string, error) {
	out, err := r.ResolveOutcome(args...)
	if err != nil {
		return "", err
	}
	return out.Value, nil
}

// ResolveOutcome is like Resolve but also reports which source won
func (r *Resolver) ResolveOutcome(args ...string) (Outcome, error) {
	if len(args) > maxArgs {
		if !r.lenient {
			return Outcome{}, fmt.Errorf("%w: %s takes at most %d arguments, got %d",
				ErrTooManyArguments, r.directive, maxArgs, len(args))
		}
		args = args[:maxArgs]
	}
	if len(args) == 0 {
		return Outcome{}, &ArgumentMissingError{Directive: r.directive, Argument: r.primary.Kind()}
	}

	for i, p := range []Provider{r.primary, r.secondary} {
		if i >= len(args) {
			break
		}
		out := lookup(p, args[i])
		if out.Resolved {
			return out, nil
		}
		r.report(out, r.nextStage(i))
	}

	switch {
	case len(args) == maxArgs:
		return Outcome{Value: args[2], Resolved: true, Source: SourceDefault}, nil
	case len(args) == 1:
		return Outcome{}, &ArgumentMissingError{Directive: r.directive, Argument: r.secondary.Kind()}
	default:
		return Outcome{}, &ArgumentMissingError{Directive: r.directive, Argument: SourceDefault}
	}
}

func lookup(p Provider, id string) Outcome {
	value, ok := p.Lookup(id)
	return Outcome{Value: value, Resolved: ok, Source: p.Kind(), Descriptor: id}
}

// nextStage names what the chain tries after stage i fails
func (r *Resolver) nextStage(i int) string {
	if i == 0 {
		kind, _ := r.secondary.Kind().describe()
		return kind
	}
	return "default"
}

func (r *Resolver) report(out Outcome, next string) {
	kind, noun := out.Source.describe()
	r.logger.Info(fmt.Sprintf("No %s found with %s %s, trying %s", kind, noun, out.Descriptor, next),
		"directive", string(r.directive),
		"source", string(out.Source),
		"id", out.Descriptor,
	)
}

// FileEnv resolves args as file_env("filename", "ENV_NAME", "default_value")
// using the working directory, the process environment and slog.Default.
func FileEnv(args ...string) (string, error) {
	r, err := NewBuilder().WithDirective(DirectiveFileEnv).Build()
	if err != nil {
		return "", err
	}
	return r.Resolve(args...)
}

// EnvFile resolves args as env_file("ENV_NAME", "filename", "default_value")
// using the working directory, the process environment and slog.Default.
func EnvFile(args ...string) (string, error) {
	r, err := NewBuilder().WithDirective(DirectiveEnvFile).Build()
	if err != nil {
		return "", err
	}
	return r.Resolve(args...)
}
