// FILE: lixenwraith/fileenv/cmd/fileenv/main.go

// Command fileenv resolves string constants from a file, an environment
// variable or a literal default and writes them as Go source. It is meant
// to be run by go generate:
//
//	//go:generate fileenv -name Version file_env VERSION.txt APP_VERSION dev
//	//go:generate fileenv -name APIKey env_file API_KEY secrets/api_key.txt
//	//go:generate fileenv -manifest consts.toml
//
// Without arguments it uses fileenv.toml, fileenv.yaml, fileenv.yml or
// fileenv.json from the working directory.
//
// Options are taken from flags, then FILEENV_* environment variables
// (FILEENV_OUTPUT, FILEENV_PACKAGE, FILEENV_NAME, FILEENV_MANIFEST,
// FILEENV_QUIET), then the manifest, then $GOPACKAGE and $GOFILE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/fileenv"
)

const envPrefix = "FILEENV_"

type options struct {
	output   string
	pkg      string
	name     string
	manifest string
	quiet    bool
	lenient  bool
	args     []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "fileenv: %v\n", err)
		return 2
	}

	if err := generate(opts, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "fileenv: %v\n", err)
		return 1
	}
	return 0
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fileenv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.output, "o", "", "output file, - for stdout")
	fs.StringVar(&opts.pkg, "pkg", "", "package name of the generated file")
	fs.StringVar(&opts.name, "name", "", "constant name in single mode")
	fs.StringVar(&opts.manifest, "manifest", "", "TOML, YAML or JSON manifest listing constants")
	fs.BoolVar(&opts.quiet, "quiet", false, "suppress fallback diagnostics")
	fs.BoolVar(&opts.lenient, "lenient", false, "ignore directive arguments past the third")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: fileenv [flags] <file_env|env_file> ARG1 [ARG2 [ARG3]]")
		fmt.Fprintln(fs.Output(), "       fileenv [flags] -manifest FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.args = fs.Args()

	opts.output = firstOf(opts.output, os.Getenv(envName("output")))
	opts.pkg = firstOf(opts.pkg, os.Getenv(envName("package")))
	opts.name = firstOf(opts.name, os.Getenv(envName("name")))
	opts.manifest = firstOf(opts.manifest, os.Getenv(envName("manifest")))
	if !opts.quiet {
		if q, err := strconv.ParseBool(os.Getenv(envName("quiet"))); err == nil {
			opts.quiet = q
		}
	}

	if opts.manifest == "" && len(opts.args) == 0 {
		if path, ok := fileenv.DiscoverManifest("."); ok {
			opts.manifest = path
			return opts, nil
		}
		fs.Usage()
		return opts, errors.New("missing directive")
	}
	if opts.manifest != "" && len(opts.args) > 0 {
		return opts, errors.New("directive arguments cannot be combined with -manifest")
	}
	return opts, nil
}

func generate(opts options, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if opts.quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	b := fileenv.NewBuilder().WithLogger(logger)
	if opts.lenient {
		b = b.WithLenientArity()
	}

	var (
		consts []fileenv.ResolvedConstant
		pkg    = opts.pkg
		output = opts.output
		cmd    string
	)

	if opts.manifest != "" {
		m, err := fileenv.LoadManifest(opts.manifest)
		if err != nil {
			return err
		}
		if consts, err = m.Resolve(b); err != nil {
			return err
		}
		pkg = firstOf(pkg, m.Package)
		output = firstOf(output, m.Output)
		cmd = "fileenv -manifest " + opts.manifest
	} else {
		if opts.name == "" {
			return errors.New("-name is required without -manifest")
		}
		c := fileenv.Constant{Name: opts.name, Directive: opts.args[0], Args: opts.args[1:]}
		r, err := b.WithDirectiveName(c.Directive).Build()
		if err != nil {
			return err
		}
		out, err := r.ResolveOutcome(c.Args...)
		if err != nil {
			return err
		}
		consts = []fileenv.ResolvedConstant{{Constant: c, Value: out.Value, Source: out.Source}}
		cmd = "fileenv " + c.Directive
	}

	pkg = firstOf(pkg, os.Getenv("GOPACKAGE"))
	if pkg == "" {
		return errors.New("package name unknown: set -pkg or run under go generate")
	}
	output = firstOf(output, defaultOutput(os.Getenv("GOFILE")))

	src, err := fileenv.Generator{Package: pkg, Command: cmd}.Render(consts)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := stdout.Write(src)
		return err
	}
	return fileenv.WriteFile(output, src)
}

// envName maps an option name to its environment variable
func envName(option string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(option, ".", "_"))
}

// defaultOutput derives the output file from the file holding the
// go:generate line
func defaultOutput(gofile string) string {
	if gofile == "" {
		return "fileenv_gen.go"
	}
	return strings.TrimSuffix(gofile, ".go") + "_fileenv.go"
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
