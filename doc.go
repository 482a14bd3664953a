// File: lixenwraith/fileenv/doc.go

// Package fileenv resolves string constants at build time from a file, an
// environment variable or a literal default, taking the first source that
// yields data.
//
// This is useful when a binary carries hard-coded strings that CI injects
// as environment variables, that an offline build keeps in a local file,
// and that otherwise fall back to a fixed value.
//
// Two directives share one fallback chain and differ only in order:
//
//	file_env("filename", "ENV_NAME", "default_value") // file, env, default
//	env_file("ENV_NAME", "filename", "default_value") // env, file, default
//
// The default is optional. When every consulted source fails and no default
// was given, resolution returns an ArgumentMissingError; the fileenv
// command turns that into a failed go generate run. Each fallback emits a
// slog record such as
//
//	No file found with path VERSION.txt, trying environment variable
//
// Quick Start:
//
//	version, err := fileenv.FileEnv("VERSION.txt", "APP_VERSION", "dev")
//
// Custom providers and logger:
//
//	r, err := fileenv.NewBuilder().
//	    WithDirective(fileenv.DirectiveEnvFile).
//	    WithFileProvider(fileenv.FileProvider{Dir: "config", MaxFileSize: 1 << 20}).
//	    WithEnvProvider(fileenv.EnvProvider{Prefix: "MYAPP_"}).
//	    WithLogger(logger).
//	    Build()
//
// Generated code is produced by Generator and the cmd/fileenv command,
// either for a single directive or for a TOML, YAML or JSON manifest.
package fileenv
