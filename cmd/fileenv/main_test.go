package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearOptionEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"output", "package", "name", "manifest", "quiet"} {
		t.Setenv(envName(name), "")
	}
	t.Setenv("GOPACKAGE", "")
	t.Setenv("GOFILE", "")
}

func TestRunSingle(t *testing.T) {
	clearOptionEnv(t)
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "version_fileenv.go")
	t.Setenv("FILEENV_CLI_VERSION", "2.0.0")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-o", out, "-pkg", "buildinfo", "-name", "Version",
		"file_env", filepath.Join(tmpDir, "VERSION"), "FILEENV_CLI_VERSION",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package buildinfo")
	assert.Contains(t, string(data), `Version = "2.0.0"`)
	assert.Contains(t, stderr.String(), "No file found with path")
}

func TestRunStdoutAndGoGenerateEnv(t *testing.T) {
	clearOptionEnv(t)
	t.Setenv("GOPACKAGE", "consts")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", "-", "-quiet", "-name", "Mode", "env_file", "FILEENV_CLI_UNSET", "no_such_file", "release"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	assert.Contains(t, stdout.String(), "package consts")
	assert.Contains(t, stdout.String(), `Mode = "release"`)
	assert.Empty(t, stderr.String())
}

func TestRunManifest(t *testing.T) {
	clearOptionEnv(t)
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "zz_consts.go")

	manifest := filepath.Join(tmpDir, "consts.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
package = "fromfile"
output = "`+out+`"

[[const]]
name = "Greeting"
directive = "env_file"
args = ["FILEENV_CLI_UNSET", "no_such_file", "hi"]
`), 0644))

	t.Run("ManifestOptions", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-manifest", manifest}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "package fromfile")
		assert.Contains(t, string(data), `Greeting = "hi"`)
	})

	t.Run("EnvOverridesManifest", func(t *testing.T) {
		t.Setenv(envName("package"), "fromenv")
		t.Setenv(envName("manifest"), manifest)

		var stdout, stderr bytes.Buffer
		code := run([]string{"-o", "-"}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "package fromenv")
	})

	t.Run("FlagOverridesEnv", func(t *testing.T) {
		t.Setenv(envName("package"), "fromenv")

		var stdout, stderr bytes.Buffer
		code := run([]string{"-o", "-", "-pkg", "fromflag", "-manifest", manifest}, &stdout, &stderr)
		require.Equal(t, 0, code, stderr.String())
		assert.Contains(t, stdout.String(), "package fromflag")
	})
}

func TestRunFailures(t *testing.T) {
	clearOptionEnv(t)

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"NoDirective", nil, 2, "missing directive"},
		{"ManifestAndDirective", []string{"-manifest", "x.toml", "file_env", "a"}, 2, "cannot be combined"},
		{"NoName", []string{"-pkg", "p", "file_env", "a", "B", "c"}, 1, "-name is required"},
		{"UnknownDirective", []string{"-pkg", "p", "-name", "X", "include_str", "a"}, 1, "unknown directive"},
		{"NoDefault", []string{"-pkg", "p", "-name", "X", "file_env", "no_such_file", "FILEENV_CLI_UNSET"}, 1,
			`No default value argument supplied, try file_env("filename", "ENV_NAME", "default_value")`},
		{"NoPackage", []string{"-o", "-", "-name", "X", "file_env", "no_such_file", "FILEENV_CLI_UNSET", "d"}, 1, "package name unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.msg)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "fileenv_gen.go", defaultOutput(""))
	assert.Equal(t, "version_fileenv.go", defaultOutput("version.go"))
}
