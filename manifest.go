// FILE: lixenwraith/fileenv/manifest.go
package fileenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Manifest lists the constants of one generated file
type Manifest struct {
	Package   string     `toml:"package"`
	Output    string     `toml:"output"`
	Constants []Constant `toml:"const"`
}

// LoadManifest reads and decodes a TOML, YAML or JSON manifest.
// The format comes from the file extension, then from the content.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	m, err := ParseManifest(data, format)
	if err != nil {
		return nil, fmt.Errorf("manifest '%s': %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes manifest data in the given format ("toml", "yaml" or "json")
func ParseManifest(data []byte, format string) (*Manifest, error) {
	raw := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrManifestFormat, format)
	}

	// Strict typing: args must be strings in the manifest itself.
	m := &Manifest{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      m,
		TagName:     "toml",
		ErrorUnused: true,
		DecodeHook:  mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	if len(m.Constants) == 0 {
		return nil, errors.New("manifest declares no constants")
	}
	return m, nil
}

// Resolve runs every constant through a resolver built from b with the
// constant's directive. It stops at the first fatal error.
// b itself is not modified.
func (m *Manifest) Resolve(b *Builder) ([]ResolvedConstant, error) {
	resolved := make([]ResolvedConstant, 0, len(m.Constants))
	for _, c := range m.Constants {
		cb := *b
		r, err := cb.WithDirectiveName(c.Directive).Build()
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.Name, err)
		}

		out, err := r.ResolveOutcome(c.Args...)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.Name, err)
		}
		resolved = append(resolved, ResolvedConstant{Constant: c, Value: out.Value, Source: out.Source})
	}
	return resolved, nil
}

// ManifestName is the base name DiscoverManifest searches for
const ManifestName = "fileenv"

// manifestExtensions are tried in order by DiscoverManifest
var manifestExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// DiscoverManifest looks for fileenv.toml, fileenv.yaml, fileenv.yml or
// fileenv.json in dir and returns the first regular file found
func DiscoverManifest(dir string) (string, bool) {
	for _, ext := range manifestExtensions {
		path := filepath.Join(dir, ManifestName+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON first, YAML would also accept it
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// TOML before YAML: simple "key = value" lines are valid YAML scalars
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
