// Package config resolves asciinum settings from defaults, an optional JSON
// file and the environment. Command-line flags are applied on top by the
// caller.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultRadix is the selector used when nothing else picks one.
const DefaultRadix = "dao"

// Config is the resolved, unvalidated configuration. Radix and Format are
// checked by the packages that interpret them.
type Config struct {
	Radix   string `json:"radix"    env:"ASCIINUM_RADIX"`
	Format  string `json:"format"   env:"ASCIINUM_FORMAT"`
	Debug   bool   `json:"debug"    env:"ASCIINUM_DEBUG"`
	NoColor bool   `json:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Radix: DefaultRadix, Format: "text"}
}

//go:embed schema.json
var schemaJSON string

const schemaURL = "schema://asciinum/config.json"

// compileSchema compiles the embedded config schema. Remote $ref loading is
// disabled; the schema is self-contained.
func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.LoadURL = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("$ref not allowed: %s", url)
	}
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

// LoadFile overlays the JSON file at path onto cfg. The file must satisfy
// the embedded schema; unknown keys are rejected.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return load(cfg, path, data)
}

func load(cfg *Config, name string, data []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("config %s: invalid JSON: %w", name, err)
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("config schema compilation failed: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("config %s: %w", name, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", name, err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg. Variables that are not
// set leave the field unchanged. NO_COLOR disables colour when set to any
// non-empty value.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return nil
}

// Load resolves defaults, then the file at path (if path is not empty),
// then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
