package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	bserrors "github.com/alexisbeaulieu97/buttonsmith/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
// The format follows the extension: .yaml, .yml or .toml.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bserrors.NewParseError(path, 0, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return nil, bserrors.NewParseError(path, 0, zerr.With(zerr.New("unsupported config format"), "extension", ext))
	}
	if err != nil {
		return nil, bserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) && len(strict.Errors) > 0 {
		row, _ := strict.Errors[0].Position()
		return row
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

// DefaultPath is where the config is looked up when --config is not given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "locate user config directory")
	}
	return filepath.Join(dir, "buttonsmith", "config.yaml"), nil
}

// Discover loads the explicit path when set, otherwise the default path if
// it exists. A missing default file is not an error and yields nil.
func Discover(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := ParseConfig(explicit)
		return cfg, explicit, err
	}

	path, err := DefaultPath()
	if err != nil {
		return nil, "", nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			return nil, "", nil
		}
		return nil, path, zerr.With(zerr.Wrap(statErr, "stat config"), "path", path)
	}

	cfg, err := ParseConfig(path)
	return cfg, path, err
}
