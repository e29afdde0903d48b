package config

import (
	"os"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
	"github.com/arthur-debert/dots/pkg/types"
)

// TargetKey is the only key recognized in a .dots file
const TargetKey = "target"

// RepositoryConfig is the content of a repository's .dots file
type RepositoryConfig struct {
	// Target is the raw target directory, possibly starting with ~
	Target string

	// Found is true when the .dots file exists
	Found bool
}

// LoadRepositoryConfig reads the .dots file at configPath. A missing file
// yields an empty config; a file that can't be parsed or that lacks a
// string target is an error.
func LoadRepositoryConfig(fs types.FS, configPath string) (*RepositoryConfig, error) {
	logger := logging.GetLogger("config.repository").With().Str("path", configPath).Logger()

	if _, err := fs.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No repository config, using defaults")
			return &RepositoryConfig{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", configPath)
	}

	data, err := fs.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", configPath)
	}

	return ParseRepositoryConfig(data, configPath)
}

// ParseRepositoryConfig parses the bytes of a .dots file. source is only
// used in error messages.
func ParseRepositoryConfig(data []byte, source string) (*RepositoryConfig, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, json.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", source)
	}

	raw := k.Get(TargetKey)
	target, ok := raw.(string)
	if !ok || target == "" {
		return nil, errors.Newf(errors.ErrConfigValid, "%s must contain a non-empty string %q", source, TargetKey).
			WithDetail("value", raw)
	}

	logger := logging.GetLogger("config.repository")
	for _, key := range k.Keys() {
		if key != TargetKey {
			logger.Warn().
				Str("key", key).
				Str("path", source).
				Msg("Ignoring unknown key in repository config")
		}
	}

	return &RepositoryConfig{Target: target, Found: true}, nil
}
