package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/logging"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "DOTS_"

// settingsSections are the top-level keys environment variables may set
var settingsSections = []string{"git", "hg", "commit", "output"}

// Settings holds the tool-wide settings for backend commands and output
type Settings struct {
	Git    GitSettings    `koanf:"git"`
	Hg     HgSettings     `koanf:"hg"`
	Commit CommitSettings `koanf:"commit"`
	Output OutputSettings `koanf:"output"`
}

// GitSettings configures the git-like backend
type GitSettings struct {
	Binary string `koanf:"binary"`
	Remote string `koanf:"remote"`
	Branch string `koanf:"branch"`
}

// HgSettings configures the hg-like backend
type HgSettings struct {
	Binary string `koanf:"binary"`
}

// CommitSettings configures the commit step of a push
type CommitSettings struct {
	Message string `koanf:"message"`
}

// OutputSettings configures how results are rendered
type OutputSettings struct {
	Format string `koanf:"format"`
}

// DefaultSettings returns the embedded defaults without reading any file or
// environment variable.
func DefaultSettings() (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}
	return unmarshalSettings(k)
}

// LoadSettings layers defaults, the settings file at settingsPath (if it
// exists), DOTS_* environment variables and finally overrides, which are
// flat dotted keys such as "output.format" set from command-line flags.
func LoadSettings(settingsPath string, overrides map[string]interface{}) (*Settings, error) {
	logger := logging.GetLogger("config.settings")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default settings")
	}

	// 2. User settings file
	if settingsPath != "" {
		if _, err := os.Stat(settingsPath); err == nil {
			if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", settingsPath)
			}
			logger.Debug().Str("path", settingsPath).Msg("Loaded settings file")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat settings file %s", settingsPath)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshalSettings(k)
}

// envKey maps DOTS_GIT_REMOTE to git.remote. Variables outside the known
// sections (DOTS_CONFIG_DIR and friends) are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found || rest == "" {
		return ""
	}
	for _, known := range settingsSections {
		if section == known {
			return section + "." + rest
		}
	}
	return ""
}

func unmarshalSettings(k *koanf.Koanf) (*Settings, error) {
	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	return &s, nil
}

type requiredSetting struct {
	key   string
	value string
}

// ValidateGit checks that the git backend has everything its steps need
func (s *Settings) ValidateGit() error {
	return checkRequired([]requiredSetting{
		{"git.binary", s.Git.Binary},
		{"git.remote", s.Git.Remote},
		{"git.branch", s.Git.Branch},
		{"commit.message", s.Commit.Message},
	})
}

// ValidateHg checks that the hg backend has everything its steps need
func (s *Settings) ValidateHg() error {
	return checkRequired([]requiredSetting{
		{"hg.binary", s.Hg.Binary},
		{"commit.message", s.Commit.Message},
	})
}

func checkRequired(required []requiredSetting) error {
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errors.Newf(errors.ErrConfigValid, "setting %s must not be empty", r.key).
				WithDetail("key", r.key)
		}
	}
	return nil
}
