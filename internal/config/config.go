// Package config loads the signer settings of the command line tool from a
// YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/luikyv/gotok/pkg/signer"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file values.
const (
	EnvKey           = "GOTOK_KEY"
	EnvSecret        = "GOTOK_SECRET"
	EnvServer        = "GOTOK_SERVER"
	EnvTokenSentinel = "GOTOK_TOKEN_SENTINEL"
	EnvSDKVersion    = "GOTOK_SDK_VERSION"
)

type Config struct {
	gotok.Credentials `yaml:",inline"`
	TokenSentinel     string `yaml:"token_sentinel"`
	SDKVersion        string `yaml:"sdk_version"`
	Debug             bool   `yaml:"debug"`
}

// Load reads the file at path, when it exists, and applies the environment
// overrides.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("could not read the config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse the config file %s: %w", path, err)
		}
	}

	for env, field := range map[string]*string{
		EnvKey:           &cfg.Key,
		EnvSecret:        &cfg.Secret,
		EnvServer:        &cfg.ServerURL,
		EnvTokenSentinel: &cfg.TokenSentinel,
		EnvSDKVersion:    &cfg.SDKVersion,
	} {
		if value, ok := lookupEnv(env); ok {
			*field = value
		}
	}

	return cfg, nil
}

// SignerOptions translates the optional settings into signer options.
func (cfg Config) SignerOptions() []signer.Option {
	var opts []signer.Option
	if cfg.TokenSentinel != "" {
		opts = append(opts, signer.WithTokenSentinel(cfg.TokenSentinel))
	}
	if cfg.SDKVersion != "" {
		opts = append(opts, signer.WithSDKVersion(cfg.SDKVersion))
	}
	return opts
}
