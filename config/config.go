// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stackq/stackq/constant"
	"github.com/stackq/stackq/filesystem"
	"github.com/stackq/stackq/key"
	"github.com/stackq/stackq/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate checks the values whose domain is narrower than their type.
func Validate() error {
	if backend := viper.GetString(key.RunBackend); !lo.Contains(Backends, backend) {
		return fmt.Errorf("invalid %s %q: expected one of %s", key.RunBackend, backend, strings.Join(Backends, ", "))
	}

	if size := viper.GetInt(key.ReplHistorySize); size < 1 {
		return fmt.Errorf("invalid %s %d: must be positive", key.ReplHistorySize, size)
	}

	return nil
}
