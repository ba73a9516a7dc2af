package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// config is the CLI's own settings, loaded the same way the teacher's
// config loads its `pixie.yaml`: viper reads the file, creasty/defaults
// fills in anything the file didn't set, then mapstructure decodes into
// the struct with a custom hook for the one field shape viper doesn't
// know natively — a hex string base address.
type config struct {
	LogLevel string `mapstructure:"log_level" default:"info"`
	Base     uint64 `mapstructure:"base" default:"0x10000000"`
}

// hexStringToUint64Hook lets config files express a base address as
// "0x10000000" instead of a decimal integer, which is how every tool in
// this domain prints addresses. The simulate command's --base flag does
// not go through this hook; it is parsed separately.
func hexStringToUint64Hook() mapstructure.DecodeHookFunc {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.Uint64 {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

		val, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return data, fmt.Errorf("failed to parse hex address %q: %w", s, err)
		}
		return val, nil
	}
}

func loadConfig(path string) (*config, error) {
	cfg := &config{}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from '%s': %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: hexStringToUint64Hook(),
		Result:     cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
