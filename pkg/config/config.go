// Package config provides a reusable loader for polypath's TOML
// configuration files and environment variable overrides.
//
// Version: v0.1.0
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"polypath/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// PairConfig names one bridge-supported (source, destination) token pair, as
// read from a `[[bridges.<name>.pairs]]` TOML entry.
type PairConfig struct {
	SourceChain           string `mapstructure:"source_chain" json:"source_chain"`
	DestinationChain      string `mapstructure:"destination_chain" json:"destination_chain"`
	SourceTokenName       string `mapstructure:"source_token_name" json:"source_token_name"`
	SourceAddress         string `mapstructure:"source_address" json:"source_address"`
	DestinationAddress    string `mapstructure:"destination_address" json:"destination_address"`
	DestinationTokenName  string `mapstructure:"destination_token_name" json:"destination_token_name"`
}

// BridgeConfig is one `[bridges.<name>]` table.
type BridgeConfig struct {
	BaseURL string                 `mapstructure:"base_url" json:"base_url"`
	Chains  []string               `mapstructure:"chains" json:"chains"`
	Pairs   []PairConfig           `mapstructure:"pairs" json:"pairs"`
	Extra   map[string]interface{} `mapstructure:"extra" json:"extra"`
}

// GlobalConfig is the `[global]` table.
type GlobalConfig struct {
	UpdateInterval uint64 `mapstructure:"update_interval" json:"update_interval"`
	CacheTTL       uint64 `mapstructure:"cache_ttl" json:"cache_ttl"`
	LogLevel       string `mapstructure:"log_level" json:"log_level"`
}

// Config is the unified configuration for a polypath process, mirroring
// the TOML files under cmd/config.
type Config struct {
	Global  GlobalConfig            `mapstructure:"global" json:"global"`
	Bridges map[string]BridgeConfig `mapstructure:"bridges" json:"bridges"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load first loads an optional .env file from the working directory into
// the process environment (variables that are already set are kept), then
// reads cmd/config/default.toml (or config/default.toml), merges any
// environment-specific overlay file (cmd/config/<env>.toml), and finally
// enables environment variable overrides. The resulting configuration is
// stored in AppConfig and returned.
func Load(env string) (*Config, error) {
	// Best-effort: a missing .env is not an error, it simply means no
	// local overlay was intended.
	_ = godotenv.Load()

	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("toml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, utils.Wrap(err, "load config")
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.AutomaticEnv()

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the POLYPATH_ENV environment
// variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("POLYPATH_ENV", ""))
}
