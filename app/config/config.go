// Package config resolves settings with precedence defaults < file < env.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"hashblog/app/repositories"
	"hashblog/app/views"
)

// EnvPrefix prefixes environment overrides, e.g. HASHBLOG_HTTP_ADDR.
const EnvPrefix = "hashblog"

// Config is the resolved application configuration.
type Config struct {
	HTTPAddr string        `mapstructure:"http_addr"`
	Locale   string        `mapstructure:"locale"`
	Title    string        `mapstructure:"title"`
	Content  ContentConfig `mapstructure:"content"`
	Log      LogConfig     `mapstructure:"log"`
}

type ContentConfig struct {
	File      string `mapstructure:"file"`
	BadgerDir string `mapstructure:"badger_dir"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Option documents one configuration key and its default.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns every configuration key with its default.
func Options() []Option {
	return []Option{
		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for serve"},
		{Key: "locale", Default: "en-US", Comment: "BCP 47 locale for dates and labels"},
		{Key: "title", Default: "hashblog", Comment: "Document title of the served page"},
		{Key: "content.file", Default: "", Comment: "YAML content file; empty uses the built-in posts"},
		{Key: "content.badger_dir", Default: "", Comment: "Badger snapshot directory; takes precedence over content.file"},
		{Key: "log.level", Default: "info", Comment: "debug, info, warn or error"},
		{Key: "log.development", Default: false, Comment: "Console logging instead of JSON"},
	}
}

// Load applies defaults, reads the config file if one is set or found in
// the working directory, then applies environment overrides.
func Load(v *viper.Viper) (*Config, error) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}

	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("hashblog")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); explicit || !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if _, err := cfg.LocaleTag(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LocaleTag parses the configured locale.
func (c *Config) LocaleTag() (language.Tag, error) {
	return views.ParseLocale(c.Locale)
}

// ContentOptions maps the content section onto the store loader.
func (c *Config) ContentOptions() repositories.ContentOptions {
	return repositories.ContentOptions{
		File:      c.Content.File,
		BadgerDir: c.Content.BadgerDir,
	}
}
