/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Posts    PostsConfig    `yaml:"posts"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	TemplateDir     string        `yaml:"template_dir"      env:"SERVER_TEMPLATE_DIR"      env-default:"web/templates"`
}

// DatabaseConfig holds the storage backend selection.
// sqlite serves development and tests, postgres serves production.
type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn"    env:"DATABASE_DSN"    env-default:"yatube.db"`
}

// SessionConfig holds the cookie session settings.
type SessionConfig struct {
	Secret string        `yaml:"secret"  env:"SESSION_SECRET" env-required:"true"`
	MaxAge time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"168h"`
}

// PostsConfig holds the feed and validation knobs.
type PostsConfig struct {
	PageSize      int `yaml:"page_size"       env:"POSTS_PAGE_SIZE"       env-default:"10"`
	MinTextLength int `yaml:"min_text_length" env:"POSTS_MIN_TEXT_LENGTH" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads the configuration from the given yaml file, falling back to environment
// variables only when path is empty. Env vars override the file either way.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading config from env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	return &cfg, nil
}
