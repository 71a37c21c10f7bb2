// Package config loads runtime settings from a YAML file and the
// environment. Priority: ENV > YAML > defaults (env-default tags).
package config

import "time"

type Config struct {
	Endpoint       string        `yaml:"endpoint"        env:"GT_ENDPOINT"        env-default:"https://translate.google.com/translate_a/single"`
	SpeechEndpoint string        `yaml:"speech_endpoint" env:"GT_SPEECH_ENDPOINT" env-default:"https://translate.google.com/translate_tts"`
	UserAgent      string        `yaml:"user_agent"      env:"GT_USER_AGENT"      env-default:"Mozilla/5.0 (X11; Linux x86_64; rv:39.0) Gecko/20100101 Firefox/39.0"`
	Timeout        time.Duration `yaml:"timeout"         env:"GT_TIMEOUT"         env-default:"30s"`
	// InterfaceLang names speech parts in replies; empty means English.
	InterfaceLang string `yaml:"interface_lang" env:"GT_INTERFACE_LANG"`
	// Colors overrides console colors, e.g. "no=1;33:tr=32".
	Colors string `yaml:"colors" env:"GT_COLORS"`
	Player string `yaml:"player" env:"GT_PLAYER,PLAYER" env-default:"mplayer"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds settings for `gt serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"GT_SERVER_ADDR"             env-default:"127.0.0.1:8080"`
	AllowedOrigins  []string      `yaml:"allowed_origins"  env:"GT_CORS_ALLOWED_ORIGINS"    env-default:"*" env-separator:","`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"GT_SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"GT_SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"GT_SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"GT_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"GT_LOG_FILE"`
}
