package config

import (
	"errors"
	"time"
)

// Config holds server configuration values.
type Config struct {
	Addr                 string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout    time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout      time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel             string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat            string        `mapstructure:"log_format" yaml:"log_format"`
	StaticDir            string        `mapstructure:"static_dir" yaml:"static_dir"`
	ARDir                string        `mapstructure:"ar_dir" yaml:"ar_dir"`
	MaxPlayersPerRoom    int           `mapstructure:"max_players_per_room" yaml:"max_players_per_room"`
	GracePeriod          time.Duration `mapstructure:"grace_period" yaml:"grace_period"`
	ClientBuffer         int           `mapstructure:"client_buffer" yaml:"client_buffer"`
	MaxMessageBytes      int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	InboundRatePerMinute int           `mapstructure:"inbound_rate_per_minute" yaml:"inbound_rate_per_minute"`
	PingInterval         time.Duration `mapstructure:"ping_interval" yaml:"ping_interval"`
	PingTimeout          time.Duration `mapstructure:"ping_timeout" yaml:"ping_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:                 ":3000",
		ReadHeaderTimeout:    5 * time.Second,
		ShutdownTimeout:      5 * time.Second,
		LogLevel:             "info",
		LogFormat:            "console",
		StaticDir:            "public",
		ARDir:                "AR",
		MaxPlayersPerRoom:    4,
		GracePeriod:          30 * time.Second,
		ClientBuffer:         16,
		MaxMessageBytes:      1 << 16,
		InboundRatePerMinute: 600,
		PingInterval:         25 * time.Second,
		PingTimeout:          60 * time.Second,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if other.StaticDir != "" {
		c.StaticDir = other.StaticDir
	}
	if other.ARDir != "" {
		c.ARDir = other.ARDir
	}
	if other.MaxPlayersPerRoom != 0 {
		c.MaxPlayersPerRoom = other.MaxPlayersPerRoom
	}
	if other.GracePeriod != 0 {
		c.GracePeriod = other.GracePeriod
	}
	if other.ClientBuffer != 0 {
		c.ClientBuffer = other.ClientBuffer
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.InboundRatePerMinute != 0 {
		c.InboundRatePerMinute = other.InboundRatePerMinute
	}
	if other.PingInterval != 0 {
		c.PingInterval = other.PingInterval
	}
	if other.PingTimeout != 0 {
		c.PingTimeout = other.PingTimeout
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr must not be empty")
	case c.MaxPlayersPerRoom < 1:
		return errors.New("max_players_per_room must be at least 1")
	case c.GracePeriod <= 0:
		return errors.New("grace_period must be positive")
	case c.ClientBuffer < 1:
		return errors.New("client_buffer must be at least 1")
	case c.MaxMessageBytes < 1:
		return errors.New("max_message_bytes must be positive")
	case c.PingInterval < 0 || c.PingTimeout < 0:
		return errors.New("ping_interval and ping_timeout must not be negative")
	}
	return nil
}
