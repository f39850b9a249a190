package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

// WithWriteTimeout applies only when HTTP_WRITE is unset or zero.
func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if c.Server.WriteTimeout <= 0 {
			c.Server.WriteTimeout = timeout
		}
	}
}
