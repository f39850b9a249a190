package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akmurmu82/library-management-app/bookshelf/internal/service/googlebooks"
	"github.com/akmurmu82/library-management-app/pkg/circuit_breaker"
	"github.com/akmurmu82/library-management-app/pkg/kafka"
	"github.com/akmurmu82/library-management-app/pkg/logger"
	"github.com/akmurmu82/library-management-app/pkg/postgres"
	"github.com/akmurmu82/library-management-app/pkg/session"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const EnvProduction = "production"

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"PORT" default:"5000"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"15s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"15s"`
}

type CORS struct {
	AllowOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

type Admin struct {
	Key string `envconfig:"ADMIN_KEY" json:"-"`
}

type Config struct {
	Env            string                 `envconfig:"APP_ENV" default:"development"`
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Session        session.Config         `yaml:"session"`
	CORS           CORS                   `yaml:"cors"`
	Admin          Admin                  `yaml:"admin"`
	GoogleBooks    googlebooks.Config     `yaml:"googleBooks"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Kafka          kafka.Config           `yaml:"kafka"`
	Log            logger.Log             `yaml:"log"`
}

// NewConfig reads config from environment. Options run afterwards and may
// override it.
func NewConfig(ops ...Option) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "envconfig.Process")
	}
	for _, op := range ops {
		op(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Session.Secret) < 32 {
		return errors.New("JWT_SECRET must be set to at least 32 bytes")
	}
	if c.Env == EnvProduction {
		for _, origin := range c.CORS.AllowOrigins {
			if strings.TrimSpace(origin) == "*" {
				return errors.New("ALLOWED_ORIGINS must not contain * in production")
			}
		}
		if !c.Session.CookieSecure {
			return errors.New("SESSION_COOKIE_SECURE must be true in production")
		}
	}
	return nil
}

func (c *Config) String() string {
	js, _ := json.MarshalIndent(c, "", "\t") //nolint:errcheck
	return string(js)
}

func PrintConfig(cfg *Config) {
	fmt.Println(cfg.String())
}
