package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"

	defaultAggregationConcurrency = 8
	defaultThreadsRateWindow      = time.Minute
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	HttpPort               int           `yaml:"http_port" validate:"required,min=1,max=65535"`
	LogLevel               string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON                bool          `yaml:"log_json"`
	Storage                Storage       `yaml:"storage"`
	Pg                     Pg            `yaml:"pg"`
	AccessTokenTTL         time.Duration `yaml:"access_token_ttl" validate:"required"`
	AggregationConcurrency int           `yaml:"aggregation_concurrency" validate:"gte=0"`
	ThreadsRateLimit       int           `yaml:"threads_rate_limit" validate:"gte=0"` // requests per window, 0 disables
	ThreadsRateWindow      time.Duration `yaml:"threads_rate_window" validate:"gte=0"`
	CorsAllowedOrigins     []string      `yaml:"cors_allowed_origins"`
	Https                  bool          `yaml:"https"` // enables HSTS
}

type Storage struct {
	Driver     string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	SqlitePath string `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	Pg struct {
		Password string `yaml:"password"`
	} `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func (c *Config) AccessTokenKey() string {
	return c.private.AccessTokenKey
}

func (c *Config) RefreshTokenKey() string {
	return c.private.RefreshTokenKey
}

func (c *Config) AccessTokenTTL() time.Duration {
	return c.Public.AccessTokenTTL
}

func (c *Config) PgPassword() string {
	return c.private.Pg.Password
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides (an optional .env is loaded first) and panics if the
// result is incomplete.
func MustLoad(configFolder string) *Config {
	// .env is optional; real environment variables take precedence over it
	_ = godotenv.Load(path.Join(configFolder, ".env"))

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := cfg.applyEnv(); err != nil {
		panic(err.Error())
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PG_PASSWORD"); v != "" {
		c.private.Pg.Password = v
	}
	if v := os.Getenv("ACCESS_TOKEN_KEY"); v != "" {
		c.private.AccessTokenKey = v
	}
	if v := os.Getenv("REFRESH_TOKEN_KEY"); v != "" {
		c.private.RefreshTokenKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Public.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number, got %q", v)
		}
		c.Public.HttpPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.AggregationConcurrency == 0 {
		c.Public.AggregationConcurrency = defaultAggregationConcurrency
	}
	if c.Public.ThreadsRateWindow == 0 {
		c.Public.ThreadsRateWindow = defaultThreadsRateWindow
	}
}

func (c *Config) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c.Public); err != nil {
		return err
	}
	if err := v.Struct(c.private); err != nil {
		return err
	}
	if c.Public.Storage.Driver == DriverPostgres {
		pg := c.Public.Pg
		if pg.Host == "" || pg.Port == 0 || pg.User == "" || pg.Dbname == "" {
			return fmt.Errorf("pg host, port, user and dbname are required for the postgres driver")
		}
	}
	return nil
}
