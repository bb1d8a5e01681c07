package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/arena-manager/internal/timezone"
)

type Config struct {
	Env        string `yaml:"env" envconfig:"ENV"`
	ServerPort string `yaml:"server_port" envconfig:"SERVER_PORT"`

	BackendBaseURL string        `yaml:"backend_base_url" envconfig:"BACKEND_BASE_URL"`
	BackendTimeout time.Duration `yaml:"backend_timeout" envconfig:"BACKEND_TIMEOUT"`

	// vazio desliga a persistência do audit (eventos vão para o log)
	DBUrl string `yaml:"database_url" envconfig:"DATABASE_URL"`

	// vazio usa o cache em memória
	RedisURL string        `yaml:"redis_url" envconfig:"REDIS_URL"`
	CacheTTL time.Duration `yaml:"cache_ttl" envconfig:"CACHE_TTL"`

	AMQPUrl      string `yaml:"amqp_url" envconfig:"AMQP_URL"`
	AMQPExchange string `yaml:"amqp_exchange" envconfig:"AMQP_EXCHANGE"`

	CORSOrigins []string `yaml:"cors_origins" envconfig:"CORS_ORIGINS"`
	Timezone    string   `yaml:"timezone" envconfig:"TIMEZONE"`

	CatalogWarmup time.Duration `yaml:"catalog_warmup" envconfig:"CATALOG_WARMUP"`

	// opcional: quando presente o token é verificado, não só decodificado
	JWTSecret string `yaml:"-" envconfig:"JWT_SECRET"`

	OTLPEndpoint    string        `yaml:"otlp_endpoint" envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// Load lê .env (se existir), o arquivo YAML apontado por CONFIG_FILE e por
// fim as variáveis de ambiente, nessa ordem de precedência crescente.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env ignored: %v", err)
	}

	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "development"
	}
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.BackendBaseURL == "" {
		c.BackendBaseURL = "http://localhost:8000"
	}
	if c.BackendTimeout <= 0 {
		c.BackendTimeout = 10 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 30 * time.Second
	}
	if c.AMQPExchange == "" {
		c.AMQPExchange = "arena.cache"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	if c.Timezone == "" {
		c.Timezone = timezone.DefaultTimezone
	}
	if c.CatalogWarmup <= 0 {
		c.CatalogWarmup = 5 * time.Minute
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base url %q is not absolute", c.BackendBaseURL)
	}
	if !timezone.IsValid(c.Timezone) {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
