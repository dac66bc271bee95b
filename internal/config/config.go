package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Políticas para avaliações marcadas como "não se aplica" nas médias por área
const (
	NotApplicableInclude = "include"
	NotApplicableExclude = "exclude"
)

// Config reúne toda a configuração da API
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Intake    IntakeConfig    `yaml:"intake"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Timezone  string          `yaml:"timezone"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	BodyLimit    int           `yaml:"body_limit"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	AllowOrigins string        `yaml:"allow_origins"`
}

type DatabaseConfig struct {
	URL             string        `yaml:"url"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
	SlowQuery       time.Duration `yaml:"slow_query"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AuthConfig guarda a credencial administrativa injetada. Nunca há senha literal no código.
type AuthConfig struct {
	AdminPasswordHash string        `yaml:"admin_password_hash"`
	JWTSecret         string        `yaml:"jwt_secret"`
	TokenTTL          time.Duration `yaml:"token_ttl"`
}

type IntakeConfig struct {
	// StrictFeedback reaplica no servidor a regra de feedback obrigatório por nota
	StrictFeedback bool `yaml:"strict_feedback"`
}

type AnalyticsConfig struct {
	NotApplicablePolicy string `yaml:"not_applicable_policy"`
	TimelineDays        int    `yaml:"timeline_days"`
	RecentLimit         int    `yaml:"recent_limit"`
}

// Default retorna a configuração padrão
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8080",
			BodyLimit:    1 * 1024 * 1024,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
			AllowOrigins: "http://localhost:3000",
		},
		Database: DatabaseConfig{
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
			QueryTimeout:    10 * time.Second,
			SlowQuery:       500 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Auth: AuthConfig{
			TokenTTL: 8 * time.Hour,
		},
		Intake: IntakeConfig{
			StrictFeedback: true,
		},
		Analytics: AnalyticsConfig{
			NotApplicablePolicy: NotApplicableInclude,
			TimelineDays:        30,
			RecentLimit:         50,
		},
		Timezone: "America/Sao_Paulo",
	}
}

// Load monta a configuração: padrões, arquivo YAML opcional (CONFIG_FILE), .env e variáveis de ambiente
func Load() (*Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo de configuração %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("erro ao interpretar arquivo de configuração %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", c.Server.AllowOrigins)

	c.Database.URL = getEnv("DATABASE_URL", c.Database.URL)
	c.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.ConnMaxLifetime = getEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.QueryTimeout = getEnvDuration("DB_QUERY_TIMEOUT", c.Database.QueryTimeout)
	c.Database.SlowQuery = getEnvDuration("DB_SLOW_QUERY", c.Database.SlowQuery)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	c.Auth.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", c.Auth.AdminPasswordHash)
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenTTL = getEnvDuration("AUTH_TOKEN_TTL", c.Auth.TokenTTL)

	c.Intake.StrictFeedback = getEnvBool("STRICT_FEEDBACK", c.Intake.StrictFeedback)

	c.Analytics.NotApplicablePolicy = getEnv("NOT_APPLICABLE_POLICY", c.Analytics.NotApplicablePolicy)
	c.Analytics.TimelineDays = getEnvInt("TIMELINE_DAYS", c.Analytics.TimelineDays)
	c.Analytics.RecentLimit = getEnvInt("RECENT_LIMIT", c.Analytics.RecentLimit)

	c.Timezone = getEnv("TIMEZONE", c.Timezone)
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.Analytics.NotApplicablePolicy {
	case NotApplicableInclude, NotApplicableExclude:
	default:
		return fmt.Errorf("política de 'não se aplica' inválida: %q", c.Analytics.NotApplicablePolicy)
	}
	if c.Analytics.TimelineDays <= 0 {
		return fmt.Errorf("timeline_days deve ser positivo, recebido %d", c.Analytics.TimelineDays)
	}
	if c.Analytics.RecentLimit <= 0 || c.Analytics.RecentLimit > 50 {
		return fmt.Errorf("recent_limit deve estar entre 1 e 50, recebido %d", c.Analytics.RecentLimit)
	}
	if c.Auth.AdminPasswordHash != "" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET é obrigatório quando ADMIN_PASSWORD_HASH está definido")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
