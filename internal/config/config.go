package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP        HTTPConfig        `envPrefix:"HTTP_"`
	DB          DBConfig          `envPrefix:"DB_"`
	Redis       RedisConfig       `envPrefix:"REDIS_"`
	Kafka       KafkaConfig       `envPrefix:"KAFKA_"`
	Auth        AuthConfig        `envPrefix:"JWT_"`
	Engagement  EngagementConfig  `envPrefix:"ENGAGEMENT_"`
	Onboarding  OnboardingConfig  `envPrefix:"ONBOARDING_"`
	Analytics   AnalyticsConfig   `envPrefix:"ANALYTICS_"`
	Diagnostics DiagnosticsConfig `envPrefix:"DIAGNOSTICS_"`
}

type HTTPConfig struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

type DBConfig struct {
	Host       string `env:"HOST" envDefault:"localhost"`
	User       string `env:"USER" envDefault:"postgres"`
	Password   string `env:"PASSWORD"`
	Name       string `env:"NAME" envDefault:"talentflow"`
	Port       string `env:"PORT" envDefault:"5432"`
	SSLMode    string `env:"SSLMODE" envDefault:"disable"`
	MaxRetries int    `env:"MAX_RETRIES" envDefault:"5"`
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

type RedisConfig struct {
	Addr       string `env:"ADDR" envDefault:"localhost:6379"`
	MaxRetries int    `env:"MAX_RETRIES" envDefault:"5"`
}

type KafkaConfig struct {
	Broker       string        `env:"BROKER"`
	GroupID      string        `env:"GROUP_ID" envDefault:"talentflow-notifications"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
	MaxRetries   int           `env:"MAX_RETRIES" envDefault:"5"`
}

type AuthConfig struct {
	Secret string `env:"SECRET"`
}

// EngagementConfig holds the engagement score weights. They are product
// tunables, not fixed business rules.
type EngagementConfig struct {
	PlanWeight        float64 `env:"PLAN_WEIGHT" envDefault:"15"`
	AchievementWeight float64 `env:"ACHIEVEMENT_WEIGHT" envDefault:"10"`
	CompetencyWeight  float64 `env:"COMPETENCY_WEIGHT" envDefault:"10"`
}

type OnboardingConfig struct {
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"30s"`
	DraftTTL time.Duration `env:"DRAFT_TTL" envDefault:"720h"`
}

type AnalyticsConfig struct {
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type DiagnosticsConfig struct {
	LoopWindow    time.Duration `env:"LOOP_WINDOW" envDefault:"10s"`
	LoopThreshold int           `env:"LOOP_THRESHOLD" envDefault:"20"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Engagement.PlanWeight < 0 || c.Engagement.AchievementWeight < 0 || c.Engagement.CompetencyWeight < 0 {
		return fmt.Errorf("engagement weights must not be negative")
	}
	if c.Onboarding.LockTTL <= 0 {
		return fmt.Errorf("ONBOARDING_LOCK_TTL must be positive")
	}
	if c.Diagnostics.LoopThreshold < 1 {
		return fmt.Errorf("DIAGNOSTICS_LOOP_THRESHOLD must be at least 1")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
