package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var (
	// ErrReadConfig возвращается, если файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Auth       AuthConfig       `toml:"auth"`
	Redis      RedisConfig      `toml:"redis"`
	RabbitMQ   RabbitMQConfig   `toml:"rabbitmq"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"` // json или console
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig параметры проверки административных токенов
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
	AdminRole string `toml:"admin_role"`
}

// RedisConfig параметры кэша снимков бронирований
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// RabbitMQConfig параметры публикации событий
type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

// SchedulingConfig политика расписания
type SchedulingConfig struct {
	Timezone            string `toml:"timezone"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	LeadTimeMinutes     int    `toml:"lead_time_minutes"`
	DefaultOpenTime     string `toml:"default_open_time"`
	DefaultCloseTime    string `toml:"default_close_time"`
}

// Location часовой пояс, в котором считаются даты и часы работы
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// SlotDuration длительность слота
func (s SchedulingConfig) SlotDuration() time.Duration {
	return time.Duration(s.SlotDurationMinutes) * time.Minute
}

// LeadTime минимальный запас времени до начала слота
func (s SchedulingConfig) LeadTime() time.Duration {
	return time.Duration(s.LeadTimeMinutes) * time.Minute
}

// DefaultHours часы работы по умолчанию
func (s SchedulingConfig) DefaultHours() domain.OperatingHours {
	return domain.OperatingHours{
		StartTime:   types.TimeString(s.DefaultOpenTime),
		EndTime:     types.TimeString(s.DefaultCloseTime),
		IsAvailable: true,
		IsDefault:   true,
	}
}

// Load читает конфигурацию из TOML-файла, затем применяет .env и переменные окружения
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}
	if c.Auth.AdminRole == "" {
		return fmt.Errorf("%w: auth.admin_role is required", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RabbitMQ.Enabled && (c.RabbitMQ.URL == "" || c.RabbitMQ.Queue == "") {
		return fmt.Errorf("%w: rabbitmq.url and rabbitmq.queue are required when rabbitmq is enabled", ErrInvalidConfig)
	}
	return c.Scheduling.Validate()
}

// Validate проверяет политику расписания
func (s SchedulingConfig) Validate() error {
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.slot_duration_minutes must be positive", ErrInvalidConfig)
	}
	if s.LeadTimeMinutes < 0 {
		return fmt.Errorf("%w: scheduling.lead_time_minutes must not be negative", ErrInvalidConfig)
	}

	open, err := types.NewTimeStringFromString(s.DefaultOpenTime)
	if err != nil {
		return fmt.Errorf("%w: scheduling.default_open_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(s.DefaultCloseTime)
	if err != nil {
		return fmt.Errorf("%w: scheduling.default_close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closing) {
		return fmt.Errorf("%w: scheduling default open time must be before close time", ErrInvalidConfig)
	}

	if _, err := s.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-booking",
		},
		Auth: AuthConfig{
			AdminRole: "admin",
		},
		Redis: RedisConfig{
			TTL: 30,
		},
		RabbitMQ: RabbitMQConfig{
			Queue: "reservation_events",
		},
		Scheduling: SchedulingConfig{
			Timezone:            domain.DefaultTimezone,
			SlotDurationMinutes: int(domain.DefaultSlotDuration / time.Minute),
			LeadTimeMinutes:     int(domain.DefaultLeadTime / time.Minute),
			DefaultOpenTime:     string(domain.DefaultOpenTime),
			DefaultCloseTime:    string(domain.DefaultCloseTime),
		},
	}
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.RabbitMQ.URL, "RABBITMQ_URL")
	setString(&cfg.Logs.Level, "LOG_LEVEL")
	setInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
