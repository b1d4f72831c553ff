package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"content-hub/internal/infra/setup"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config 结构体用于存储从环境变量或文件加载的配置
type Config struct {
	DBDriver          string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DatabaseURL       string
	DBLogLevel        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	ServerPort        string
	LogLevel          string
	AppEnv            string // development / production
	CORSAllowedOrigin string
}

// LoadConfig 从环境变量加载配置
func LoadConfig() (*Config, error) {
	// 优先加载 .env 文件 (如果存在)
	_ = godotenv.Load() // 忽略错误，允许只使用环境变量

	cfg := &Config{
		DBDriver:          os.Getenv("DB_DRIVER"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBName:            os.Getenv("DB_NAME"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBLogLevel:        os.Getenv("DB_LOG_LEVEL"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
	}

	// --- 设置默认值 ---
	if cfg.DBDriver == "" {
		cfg.DBDriver = setup.DriverMySQL
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "127.0.0.1"
	}
	if cfg.DBPort == "" {
		if cfg.DBDriver == setup.DriverPostgres {
			cfg.DBPort = "5432"
		} else {
			cfg.DBPort = "3306"
		}
	}
	if cfg.DBName == "" {
		cfg.DBName = "content_hub"
	}
	if cfg.DBLogLevel == "" {
		cfg.DBLogLevel = "warn"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "*"
	}

	var err error
	if cfg.DBMaxOpenConns, err = envInt("DB_MAX_OPEN_CONNS", 50); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = envInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return nil, err
	}
	lifetimeMinutes, err := envInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.DBConnMaxLifetime = time.Duration(lifetimeMinutes) * time.Minute

	// --- 必要检查 ---
	switch cfg.DBDriver {
	case setup.DriverMySQL:
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("environment variable DB_USER must be set")
		}
	case setup.DriverPostgres:
		if cfg.DBUser == "" && cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("environment variable DB_USER or DATABASE_URL must be set")
		}
	default:
		return nil, fmt.Errorf("environment variable DB_DRIVER must be %q or %q, got %q", setup.DriverMySQL, setup.DriverPostgres, cfg.DBDriver)
	}

	// 验证日志级别
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info" // 修正配置值
	}

	return cfg, nil
}

// DB 返回数据库连接配置
func (c *Config) DB() setup.DBConfig {
	return setup.DBConfig{
		Driver:          c.DBDriver,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Host:            c.DBHost,
		Port:            c.DBPort,
		Name:            c.DBName,
		URL:             c.DatabaseURL,
		LogLevel:        c.DBLogLevel,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func envInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("environment variable %s must be a non-negative integer, got %q", key, raw)
	}
	return n, nil
}
