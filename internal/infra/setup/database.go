package setup

import (
	"fmt"
	"net"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 支持的数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DBConfig 是建立数据库连接所需的配置
type DBConfig struct {
	Driver   string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	// URL 非空时直接作为 PostgreSQL 连接串使用，忽略上面的各个部分
	URL string

	LogLevel        string // silent | error | warn | info
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN 根据驱动构建连接字符串
func (c DBConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		if c.User == "" {
			return "", fmt.Errorf("database user must be set for mysql")
		}
		mc := mysqldriver.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, c.Port)
		mc.DBName = c.Name
		mc.ParseTime = true
		mc.Loc = time.Local
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil
	case DriverPostgres:
		if c.URL != "" {
			return c.URL, nil
		}
		if c.User == "" {
			return "", fmt.Errorf("database user or DATABASE_URL must be set for postgres")
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.Host, c.User, c.Password, c.Name, c.Port), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Dialector 返回与驱动对应的 GORM Dialector
func Dialector(c DBConfig) (gorm.Dialector, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}
	if c.Driver == DriverPostgres {
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	}
	return mysql.Open(dsn), nil
}

// GormLogLevel 解析 GORM 日志级别，无法识别时使用 warn
func GormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// InitDB 初始化数据库连接并配置连接池
func InitDB(c DBConfig) (*gorm.DB, error) {
	dialector, err := Dialector(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build database dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(GormLogLevel(c.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)

	logrus.WithFields(logrus.Fields{
		"driver":         c.Driver,
		"max_open_conns": c.MaxOpenConns,
		"max_idle_conns": c.MaxIdleConns,
	}).Info("Database connected")
	return db, nil
}

// CloseDB 关闭底层连接池
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
