package config

import (
	"fmt"
	"time"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User         string `yaml:"user" env:"DB_USERNAME" env-default:"postgres"`
	Password     string `yaml:"password" env:"DB_PASSWORD" env-default:"postgres"`
	Database     string `yaml:"database" env:"DB_NAME" env-default:"auth"`
	SSL          bool   `yaml:"ssl" env:"DB_SSL" env-default:"false"`
	MinConn      int    `yaml:"min_conn" env:"DB_MIN_CONN" env-default:"1"`
	MaxConn      int    `yaml:"max_conn" env:"DB_MAX_CONN" env-default:"10"`
	ConnAttempts int    `yaml:"conn_attempts" env:"DB_CONN_ATTEMPTS" env-default:"10"`
	ConnDelay    string `yaml:"conn_delay" env:"DB_CONN_DELAY" env-default:"1s"`
}

func (p *PostgresConfig) sslMode() string {
	if p.SSL {
		return "require"
	}
	return "disable"
}

// GetDSN возвращает строку подключения к PostgreSQL.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.sslMode())
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.sslMode())
}

// GetConnDelay возвращает задержку между попытками подключения к базе данных.
func (p *PostgresConfig) GetConnDelay() time.Duration {
	delay, err := time.ParseDuration(p.ConnDelay)
	if err != nil {
		return time.Second
	}
	return delay
}
