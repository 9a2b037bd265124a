// Package config assembles the process configuration once at start-up from
// environment variables and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config is the whole application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
}

type ServerConfig struct {
	Port string
	Env  string
	// StrictStatus maps rejections to 400/404 instead of answering 200.
	StrictStatus bool
}

type DatabaseConfig struct {
	Driver   string
	Server   string
	Port     string
	Name     string
	User     string
	Password string
	// DSN overrides every other field when set.
	DSN string
}

type RabbitMQConfig struct {
	URL   string
	Queue string
}

// Load reads configuration with v. Pass viper.New() in tests to keep the
// global instance untouched.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("HTTP_STRICT_STATUS", false)
	v.SetDefault("DB_DRIVER", "sqlserver")
	v.SetDefault("RABBITMQ_QUEUE", "sale_events")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		slog.Debug("no .env file, using environment only", "error", err)
	}
	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:         v.GetString("APP_PORT"),
			Env:          v.GetString("APP_ENV"),
			StrictStatus: v.GetBool("HTTP_STRICT_STATUS"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Server:   v.GetString("DB_SERVER"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_DATABASE"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DSN:      v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
	}

	switch cfg.Database.Driver {
	case "sqlserver", "postgres", "mysql", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlserver, postgres, mysql, sqlite)", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver != "sqlite" && cfg.Database.Server == "" {
		return Config{}, fmt.Errorf("DB_SERVER is required when DATABASE_DSN is not set")
	}
	return cfg, nil
}

// ConnectionString builds the driver-specific DSN from the individual parts.
func (d DatabaseConfig) ConnectionString() string {
	if d.DSN != "" {
		return d.overrideDSN()
	}
	switch d.Driver {
	case "postgres":
		port := d.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			d.Server, d.User, d.Password, d.Name, port)
	case "mysql":
		port := d.Port
		if port == "" {
			port = "3306"
		}
		// clientFoundRows makes RowsAffected count matched rows, like the other drivers.
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			d.User, d.Password, d.Server, port, d.Name)
	case "sqlite":
		name := d.Name
		if name == "" {
			name = "tienda.db"
		}
		return name + "?_foreign_keys=on"
	default:
		return d.sqlserverURL().String()
	}
}

// overrideDSN returns DSN as given, except that a mysql DSN always gets
// clientFoundRows so unchanged rows still count as updated.
func (d DatabaseConfig) overrideDSN() string {
	if d.Driver != "mysql" || strings.Contains(d.DSN, "clientFoundRows=") {
		return d.DSN
	}
	sep := "?"
	if strings.Contains(d.DSN, "?") {
		sep = "&"
	}
	return d.DSN + sep + "clientFoundRows=true"
}

func (d DatabaseConfig) sqlserverURL() *url.URL {
	host := d.Server
	if d.Port != "" {
		host += ":" + d.Port
	}
	u := &url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(d.User, d.Password),
		Host:   host,
	}
	q := url.Values{}
	q.Set("database", d.Name)
	q.Set("TrustServerCertificate", "true")
	u.RawQuery = q.Encode()
	return u
}

// Redacted is ConnectionString with the password masked, for logs.
// URL forms escape the password, so they are masked through net/url.
func (d DatabaseConfig) Redacted() string {
	dsn := d.ConnectionString()
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.User != nil {
		return u.Redacted()
	}
	if d.Password == "" {
		return dsn
	}
	return strings.ReplaceAll(dsn, d.Password, "****")
}
