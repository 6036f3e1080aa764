package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Dashboard DashboardConfig
}

type AppConfig struct {
	Port     string
	Env      string
	BaseURL  string
	LogLevel string
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type DashboardConfig struct {
	Enabled bool
	Pages   []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "hospitaldesk.db")
	viper.SetDefault("DASHBOARD_ENABLED", true)
	viper.SetDefault("DASHBOARD_PAGES", "index,patients,appointments,billing")

	// The .env file is optional; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			BaseURL:  viper.GetString("APP_BASE_URL"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Path:     viper.GetString("DB_PATH"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Dashboard: DashboardConfig{
			Enabled: viper.GetBool("DASHBOARD_ENABLED"),
			Pages:   splitPages(viper.GetString("DASHBOARD_PAGES")),
		},
	}

	return config, nil
}

func splitPages(raw string) []string {
	var pages []string
	for _, page := range strings.Split(raw, ",") {
		page = strings.TrimSpace(page)
		if page != "" {
			pages = append(pages, page)
		}
	}
	return pages
}
