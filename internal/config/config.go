package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Session SessionConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Driver string // sqlite 或 postgres
	DSN    string
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

// Load 載入應用程式配置
// 所有設定都有預設值，配置文件不存在時直接使用預設值啟動
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("db.driver", "sqlite")
	viper.SetDefault("db.dsn", "employees.db")
	viper.SetDefault("session.secret", "yoursecretkey")
	viper.SetDefault("session.ttlhours", 240)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
