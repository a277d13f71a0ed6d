// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек портала.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	WHMCS           `yaml:"whmcs"`
	AI              `yaml:"ai"`
	Token           `yaml:"token"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// WHMCS структура для подключения к биллинг-системе.
// При env: local вместо реального API внедряется in-memory заглушка.
type WHMCS struct {
	APIURL     string        `yaml:"api_url" env:"WHMCS_API_URL"`
	Identifier string        `yaml:"identifier" env:"WHMCS_IDENTIFIER"`
	Secret     string        `yaml:"secret" env:"WHMCS_SECRET"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
}

// AI структура для подключения к генеративной модели.
type AI struct {
	APIURL  string        `yaml:"api_url" env:"AI_API_URL"`
	APIKey  string        `yaml:"api_key" env:"AI_API_KEY"`
	Model   string        `yaml:"model" env-default:"gpt-4o-mini"`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
}

// Token структура для выпуска сессионных токенов портала.
type Token struct {
	SecretKey string        `yaml:"secret_key" env:"TOKEN_SECRET_KEY"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс
// при любой ошибке чтения.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"WHMCS:\n"+
			"  APIURL: %s\n"+
			"  Timeout: %s\n"+
			"AI:\n"+
			"  APIURL: %s\n"+
			"  Model: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"Token:\n"+
			"  TokenTTL: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.WHMCS.APIURL,
		c.WHMCS.Timeout,
		c.AI.APIURL,
		c.AI.Model,
		c.AddressRedis,
		c.DB,
		c.TokenTTL,
	)
}
