package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Symbol   string `yaml:"symbol"`
	Interval string `yaml:"interval"` // 100ms или 10ms

	MEXC struct {
		WsURL   string `yaml:"ws_url"`
		RestURL string `yaml:"rest_url"`
	} `yaml:"mexc"`

	Metrics struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`

	Redis struct {
		Addr     string `yaml:"addr"`
		DB       int    `yaml:"db"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"redis"`

	Timings struct {
		PingIntervalSec int `yaml:"ping_interval_sec"`
	} `yaml:"timings"`
}

// Load читает yaml-конфиг; отсутствующий файл — не ошибка, работаем на дефолтах.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var c Config
	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if c.Symbol == "" {
		c.Symbol = "JUMPUSDT"
	}
	if c.Interval == "" {
		c.Interval = "100ms"
	}
	if c.MEXC.WsURL == "" {
		c.MEXC.WsURL = "wss://wbs-api.mexc.com/ws"
	}
	if c.MEXC.RestURL == "" {
		c.MEXC.RestURL = "https://api.mexc.com"
	}
	if c.Timings.PingIntervalSec == 0 {
		c.Timings.PingIntervalSec = 20
	}
	// секреты в yaml не храним
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}

	c.Symbol = strings.ToUpper(strings.TrimSpace(c.Symbol))
	return &c, nil
}

// Channel собирает имя push-канала: символ обязан быть в верхнем регистре.
func (c *Config) Channel() string {
	return "spot@public.aggre.bookTicker.v3.api.pb@" + c.Interval + "@" + c.Symbol
}

func (c *Config) PingInterval() time.Duration {
	return time.Duration(c.Timings.PingIntervalSec) * time.Second
}
