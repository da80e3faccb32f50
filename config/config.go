package config

import (
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cron      CronConfig      `yaml:"cron"`
	Auth      AuthConfig      `yaml:"auth"`
	Providers ProvidersConfig `yaml:"providers"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type CronConfig struct {
	FetchInterval string `yaml:"fetch_interval"` // 文章抓取间隔
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type ProvidersConfig struct {
	NewsAPI  ProviderConfig  `yaml:"news_api"`
	Guardian ProviderConfig  `yaml:"guardian"`
	NYTimes  ProviderConfig  `yaml:"nytimes"`
	RSS      []RSSFeedConfig `yaml:"rss"`
}

type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
}

type RSSFeedConfig struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
}

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	// 默认配置
	cfg := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Path: "data/news.db",
		},
		Cron: CronConfig{
			FetchInterval: "0 * * * *", // 每小时
		},
		Auth: AuthConfig{
			JWTSecret:     "change-me",
			TokenTTLHours: 72,
		},
		Providers: ProvidersConfig{
			NewsAPI:  ProviderConfig{BaseURL: "https://newsapi.org"},
			Guardian: ProviderConfig{BaseURL: "https://content.guardianapis.com"},
			NYTimes:  ProviderConfig{BaseURL: "https://api.nytimes.com"},
		},
	}

	// 如果配置文件存在,读取配置
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else {
		slog.Info("配置文件不存在, 使用默认配置", "path", configPath)
	}

	// 环境变量覆盖配置
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		cfg.Providers.NewsAPI.Key = key
	}

	if key := os.Getenv("GUARDIAN_API_KEY"); key != "" {
		cfg.Providers.Guardian.Key = key
	}

	if key := os.Getenv("NYTIMES_API_KEY"); key != "" {
		cfg.Providers.NYTimes.Key = key
	}

	return cfg, nil
}

// GetServerAddress 获取服务器监听地址
func (c *Config) GetServerAddress() string {
	// 如果端口是纯数字,加上冒号前缀
	if _, err := strconv.Atoi(c.Server.Port); err == nil {
		return ":" + c.Server.Port
	}
	return c.Server.Port
}
