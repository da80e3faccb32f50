package provider

import (
	"context"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// Provider 新闻源适配器,负责把外部API的响应转换成统一的Article
type Provider interface {
	// Name 来源名称,用于日志
	Name() string
	// Fetch 抓取并归一化一批文章候选,不直接写库
	Fetch(ctx context.Context) ([]model.Article, error)
}

// Registry 按固定顺序组装启用的适配器,没配置密钥的跳过
func Registry(cfg config.ProvidersConfig) []Provider {
	var providers []Provider

	if cfg.NewsAPI.Key != "" {
		providers = append(providers, NewNewsAPIProvider(cfg.NewsAPI))
	}

	if cfg.Guardian.Key != "" {
		providers = append(providers, NewGuardianProvider(cfg.Guardian))
	}

	if cfg.NYTimes.Key != "" {
		providers = append(providers, NewNYTimesProvider(cfg.NYTimes))
	}

	for _, feed := range cfg.RSS {
		providers = append(providers, NewRSSProvider(feed))
	}

	return providers
}
