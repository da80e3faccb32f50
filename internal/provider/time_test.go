package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

func TestParsePublished(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2024-09-16T12:00:00Z", "2024-09-16 12:00:00"},
		{"2024-09-16T12:00:00-04:00", "2024-09-16 12:00:00"},
		{"2024-09-16 12:00:00", "2024-09-16 12:00:00"}, // 已符合统一格式,原样通过
		{"2024-09-16", "2024-09-16 00:00:00"},
	}

	for _, c := range cases {
		got := parsePublished(c.raw)
		assert.Equal(t, c.want, got.Format(model.TimeFormat), "raw=%s", c.raw)
	}
}

func TestParsePublishedFallback(t *testing.T) {
	// 解析不了的退回当前时间,不让单条记录拖垮整批
	got := parsePublished("not a date")
	assert.WithinDuration(t, time.Now(), got.Time, time.Minute)
}

func TestRegistryOrder(t *testing.T) {
	cfg := config.ProvidersConfig{
		NewsAPI:  config.ProviderConfig{BaseURL: "http://news", Key: "a"},
		Guardian: config.ProviderConfig{BaseURL: "http://guardian", Key: "b"},
		NYTimes:  config.ProviderConfig{BaseURL: "http://nyt", Key: "c"},
		RSS: []config.RSSFeedConfig{
			{Name: "Hacker Digest", URL: "http://rss", Category: "Technology"},
		},
	}

	providers := Registry(cfg)
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}

	// 适配器按固定顺序注册
	assert.Equal(t, []string{"NewsAPI", "The Guardian", "New York Times", "Hacker Digest"}, names)
}

func TestRegistrySkipsUnconfigured(t *testing.T) {
	cfg := config.ProvidersConfig{
		Guardian: config.ProviderConfig{BaseURL: "http://guardian", Key: "b"},
	}

	providers := Registry(cfg)
	assert.Len(t, providers, 1)
	assert.Equal(t, "The Guardian", providers[0].Name())
}
