package provider

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// RSSProvider 通用RSS适配器,每个订阅源一个实例
type RSSProvider struct {
	parser   *gofeed.Parser
	name     string
	url      string
	category string
}

func NewRSSProvider(cfg config.RSSFeedConfig) *RSSProvider {
	return &RSSProvider{
		parser:   gofeed.NewParser(),
		name:     cfg.Name,
		url:      cfg.URL,
		category: cfg.Category,
	}
}

func (p *RSSProvider) Name() string {
	return p.name
}

func (p *RSSProvider) Fetch(ctx context.Context) ([]model.Article, error) {
	parsed, err := p.parser.ParseURLWithContext(p.url, ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Title == "" || item.Description == "" {
			continue
		}

		var author string
		if item.Author != nil {
			author = item.Author.Name
		}

		articles = append(articles, model.Article{
			Title:       item.Title,
			Content:     item.Description,
			Author:      author,
			Category:    p.category,
			Source:      p.name,
			PublishedAt: model.NewLocalTime(p.parseTime(item)),
		})
	}

	return articles, nil
}

func (p *RSSProvider) parseTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	return time.Now()
}
