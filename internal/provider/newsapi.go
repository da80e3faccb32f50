package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

// NewsAPIProvider 对接 newsapi.org 的 top-headlines 接口
type NewsAPIProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      *string `json:"author"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		PublishedAt string  `json:"publishedAt"`
	} `json:"articles"`
}

func NewNewsAPIProvider(cfg config.ProviderConfig) *NewsAPIProvider {
	return &NewsAPIProvider{
		client:  &http.Client{},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.Key,
	}
}

func (p *NewsAPIProvider) Name() string {
	return "NewsAPI"
}

func (p *NewsAPIProvider) Fetch(ctx context.Context) ([]model.Article, error) {
	params := url.Values{}
	params.Set("apiKey", p.apiKey)
	params.Set("country", "us")
	params.Set("category", "technology")
	params.Set("pageSize", "10")

	req, err := http.NewRequestWithContext(ctx, "GET",
		p.baseURL+"/v2/top-headlines?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API返回错误: %d", resp.StatusCode)
	}

	var data newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	articles := make([]model.Article, 0, len(data.Articles))
	for _, item := range data.Articles {
		// 没有正文的候选直接丢弃
		if item.Title == "" || item.Description == "" {
			continue
		}

		// NewsAPI的author可能为null,用Unknown兜底
		author := "Unknown"
		if item.Author != nil && *item.Author != "" {
			author = *item.Author
		}

		articles = append(articles, model.Article{
			Title:       item.Title,
			Content:     item.Description,
			Author:      author,
			Category:    "Technology",
			Source:      item.Source.Name,
			PublishedAt: parsePublished(item.PublishedAt),
		})
	}

	return articles, nil
}
