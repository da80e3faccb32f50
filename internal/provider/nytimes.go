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

// NYTimesProvider 对接纽约时报的 top stories 接口
type NYTimesProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type nyTimesResponse struct {
	Results []struct {
		Title         string `json:"title"`
		Abstract      string `json:"abstract"`
		Byline        string `json:"byline"`
		PublishedDate string `json:"published_date"`
	} `json:"results"`
}

func NewNYTimesProvider(cfg config.ProviderConfig) *NYTimesProvider {
	return &NYTimesProvider{
		client:  &http.Client{},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.Key,
	}
}

func (p *NYTimesProvider) Name() string {
	return "New York Times"
}

func (p *NYTimesProvider) Fetch(ctx context.Context) ([]model.Article, error) {
	params := url.Values{}
	params.Set("api-key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET",
		p.baseURL+"/svc/topstories/v2/technology.json?"+params.Encode(), nil)
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

	var data nyTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	articles := make([]model.Article, 0, len(data.Results))
	for _, item := range data.Results {
		if item.Title == "" || item.Abstract == "" {
			continue
		}

		articles = append(articles, model.Article{
			Title:       item.Title,
			Content:     item.Abstract,
			Author:      item.Byline,
			Category:    "Technology",
			Source:      "New York Times",
			PublishedAt: parsePublished(item.PublishedDate),
		})
	}

	return articles, nil
}
