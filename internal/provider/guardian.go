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

// GuardianProvider 对接 The Guardian 的 content search 接口
type GuardianProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type guardianResponse struct {
	Response struct {
		Results []struct {
			WebTitle           string `json:"webTitle"`
			WebPublicationDate string `json:"webPublicationDate"`
			Fields             struct {
				BodyText string `json:"bodyText"`
				Byline   string `json:"byline"`
			} `json:"fields"`
		} `json:"results"`
	} `json:"response"`
}

func NewGuardianProvider(cfg config.ProviderConfig) *GuardianProvider {
	return &GuardianProvider{
		client:  &http.Client{},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.Key,
	}
}

func (p *GuardianProvider) Name() string {
	return "The Guardian"
}

func (p *GuardianProvider) Fetch(ctx context.Context) ([]model.Article, error) {
	params := url.Values{}
	params.Set("api-key", p.apiKey)
	params.Set("section", "technology")
	params.Set("page-size", "10")
	params.Set("show-fields", "all")

	req, err := http.NewRequestWithContext(ctx, "GET",
		p.baseURL+"/search?"+params.Encode(), nil)
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

	var data guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	articles := make([]model.Article, 0, len(data.Response.Results))
	for _, item := range data.Response.Results {
		if item.WebTitle == "" || item.Fields.BodyText == "" {
			continue
		}

		articles = append(articles, model.Article{
			Title:       item.WebTitle,
			Content:     item.Fields.BodyText,
			Author:      item.Fields.Byline,
			Category:    "Technology",
			Source:      "The Guardian",
			PublishedAt: parsePublished(item.WebPublicationDate),
		})
	}

	return articles, nil
}
