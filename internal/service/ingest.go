package service

import (
	"context"
	"log/slog"

	"github.com/hanif-mianjee/news-aggregator/internal/provider"
	"github.com/hanif-mianjee/news-aggregator/internal/store"
)

// IngestService 依次运行所有适配器,把抓到的文章按标题upsert入库。
// 单个来源失败只记日志,不影响其他来源。
type IngestService struct {
	providers []provider.Provider
	articles  *store.ArticleStore
	logger    *slog.Logger
}

// IngestResult 单次抓取的统计
type IngestResult struct {
	Fetched         int `json:"fetched"`
	Saved           int `json:"saved"`
	Skipped         int `json:"skipped"`
	FailedProviders int `json:"failed_providers"`
}

func NewIngestService(providers []provider.Provider, articles *store.ArticleStore, logger *slog.Logger) *IngestService {
	return &IngestService{
		providers: providers,
		articles:  articles,
		logger:    logger,
	}
}

// Run 执行一轮抓取,只有写库失败才返回错误
func (s *IngestService) Run(ctx context.Context) (*IngestResult, error) {
	result := &IngestResult{}
	var saveErr error

	for _, p := range s.providers {
		items, err := p.Fetch(ctx)
		if err != nil {
			s.logger.Error("抓取失败", "provider", p.Name(), "error", err)
			result.FailedProviders++
			continue
		}

		result.Fetched += len(items)

		for i := range items {
			// 标题或正文为空的记录不入库
			if items[i].Title == "" || items[i].Content == "" {
				result.Skipped++
				continue
			}

			if err := s.articles.Upsert(&items[i]); err != nil {
				s.logger.Error("写入失败", "provider", p.Name(), "title", items[i].Title, "error", err)
				saveErr = err
				continue
			}
			result.Saved++
		}

		s.logger.Info("来源抓取完成", "provider", p.Name(), "articles", len(items))
	}

	s.logger.Info("抓取结束",
		"fetched", result.Fetched,
		"saved", result.Saved,
		"skipped", result.Skipped,
		"failed_providers", result.FailedProviders)

	return result, saveErr
}
