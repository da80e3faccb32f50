package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/service"
)

type Scheduler struct {
	cron         *cron.Cron
	ingest       *service.IngestService
	config       config.CronConfig
	logger       *slog.Logger
	fetchEntryID cron.EntryID
}

func NewScheduler(ingest *service.IngestService, cfg config.CronConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		ingest: ingest,
		config: cfg,
		logger: logger,
	}
}

func (s *Scheduler) Start() {
	// 定时抓取任务
	s.fetchEntryID, _ = s.cron.AddFunc(s.config.FetchInterval, func() {
		s.logger.Info("定时抓取开始")
		s.ingest.Run(context.Background())
	})

	s.cron.Start()
	s.logger.Info("定时任务已启动", "fetch_interval", s.config.FetchInterval)
}

// GetNextFetchTime 获取下次抓取时间
func (s *Scheduler) GetNextFetchTime() time.Time {
	entry := s.cron.Entry(s.fetchEntryID)
	return entry.Next
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
