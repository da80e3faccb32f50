package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

type StatusService struct {
	db *gorm.DB
}

type SystemStatus struct {
	// 文章统计
	TotalArticles    int64            `json:"total_articles"`
	ArticlesBySource map[string]int64 `json:"articles_by_source"`

	// 用户统计
	TotalUsers       int64 `json:"total_users"`
	TotalPreferences int64 `json:"total_preferences"`

	// 定时任务信息
	NextFetchTime time.Time `json:"next_fetch_time"`
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{db: db}
}

// GetSystemStatus 获取系统状态
func (s *StatusService) GetSystemStatus() (*SystemStatus, error) {
	status := &SystemStatus{
		ArticlesBySource: make(map[string]int64),
	}

	// 统计文章
	s.db.Model(&model.Article{}).Count(&status.TotalArticles)

	var rows []struct {
		Source string
		Count  int64
	}
	s.db.Model(&model.Article{}).
		Select("source, count(*) as count").
		Group("source").
		Scan(&rows)
	for _, row := range rows {
		status.ArticlesBySource[row.Source] = row.Count
	}

	// 统计用户
	s.db.Model(&model.User{}).Count(&status.TotalUsers)
	s.db.Model(&model.UserPreference{}).Count(&status.TotalPreferences)

	return status, nil
}
