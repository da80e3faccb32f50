package service

import (
	"github.com/hanif-mianjee/news-aggregator/internal/store"
)

// FeedService 根据用户偏好组装个性化文章流
type FeedService struct {
	articles    *store.ArticleStore
	preferences *store.PreferenceStore
}

func NewFeedService(articles *store.ArticleStore, preferences *store.PreferenceStore) *FeedService {
	return &FeedService{
		articles:    articles,
		preferences: preferences,
	}
}

// GetNewsFeed 查询用户的订阅流,没设置过偏好时返回全量文章
func (s *FeedService) GetNewsFeed(userID uint, page int) (*store.Page, error) {
	preference, err := s.preferences.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	if preference == nil {
		return s.articles.List(page)
	}

	return s.articles.FilterByMembership(preference.Sources, preference.Categories, preference.Authors, page)
}
