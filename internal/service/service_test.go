package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Article{}, &model.User{}, &model.UserPreference{}))
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeArticle(title, content, category, source string) model.Article {
	published, _ := time.Parse(model.TimeFormat, "2024-09-16 12:00:00")
	return model.Article{
		Title:       title,
		Content:     content,
		Author:      "Author Name",
		Category:    category,
		Source:      source,
		PublishedAt: model.NewLocalTime(published),
	}
}

// stubProvider 测试用的假适配器
type stubProvider struct {
	name  string
	items []model.Article
	err   error
}

func (s *stubProvider) Name() string {
	return s.name
}

func (s *stubProvider) Fetch(ctx context.Context) ([]model.Article, error) {
	return s.items, s.err
}
