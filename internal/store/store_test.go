package store

import (
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

	// 每个测试一个独立的内存库
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Article{}, &model.User{}, &model.UserPreference{}))
	return db
}

func makeArticle(title, content, author, category, source, published string) model.Article {
	t, _ := time.Parse(model.TimeFormat, published)
	return model.Article{
		Title:       title,
		Content:     content,
		Author:      author,
		Category:    category,
		Source:      source,
		PublishedAt: model.NewLocalTime(t),
	}
}

func countArticles(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Article{}).Count(&count).Error)
	return count
}
