package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanif-mianjee/news-aggregator/internal/store"
)

func TestNewsFeedFiltersByPreference(t *testing.T) {
	db := newTestDB(t)
	articles := store.NewArticleStore(db)
	preferences := store.NewPreferenceStore(db)

	guardian := makeArticle("Guardian story", "content", "Technology", "The Guardian")
	other := makeArticle("Other story", "content", "Technology", "Some Other Source")
	require.NoError(t, articles.Upsert(&guardian))
	require.NoError(t, articles.Upsert(&other))

	_, err := preferences.Upsert(1, store.PreferenceInput{Sources: []string{"The Guardian"}})
	require.NoError(t, err)

	svc := NewFeedService(articles, preferences)
	page, err := svc.GetNewsFeed(1, 1)
	require.NoError(t, err)

	require.EqualValues(t, 1, page.Total)
	assert.Equal(t, "Guardian story", page.Data[0].Title)
}

func TestNewsFeedWithoutPreferences(t *testing.T) {
	db := newTestDB(t)
	articles := store.NewArticleStore(db)
	preferences := store.NewPreferenceStore(db)

	a := makeArticle("A", "content", "Technology", "Wired")
	b := makeArticle("B", "content", "Business", "Bloomberg")
	require.NoError(t, articles.Upsert(&a))
	require.NoError(t, articles.Upsert(&b))

	// 没设置过偏好的用户拿到全量文章
	svc := NewFeedService(articles, preferences)
	page, err := svc.GetNewsFeed(7, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestNewsFeedCombinesPreferenceFields(t *testing.T) {
	db := newTestDB(t)
	articles := store.NewArticleStore(db)
	preferences := store.NewPreferenceStore(db)

	bySource := makeArticle("From Guardian", "content", "Politics", "The Guardian")
	byCategory := makeArticle("Tech story", "content", "Technology", "Bloomberg")
	neither := makeArticle("Sports recap", "content", "Sports", "ESPN")
	require.NoError(t, articles.Upsert(&bySource))
	require.NoError(t, articles.Upsert(&byCategory))
	require.NoError(t, articles.Upsert(&neither))

	_, err := preferences.Upsert(1, store.PreferenceInput{
		Sources:    []string{"The Guardian"},
		Categories: []string{"Technology"},
	})
	require.NoError(t, err)

	// 来源和分类命中任意一个即可
	svc := NewFeedService(articles, preferences)
	page, err := svc.GetNewsFeed(1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}
