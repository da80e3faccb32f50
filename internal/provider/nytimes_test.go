package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanif-mianjee/news-aggregator/config"
	"github.com/hanif-mianjee/news-aggregator/internal/model"
)

const nyTimesBody = `{
	"results": [
		{
			"title": "Startups bet on robotics",
			"abstract": "A wave of robotics startups is attracting funding.",
			"byline": "By Jane Doe",
			"published_date": "2024-09-16T12:00:00-04:00"
		},
		{
			"title": "Empty abstract",
			"abstract": "",
			"byline": "By John Roe",
			"published_date": "2024-09-15T10:00:00-04:00"
		}
	]
}`

func TestNYTimesFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/svc/topstories/v2/technology.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(nyTimesBody))
	}))
	defer server.Close()

	p := NewNYTimesProvider(config.ProviderConfig{BaseURL: server.URL, Key: "test-key"})
	articles, err := p.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 1)

	first := articles[0]
	assert.Equal(t, "Startups bet on robotics", first.Title)
	assert.Equal(t, "A wave of robotics startups is attracting funding.", first.Content)
	assert.Equal(t, "By Jane Doe", first.Author)
	assert.Equal(t, "Technology", first.Category)
	assert.Equal(t, "New York Times", first.Source)
	// 带时区偏移的时间也要能归一化
	assert.Equal(t, "2024-09-16 12:00:00", first.PublishedAt.Format(model.TimeFormat))
}

func TestNYTimesFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewNYTimesProvider(config.ProviderConfig{BaseURL: server.URL, Key: "bad-key"})
	_, err := p.Fetch(context.Background())
	assert.Error(t, err)
}
