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

const guardianBody = `{
	"response": {
		"results": [
			{
				"webTitle": "Tech giants face new regulation",
				"webPublicationDate": "2024-09-16T12:00:00Z",
				"fields": {
					"bodyText": "Regulators announced new rules today.",
					"byline": "Hannah Al-Othman and Dan Milmo"
				}
			},
			{
				"webTitle": "Quiet launch without details",
				"webPublicationDate": "2024-09-15T10:00:00Z",
				"fields": {
					"bodyText": "A product launched with little fanfare."
				}
			},
			{
				"webTitle": "Headline only",
				"webPublicationDate": "2024-09-14T09:00:00Z",
				"fields": {
					"bodyText": ""
				}
			}
		]
	}
}`

func TestGuardianFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api-key"))
		assert.Equal(t, "all", r.URL.Query().Get("show-fields"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(guardianBody))
	}))
	defer server.Close()

	p := NewGuardianProvider(config.ProviderConfig{BaseURL: server.URL, Key: "test-key"})
	articles, err := p.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Tech giants face new regulation", first.Title)
	assert.Equal(t, "Regulators announced new rules today.", first.Content)
	assert.Equal(t, "Hannah Al-Othman and Dan Milmo", first.Author)
	assert.Equal(t, "Technology", first.Category)
	assert.Equal(t, "The Guardian", first.Source)
	assert.Equal(t, "2024-09-16 12:00:00", first.PublishedAt.Format(model.TimeFormat))

	// byline缺失时保持空串,不用Unknown
	assert.Equal(t, "", articles[1].Author)
}

func TestGuardianFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	p := NewGuardianProvider(config.ProviderConfig{BaseURL: server.URL, Key: "bad-key"})
	_, err := p.Fetch(context.Background())
	assert.Error(t, err)
}
