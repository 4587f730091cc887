package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playlistDoc() map[string]any {
	return map[string]any{
		"etag": "etag-1",
		"id":   map[string]any{"playlistId": "PL123"},
		"snippet": map[string]any{
			"title":        "Lo-fi Jazz",
			"description":  "Фоновая музыка",
			"channelId":    "UC42",
			"channelTitle": "Jazz Channel",
			"publishedAt":  "2024-01-15T10:00:00Z",
			"thumbnails": map[string]any{
				"default": map[string]any{"url": "https://img.example/default.jpg"},
			},
		},
	}
}

func playlistItemDoc() map[string]any {
	return map[string]any{
		"etag": "etag-2",
		"id":   "ITEM1",
		"kind": "youtube#playlistItem",
		"snippet": map[string]any{
			"title":        "Track One",
			"description":  "Первый трек",
			"channelId":    "UC42",
			"channelTitle": "Jazz Channel",
			"publishedAt":  "2024-02-01T00:00:00Z",
			"playlistId":   "PL123",
			"thumbnails":   map[string]any{},
		},
	}
}

func TestParsePlaylist(t *testing.T) {
	playlist, err := parsePlaylist(playlistDoc())
	require.NoError(t, err)

	assert.Equal(t, "etag-1", playlist.Etag)
	assert.Equal(t, "PL123", playlist.PlaylistID)
	assert.Equal(t, "Lo-fi Jazz", playlist.Title)
	assert.Equal(t, "Jazz Channel", playlist.ChannelTitle)
	assert.Equal(t, "UC42", playlist.ChannelID)
	assert.Equal(t, "Фоновая музыка", playlist.Description)
	assert.Equal(t, "2024-01-15T10:00:00Z", playlist.PublishedAt)
	assert.Contains(t, playlist.Thumbnails, "default")

	// Поля формата "songs" остаются пустыми
	assert.Empty(t, playlist.ID)
	assert.Empty(t, playlist.Kind)
	assert.Empty(t, playlist.ResourceID)
}

func TestParsePlaylist_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		missing string
	}{
		{
			name:    "Нет snippet",
			mutate:  func(doc map[string]any) { delete(doc, "snippet") },
			missing: "snippet",
		},
		{
			name:    "Нет etag",
			mutate:  func(doc map[string]any) { delete(doc, "etag") },
			missing: "etag",
		},
		{
			name:    "Нет id",
			mutate:  func(doc map[string]any) { delete(doc, "id") },
			missing: "id",
		},
		{
			name:    "Нет id.playlistId",
			mutate:  func(doc map[string]any) { doc["id"] = map[string]any{} },
			missing: "id.playlistId",
		},
		{
			name:    "etag не строка",
			mutate:  func(doc map[string]any) { doc["etag"] = 42 },
			missing: "etag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := playlistDoc()
			tt.mutate(doc)

			_, err := parsePlaylist(doc)
			require.Error(t, err)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.missing, shapeErr.Missing)
			// Исходный объект сохраняется в ошибке
			assert.Equal(t, doc, shapeErr.Payload)
		})
	}
}

func TestParsePlaylist_OptionalSnippetFields(t *testing.T) {
	doc := map[string]any{
		"etag":    "etag-1",
		"id":      map[string]any{"playlistId": "PL123"},
		"snippet": map[string]any{},
	}

	playlist, err := parsePlaylist(doc)
	require.NoError(t, err)

	assert.Empty(t, playlist.Title)
	assert.Empty(t, playlist.Description)
	require.NotNil(t, playlist.Thumbnails)
	assert.Empty(t, playlist.Thumbnails)
}

func TestParsePlaylistItem(t *testing.T) {
	playlist, err := parsePlaylistItem(playlistItemDoc())
	require.NoError(t, err)

	assert.Equal(t, "etag-2", playlist.Etag)
	assert.Equal(t, "ITEM1", playlist.ID)
	assert.Equal(t, "youtube#playlistItem", playlist.Kind)
	assert.Equal(t, "Track One", playlist.Title)
	// PlaylistID берется из snippet.playlistId, а не из id
	assert.Equal(t, "PL123", playlist.PlaylistID)
}

func TestParsePlaylistItem_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		missing string
	}{
		{
			name:    "Нет etag",
			mutate:  func(doc map[string]any) { delete(doc, "etag") },
			missing: "etag",
		},
		{
			name:    "Нет id",
			mutate:  func(doc map[string]any) { delete(doc, "id") },
			missing: "id",
		},
		{
			name:    "Нет kind",
			mutate:  func(doc map[string]any) { delete(doc, "kind") },
			missing: "kind",
		},
		{
			name:    "Нет snippet",
			mutate:  func(doc map[string]any) { delete(doc, "snippet") },
			missing: "snippet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := playlistItemDoc()
			tt.mutate(doc)

			_, err := parsePlaylistItem(doc)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tt.missing, shapeErr.Missing)
		})
	}
}

func TestPageInfoFrom(t *testing.T) {
	body := map[string]any{
		"pageInfo": map[string]any{
			"totalResults":   float64(100),
			"resultsPerPage": float64(20),
		},
		"nextPageToken": "NEXT",
	}

	info := pageInfoFrom(body)

	assert.Equal(t, float64(100), info["totalResults"])
	assert.Equal(t, float64(20), info["resultsPerPage"])
	assert.Equal(t, "NEXT", info.NextPageToken())

	// Отсутствующий токен представлен как nil
	assert.Contains(t, info, "prevPageToken")
	assert.Nil(t, info["prevPageToken"])
	assert.Empty(t, info.PrevPageToken())
}

func TestPageInfoFrom_NoPageInfo(t *testing.T) {
	info := pageInfoFrom(map[string]any{})

	assert.Len(t, info, 2)
	assert.Nil(t, info["nextPageToken"])
	assert.Nil(t, info["prevPageToken"])
}
