package service

import (
	"context"
	"errors"
	"testing"

	"tubegem/internal/gateway/youtube"
	"tubegem/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAPI реализует PlaylistAPI для тестов
type stubAPI struct {
	playlist  youtube.Playlist
	playlists []youtube.Playlist
	pageInfo  youtube.PageInfo
	err       error

	lastQuery string
	lastID    string
	lastOpts  youtube.Query
}

func (s *stubAPI) Get(_ context.Context, playlistID string, opts youtube.Query) (youtube.Playlist, error) {
	s.lastID = playlistID
	s.lastOpts = opts
	return s.playlist, s.err
}

func (s *stubAPI) Search(_ context.Context, query string, opts youtube.Query) ([]youtube.Playlist, youtube.PageInfo, error) {
	s.lastQuery = query
	s.lastOpts = opts
	return s.playlists, s.pageInfo, s.err
}

func (s *stubAPI) GetItems(_ context.Context, playlistID string, opts youtube.Query) ([]youtube.Playlist, youtube.PageInfo, error) {
	s.lastID = playlistID
	s.lastOpts = opts
	return s.playlists, s.pageInfo, s.err
}

// stubRepo реализует SavedPlaylistRepository в памяти
type stubRepo struct {
	saved   []model.SavedPlaylist
	created []*model.SavedPlaylist
	deleted []string
}

func (r *stubRepo) Create(playlist *model.SavedPlaylist) error {
	r.created = append(r.created, playlist)
	r.saved = append(r.saved, *playlist)
	return nil
}

func (r *stubRepo) GetByChatID(chatID int64) ([]model.SavedPlaylist, error) {
	var result []model.SavedPlaylist
	for _, p := range r.saved {
		if p.ChatID == chatID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *stubRepo) GetByChatAndPlaylist(chatID int64, playlistID string) (*model.SavedPlaylist, error) {
	for i := range r.saved {
		if r.saved[i].ChatID == chatID && r.saved[i].PlaylistID == playlistID {
			return &r.saved[i], nil
		}
	}
	return nil, nil
}

func (r *stubRepo) DeleteByChatAndPlaylist(_ int64, playlistID string) error {
	r.deleted = append(r.deleted, playlistID)
	return nil
}

func newTestService(api PlaylistAPI, repo model.SavedPlaylistRepository) *PlaylistService {
	return NewPlaylistService(api, repo, zap.NewNop())
}

func TestLookup(t *testing.T) {
	api := &stubAPI{playlist: youtube.Playlist{PlaylistID: "PL1", Title: "Mix"}}
	service := newTestService(api, &stubRepo{})

	playlist, err := service.Lookup(context.Background(), "PL1")
	require.NoError(t, err)
	assert.Equal(t, "Mix", playlist.Title)
	assert.Equal(t, "PL1", api.lastID)
}

func TestLookup_ExtractsIDFromURL(t *testing.T) {
	api := &stubAPI{playlist: youtube.Playlist{PlaylistID: "PLabc123"}}
	service := newTestService(api, &stubRepo{})

	_, err := service.Lookup(context.Background(), "https://www.youtube.com/playlist?list=PLabc123")
	require.NoError(t, err)
	assert.Equal(t, "PLabc123", api.lastID)
}

func TestLookup_EmptyID(t *testing.T) {
	service := newTestService(&stubAPI{}, &stubRepo{})

	_, err := service.Lookup(context.Background(), "   ")
	assert.Error(t, err)
}

func TestSearch_PageTokenPassthrough(t *testing.T) {
	api := &stubAPI{pageInfo: youtube.PageInfo{}}
	service := newTestService(api, &stubRepo{})

	_, _, err := service.Search(context.Background(), "jazz", "TOKEN")
	require.NoError(t, err)

	assert.Equal(t, "jazz", api.lastQuery)
	assert.Equal(t, "TOKEN", api.lastOpts["pageToken"])
}

func TestSearch_NoPageToken(t *testing.T) {
	api := &stubAPI{pageInfo: youtube.PageInfo{}}
	service := newTestService(api, &stubRepo{})

	_, _, err := service.Search(context.Background(), "jazz", "")
	require.NoError(t, err)

	_, hasToken := api.lastOpts["pageToken"]
	assert.False(t, hasToken)
}

func TestSearch_EmptyQuery(t *testing.T) {
	service := newTestService(&stubAPI{}, &stubRepo{})

	_, _, err := service.Search(context.Background(), "  ", "")
	assert.Error(t, err)
}

func TestItems_WrapsClientError(t *testing.T) {
	apiErr := errors.New("boom")
	service := newTestService(&stubAPI{err: apiErr}, &stubRepo{})

	_, _, err := service.Items(context.Background(), "PL1", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
}

func TestSave(t *testing.T) {
	api := &stubAPI{playlist: youtube.Playlist{
		PlaylistID:   "PL1",
		Title:        "Mix",
		ChannelTitle: "Channel",
		Etag:         "etag-1",
	}}
	repo := &stubRepo{}
	service := newTestService(api, repo)

	saved, err := service.Save(context.Background(), 100, "PL1")
	require.NoError(t, err)

	assert.Equal(t, "Mix", saved.Title)
	assert.Equal(t, int64(100), saved.ChatID)
	require.Len(t, repo.created, 1)
}

func TestSave_Idempotent(t *testing.T) {
	api := &stubAPI{playlist: youtube.Playlist{PlaylistID: "PL1", Title: "Mix"}}
	repo := &stubRepo{}
	service := newTestService(api, repo)

	_, err := service.Save(context.Background(), 100, "PL1")
	require.NoError(t, err)

	// Повторное сохранение не создает дубликат
	_, err = service.Save(context.Background(), 100, "PL1")
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestSave_APIErrorNotSaved(t *testing.T) {
	apiErr := errors.New("not found")
	repo := &stubRepo{}
	service := newTestService(&stubAPI{err: apiErr}, repo)

	_, err := service.Save(context.Background(), 100, "PL1")
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestForget(t *testing.T) {
	repo := &stubRepo{}
	service := newTestService(&stubAPI{}, repo)

	err := service.Forget(100, "PL1")
	require.NoError(t, err)
	assert.Equal(t, []string{"PL1"}, repo.deleted)
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Голый идентификатор",
			input:    "PLabc123",
			expected: "PLabc123",
		},
		{
			name:     "Ссылка на плейлист",
			input:    "https://www.youtube.com/playlist?list=PLabc123",
			expected: "PLabc123",
		},
		{
			name:     "Ссылка на видео внутри плейлиста",
			input:    "https://youtube.com/watch?v=xyz&list=PLabc123&index=2",
			expected: "PLabc123",
		},
		{
			name:     "Ссылка без list",
			input:    "https://www.youtube.com/watch?v=xyz",
			expected: "",
		},
		{
			name:     "Пробелы по краям",
			input:    "  PLabc123  ",
			expected: "PLabc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPlaylistID(tt.input))
		})
	}
}
