package service

import (
	"context"

	"tubegem/internal/gateway/youtube"
	"tubegem/internal/model"
)

// PlaylistAPI определяет интерфейс клиента YouTube для сервисов
type PlaylistAPI interface {
	Get(ctx context.Context, playlistID string, opts youtube.Query) (youtube.Playlist, error)
	Search(ctx context.Context, query string, opts youtube.Query) ([]youtube.Playlist, youtube.PageInfo, error)
	GetItems(ctx context.Context, playlistID string, opts youtube.Query) ([]youtube.Playlist, youtube.PageInfo, error)
}

// PlaylistServiceInterface определяет интерфейс для работы с плейлистами
type PlaylistServiceInterface interface {
	Lookup(ctx context.Context, playlistID string) (youtube.Playlist, error)
	Search(ctx context.Context, query, pageToken string) ([]youtube.Playlist, youtube.PageInfo, error)
	Items(ctx context.Context, playlistID, pageToken string) ([]youtube.Playlist, youtube.PageInfo, error)
	Save(ctx context.Context, chatID int64, playlistID string) (*model.SavedPlaylist, error)
	Saved(chatID int64) ([]model.SavedPlaylist, error)
	Forget(chatID int64, playlistID string) error
}
