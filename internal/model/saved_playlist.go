// Package model содержит модели данных.
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// SavedPlaylist представляет сохраненный пользователем плейлист
type SavedPlaylist struct {
	bun.BaseModel `bun:"table:tubegem.saved_playlists"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	ChatID       int64     `bun:"chat_id,notnull" json:"chat_id"`
	PlaylistID   string    `bun:"playlist_id,notnull" json:"playlist_id"`
	Title        string    `bun:"title,notnull" json:"title"`
	ChannelTitle string    `bun:"channel_title" json:"channel_title"`
	Etag         string    `bun:"etag" json:"etag"`
	SavedAt      time.Time `bun:"saved_at,notnull,default:current_timestamp" json:"saved_at"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// SavedPlaylistRepository определяет интерфейс для работы с сохраненными плейлистами
type SavedPlaylistRepository interface {
	Create(playlist *SavedPlaylist) error
	GetByChatID(chatID int64) ([]SavedPlaylist, error)
	GetByChatAndPlaylist(chatID int64, playlistID string) (*SavedPlaylist, error)
	DeleteByChatAndPlaylist(chatID int64, playlistID string) error
}
