// Package repository содержит репозитории для работы с базой данных.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tubegem/internal/model"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// SavedPlaylistRepository реализует интерфейс для работы с сохраненными плейлистами
type SavedPlaylistRepository struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewSavedPlaylistRepository создает новый репозиторий сохраненных плейлистов
func NewSavedPlaylistRepository(db *bun.DB, logger *zap.Logger) *SavedPlaylistRepository {
	return &SavedPlaylistRepository{
		db:     db,
		logger: logger,
	}
}

// Create создает запись о сохраненном плейлисте
func (r *SavedPlaylistRepository) Create(playlist *model.SavedPlaylist) error {
	ctx := context.Background()

	_, err := r.db.NewInsert().
		Model(playlist).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to create saved playlist: %w", err)
	}

	r.logger.Debug("Saved playlist created",
		zap.Int64("chat_id", playlist.ChatID),
		zap.String("playlist_id", playlist.PlaylistID))

	return nil
}

// GetByChatID возвращает все сохраненные плейлисты чата
func (r *SavedPlaylistRepository) GetByChatID(chatID int64) ([]model.SavedPlaylist, error) {
	ctx := context.Background()
	var playlists []model.SavedPlaylist

	err := r.db.NewSelect().
		Model(&playlists).
		Where("chat_id = ?", chatID).
		Order("saved_at ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get saved playlists: %w", err)
	}

	return playlists, nil
}

// GetByChatAndPlaylist возвращает сохраненный плейлист чата или nil, если его нет
func (r *SavedPlaylistRepository) GetByChatAndPlaylist(chatID int64, playlistID string) (*model.SavedPlaylist, error) {
	ctx := context.Background()
	playlist := new(model.SavedPlaylist)

	err := r.db.NewSelect().
		Model(playlist).
		Where("chat_id = ?", chatID).
		Where("playlist_id = ?", playlistID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get saved playlist: %w", err)
	}

	return playlist, nil
}

// DeleteByChatAndPlaylist удаляет сохраненный плейлист чата
func (r *SavedPlaylistRepository) DeleteByChatAndPlaylist(chatID int64, playlistID string) error {
	ctx := context.Background()

	_, err := r.db.NewDelete().
		Model((*model.SavedPlaylist)(nil)).
		Where("chat_id = ?", chatID).
		Where("playlist_id = ?", playlistID).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete saved playlist: %w", err)
	}

	r.logger.Debug("Saved playlist deleted",
		zap.Int64("chat_id", chatID),
		zap.String("playlist_id", playlistID))

	return nil
}
