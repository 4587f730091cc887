// Package service содержит бизнес-логику приложения.
package service

import (
	"tubegem/internal/storage"

	"go.uber.org/zap"
)

// Services содержит все сервисы приложения
type Services struct {
	Playlist *PlaylistService
}

// NewServices создает все сервисы
func NewServices(db *storage.Postgres, client PlaylistAPI, logger *zap.Logger) *Services {
	playlistService := NewPlaylistService(client, db.GetSavedPlaylistRepository(), logger)

	return &Services{
		Playlist: playlistService,
	}
}
