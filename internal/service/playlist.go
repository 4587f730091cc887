// Package service содержит бизнес-логику приложения.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tubegem/internal/gateway/youtube"
	"tubegem/internal/model"

	"go.uber.org/zap"
)

// PlaylistService содержит бизнес-логику для работы с плейлистами
type PlaylistService struct {
	client    PlaylistAPI
	savedRepo model.SavedPlaylistRepository
	logger    *zap.Logger
}

var _ PlaylistServiceInterface = (*PlaylistService)(nil)

// NewPlaylistService создает новый сервис плейлистов
func NewPlaylistService(client PlaylistAPI, savedRepo model.SavedPlaylistRepository, logger *zap.Logger) *PlaylistService {
	return &PlaylistService{
		client:    client,
		savedRepo: savedRepo,
		logger:    logger,
	}
}

// Lookup возвращает один плейлист по идентификатору или URL
func (s *PlaylistService) Lookup(ctx context.Context, playlistID string) (youtube.Playlist, error) {
	playlistID = ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return youtube.Playlist{}, fmt.Errorf("playlist ID is empty")
	}

	playlist, err := s.client.Get(ctx, playlistID, nil)
	if err != nil {
		return youtube.Playlist{}, fmt.Errorf("failed to get playlist %s: %w", playlistID, err)
	}

	return playlist, nil
}

// Search ищет плейлисты по текстовому запросу.
// Непустой pageToken запрашивает соответствующую страницу результатов.
func (s *PlaylistService) Search(ctx context.Context, query, pageToken string) ([]youtube.Playlist, youtube.PageInfo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil, fmt.Errorf("search query is empty")
	}

	opts := youtube.Query{}
	if pageToken != "" {
		opts["pageToken"] = pageToken
	}

	playlists, pageInfo, err := s.client.Search(ctx, query, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search playlists: %w", err)
	}

	s.logger.Info("Playlist search completed",
		zap.String("query", query),
		zap.Int("count", len(playlists)))

	return playlists, pageInfo, nil
}

// Items возвращает элементы плейлиста.
// Непустой pageToken запрашивает соответствующую страницу результатов.
func (s *PlaylistService) Items(ctx context.Context, playlistID, pageToken string) ([]youtube.Playlist, youtube.PageInfo, error) {
	playlistID = ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return nil, nil, fmt.Errorf("playlist ID is empty")
	}

	opts := youtube.Query{}
	if pageToken != "" {
		opts["pageToken"] = pageToken
	}

	items, pageInfo, err := s.client.GetItems(ctx, playlistID, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	s.logger.Info("Playlist items fetched",
		zap.String("playlist_id", playlistID),
		zap.Int("count", len(items)))

	return items, pageInfo, nil
}

// Save сохраняет плейлист в избранное чата.
// Повторное сохранение того же плейлиста возвращает существующую запись.
func (s *PlaylistService) Save(ctx context.Context, chatID int64, playlistID string) (*model.SavedPlaylist, error) {
	playlistID = ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return nil, fmt.Errorf("playlist ID is empty")
	}

	existing, err := s.savedRepo.GetByChatAndPlaylist(chatID, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to check saved playlist: %w", err)
	}
	if existing != nil {
		s.logger.Debug("Playlist already saved",
			zap.Int64("chat_id", chatID),
			zap.String("playlist_id", playlistID))
		return existing, nil
	}

	// Проверяем плейлист через API перед сохранением
	playlist, err := s.client.Get(ctx, playlistID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist %s: %w", playlistID, err)
	}

	saved := &model.SavedPlaylist{
		ChatID:       chatID,
		PlaylistID:   playlist.PlaylistID,
		Title:        playlist.Title,
		ChannelTitle: playlist.ChannelTitle,
		Etag:         playlist.Etag,
		SavedAt:      time.Now(),
	}

	if err := s.savedRepo.Create(saved); err != nil {
		return nil, fmt.Errorf("failed to save playlist: %w", err)
	}

	s.logger.Info("Playlist saved",
		zap.Int64("chat_id", chatID),
		zap.String("playlist_id", playlistID),
		zap.String("title", playlist.Title))

	return saved, nil
}

// Saved возвращает все сохраненные плейлисты чата
func (s *PlaylistService) Saved(chatID int64) ([]model.SavedPlaylist, error) {
	playlists, err := s.savedRepo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved playlists: %w", err)
	}

	return playlists, nil
}

// Forget удаляет плейлист из избранного чата
func (s *PlaylistService) Forget(chatID int64, playlistID string) error {
	playlistID = ExtractPlaylistID(playlistID)
	if playlistID == "" {
		return fmt.Errorf("playlist ID is empty")
	}

	if err := s.savedRepo.DeleteByChatAndPlaylist(chatID, playlistID); err != nil {
		return fmt.Errorf("failed to forget playlist: %w", err)
	}

	s.logger.Info("Playlist forgotten",
		zap.Int64("chat_id", chatID),
		zap.String("playlist_id", playlistID))

	return nil
}

// ExtractPlaylistID извлекает идентификатор плейлиста из URL.
// Поддерживаются разные форматы:
// https://www.youtube.com/playlist?list=PLabc123
// https://youtube.com/watch?v=xyz&list=PLabc123
// PLabc123
func ExtractPlaylistID(raw string) string {
	raw = strings.TrimSpace(raw)

	if idx := strings.Index(raw, "list="); idx >= 0 {
		id := raw[idx+len("list="):]
		if amp := strings.IndexByte(id, '&'); amp >= 0 {
			id = id[:amp]
		}
		return id
	}

	if strings.Contains(raw, "://") {
		return ""
	}

	return raw
}
