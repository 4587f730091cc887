// Package youtube реализует клиент для работы с YouTube Data API.
package youtube

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// defaultMaxResults размер страницы по умолчанию для списочных запросов
const defaultMaxResults = 20

// Client представляет клиент для работы с плейлистами YouTube
type Client struct {
	gateway Gateway
	apiKey  string
	logger  *zap.Logger
}

// NewClient создает новый YouTube клиент
func NewClient(gateway Gateway, apiKey string, logger *zap.Logger) (*Client, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	return &Client{
		gateway: gateway,
		apiKey:  apiKey,
		logger:  logger,
	}, nil
}

// Get возвращает один плейлист по его идентификатору.
// Ожидается ровно один элемент items в ответе; иначе возвращается
// ShapeError с телом ответа. Ошибки шлюза возвращаются как есть.
func (c *Client) Get(ctx context.Context, playlistID string, opts Query) (Playlist, error) {
	if playlistID == "" {
		return Playlist{}, fmt.Errorf("playlist ID is required")
	}

	query := c.buildQuery(Query{
		"key":  c.apiKey,
		"id":   playlistID,
		"part": "snippet",
	}, opts)

	body, err := c.gateway.Get(ctx, "/playlists", query)
	if err != nil {
		return Playlist{}, err
	}

	items, ok := body["items"].([]any)
	if !ok || len(items) != 1 {
		c.logger.Debug("Playlist lookup returned unexpected items count",
			zap.String("playlist_id", playlistID))
		return Playlist{}, &ShapeError{Missing: "items", Payload: body}
	}

	item, ok := items[0].(map[string]any)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "items[0]", Payload: body}
	}

	// Собираем документ формата "playlist": snippet и etag из элемента,
	// идентификатор — из аргумента запроса
	doc := map[string]any{
		"etag":    item["etag"],
		"snippet": item["snippet"],
		"id":      map[string]any{"playlistId": playlistID},
	}

	playlist, err := parsePlaylist(doc)
	if err != nil {
		return Playlist{}, &ShapeError{Missing: shapeMissing(err), Payload: body}
	}

	c.logger.Debug("Playlist fetched",
		zap.String("playlist_id", playlistID),
		zap.String("title", playlist.Title))

	return playlist, nil
}

// Search ищет плейлисты по текстовому запросу.
// Каждый элемент items разбирается правилом "playlist"; первый же
// неразобранный элемент прерывает всю операцию без частичного результата.
func (c *Client) Search(ctx context.Context, searchQuery string, opts Query) ([]Playlist, PageInfo, error) {
	query := c.buildQuery(Query{
		"key":        c.apiKey,
		"part":       "snippet",
		"maxResults": defaultMaxResults,
		"q":          searchQuery,
	}, opts)

	body, err := c.gateway.Get(ctx, "/search", query)
	if err != nil {
		return nil, nil, err
	}

	playlists, err := collectPlaylists(body, parsePlaylist)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Debug("Playlist search completed",
		zap.String("query", searchQuery),
		zap.Int("count", len(playlists)))

	return playlists, pageInfoFrom(body), nil
}

// GetItems возвращает элементы плейлиста.
// Каждый элемент items разбирается правилом "songs"; семантика ошибок
// идентична Search.
func (c *Client) GetItems(ctx context.Context, playlistID string, opts Query) ([]Playlist, PageInfo, error) {
	if playlistID == "" {
		return nil, nil, fmt.Errorf("playlist ID is required")
	}

	query := c.buildQuery(Query{
		"key":        c.apiKey,
		"part":       "snippet",
		"maxResults": defaultMaxResults,
		"playlistId": playlistID,
	}, opts)

	body, err := c.gateway.Get(ctx, "/playlistItems", query)
	if err != nil {
		return nil, nil, err
	}

	playlists, err := collectPlaylists(body, parsePlaylistItem)
	if err != nil {
		return nil, nil, err
	}

	c.logger.Debug("Playlist items fetched",
		zap.String("playlist_id", playlistID),
		zap.Int("count", len(playlists)))

	return playlists, pageInfoFrom(body), nil
}

// buildQuery сливает параметры запроса: значения caller-опций
// перекрывают значения по умолчанию, маркер type=playlist добавляется
// последним и перекрыть его нельзя
func (c *Client) buildQuery(defaults Query, opts Query) Query {
	query := make(Query, len(defaults)+len(opts)+1)

	for key, value := range defaults {
		query[key] = value
	}
	for key, value := range opts {
		query[key] = value
	}

	query["type"] = "playlist"

	return query
}

// shapeMissing возвращает отсутствующий ключ из ShapeError
func shapeMissing(err error) string {
	if shapeErr, ok := err.(*ShapeError); ok {
		return shapeErr.Missing
	}
	return ""
}
