package youtube

// Правила разбора ответов API. Чистые функции без ввода-вывода:
// каждое правило заранее объявляет обязательные ключи и возвращает
// ShapeError при их отсутствии.

// parsePlaylist разбирает объект формата "playlist" (ответы /playlists
// и /search). Обязательные ключи: snippet, etag, id.playlistId.
// Поля ID, Kind и ResourceID в этом формате не заполняются.
func parsePlaylist(obj map[string]any) (Playlist, error) {
	snippet, ok := obj["snippet"].(map[string]any)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "snippet", Payload: obj}
	}

	etag, ok := obj["etag"].(string)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "etag", Payload: obj}
	}

	id, ok := obj["id"].(map[string]any)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "id", Payload: obj}
	}

	playlistID, ok := id["playlistId"].(string)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "id.playlistId", Payload: obj}
	}

	return Playlist{
		Etag:         etag,
		PlaylistID:   playlistID,
		Title:        stringField(snippet, "title"),
		Thumbnails:   thumbnailsField(snippet),
		PublishedAt:  stringField(snippet, "publishedAt"),
		ChannelTitle: stringField(snippet, "channelTitle"),
		ChannelID:    stringField(snippet, "channelId"),
		Description:  stringField(snippet, "description"),
	}, nil
}

// parsePlaylistItem разбирает объект формата "songs" (ответ
// /playlistItems). Обязательные ключи: etag, id, kind, snippet.
// PlaylistID берется из snippet.playlistId, а не из id.
func parsePlaylistItem(obj map[string]any) (Playlist, error) {
	etag, ok := obj["etag"].(string)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "etag", Payload: obj}
	}

	id, ok := obj["id"].(string)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "id", Payload: obj}
	}

	kind, ok := obj["kind"].(string)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "kind", Payload: obj}
	}

	snippet, ok := obj["snippet"].(map[string]any)
	if !ok {
		return Playlist{}, &ShapeError{Missing: "snippet", Payload: obj}
	}

	return Playlist{
		Etag:         etag,
		ID:           id,
		Kind:         kind,
		ChannelID:    stringField(snippet, "channelId"),
		ChannelTitle: stringField(snippet, "channelTitle"),
		Description:  stringField(snippet, "description"),
		PublishedAt:  stringField(snippet, "publishedAt"),
		ResourceID:   stringField(snippet, "resourceId"),
		Thumbnails:   thumbnailsField(snippet),
		Title:        stringField(snippet, "title"),
		PlaylistID:   stringField(snippet, "playlistId"),
	}, nil
}

// collectPlaylists разбирает каждый элемент items выбранным правилом.
// Первая же ошибка прерывает разбор целиком: частичный результат
// не возвращается.
func collectPlaylists(body map[string]any, parse func(map[string]any) (Playlist, error)) ([]Playlist, error) {
	rawItems, ok := body["items"].([]any)
	if !ok {
		return nil, &ShapeError{Missing: "items", Payload: body}
	}

	playlists := make([]Playlist, 0, len(rawItems))
	for _, raw := range rawItems {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &ShapeError{Missing: "items[]", Payload: body}
		}

		playlist, err := parse(obj)
		if err != nil {
			return nil, err
		}

		playlists = append(playlists, playlist)
	}

	return playlists, nil
}

// pageInfoFrom копирует объект pageInfo из ответа и добавляет ключи
// nextPageToken и prevPageToken (nil, если токен отсутствует)
func pageInfoFrom(body map[string]any) PageInfo {
	info := PageInfo{}

	if raw, ok := body["pageInfo"].(map[string]any); ok {
		for key, value := range raw {
			info[key] = value
		}
	}

	info["nextPageToken"] = body["nextPageToken"]
	info["prevPageToken"] = body["prevPageToken"]

	return info
}

// stringField возвращает строковое значение ключа или пустую строку
func stringField(m map[string]any, key string) string {
	value, _ := m[key].(string)
	return value
}

// thumbnailsField возвращает объект thumbnails или пустую карту
func thumbnailsField(snippet map[string]any) map[string]any {
	thumbnails, ok := snippet["thumbnails"].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return thumbnails
}
