// Package formatter содержит форматирование ответов бота.
package formatter

import (
	"fmt"
	"html"
	"strings"

	"tubegem/internal/gateway/youtube"
	"tubegem/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// thumbnailOrder порядок предпочтения размеров превью
var thumbnailOrder = []string{"maxres", "standard", "high", "medium", "default"}

var titleCaser = cases.Title(language.English)

// FormatPlaylist форматирует карточку плейлиста в HTML для Telegram
func FormatPlaylist(playlist youtube.Playlist) string {
	var b strings.Builder

	title := playlist.Title
	if title == "" {
		title = playlist.PlaylistID
	}

	b.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(title)))

	if playlist.ChannelTitle != "" {
		b.WriteString(fmt.Sprintf("Канал: %s\n", html.EscapeString(playlist.ChannelTitle)))
	}
	if playlist.PublishedAt != "" {
		b.WriteString(fmt.Sprintf("Опубликован: %s\n", html.EscapeString(playlist.PublishedAt)))
	}
	if playlist.Description != "" {
		b.WriteString(fmt.Sprintf("\n%s\n", html.EscapeString(truncate(playlist.Description, 300))))
	}

	b.WriteString(fmt.Sprintf("\nID: <code>%s</code>\n", html.EscapeString(playlist.PlaylistID)))

	if size, url := bestThumbnailEntry(playlist.Thumbnails); url != "" {
		b.WriteString(fmt.Sprintf("<a href=\"%s\">Превью (%s)</a>\n",
			html.EscapeString(url), html.EscapeString(ThumbnailLabel(size))))
	}

	return b.String()
}

// FormatSearchResults форматирует список найденных плейлистов
func FormatSearchResults(query string, playlists []youtube.Playlist, pageInfo youtube.PageInfo) string {
	if len(playlists) == 0 {
		return fmt.Sprintf("По запросу «%s» ничего не найдено.", html.EscapeString(query))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Результаты по запросу «%s»:\n\n", html.EscapeString(query)))

	for i, playlist := range playlists {
		title := playlist.Title
		if title == "" {
			title = playlist.PlaylistID
		}
		b.WriteString(fmt.Sprintf("%d. <b>%s</b>", i+1, html.EscapeString(title)))
		if playlist.ChannelTitle != "" {
			b.WriteString(fmt.Sprintf(" — %s", html.EscapeString(playlist.ChannelTitle)))
		}
		b.WriteString(fmt.Sprintf("\n   <code>%s</code>\n", html.EscapeString(playlist.PlaylistID)))
	}

	appendPageHint(&b, pageInfo)

	return b.String()
}

// FormatItems форматирует содержимое плейлиста
func FormatItems(playlistID string, items []youtube.Playlist, pageInfo youtube.PageInfo) string {
	if len(items) == 0 {
		return fmt.Sprintf("Плейлист <code>%s</code> пуст.", html.EscapeString(playlistID))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Содержимое плейлиста <code>%s</code>:\n\n", html.EscapeString(playlistID)))

	for i, item := range items {
		title := item.Title
		if title == "" {
			title = item.ID
		}
		b.WriteString(fmt.Sprintf("%d. %s", i+1, html.EscapeString(title)))
		if item.ChannelTitle != "" {
			b.WriteString(fmt.Sprintf(" — %s", html.EscapeString(item.ChannelTitle)))
		}
		b.WriteString("\n")
	}

	appendPageHint(&b, pageInfo)

	return b.String()
}

// FormatSaved форматирует список сохраненных плейлистов
func FormatSaved(playlists []model.SavedPlaylist) string {
	if len(playlists) == 0 {
		return "У вас нет сохраненных плейлистов."
	}

	var b strings.Builder
	b.WriteString("Сохраненные плейлисты:\n\n")

	for i, playlist := range playlists {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b>", i+1, html.EscapeString(playlist.Title)))
		if playlist.ChannelTitle != "" {
			b.WriteString(fmt.Sprintf(" — %s", html.EscapeString(playlist.ChannelTitle)))
		}
		b.WriteString(fmt.Sprintf("\n   <code>%s</code>\n", html.EscapeString(playlist.PlaylistID)))
	}

	return b.String()
}

// bestThumbnailEntry возвращает размер и URL самого крупного доступного превью
func bestThumbnailEntry(thumbnails map[string]any) (string, string) {
	for _, size := range thumbnailOrder {
		entry, ok := thumbnails[size].(map[string]any)
		if !ok {
			continue
		}
		if url, ok := entry["url"].(string); ok && url != "" {
			return size, url
		}
	}
	return "", ""
}

// ThumbnailLabel возвращает человекочитаемое название размера превью
func ThumbnailLabel(size string) string {
	return titleCaser.String(size)
}

// appendPageHint добавляет подсказку про следующую страницу
func appendPageHint(b *strings.Builder, pageInfo youtube.PageInfo) {
	if pageInfo == nil {
		return
	}
	if token := pageInfo.NextPageToken(); token != "" {
		b.WriteString(fmt.Sprintf("\nСледующая страница: <code>%s</code>", html.EscapeString(token)))
	}
}

// truncate обрезает строку до limit символов, сохраняя целые руны
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
