package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tubegem/internal/formatter"
	"tubegem/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// requestTimeout таймаут обработки одной команды
const requestTimeout = 30 * time.Second

// Handlers содержит обработчики пользовательских команд
type Handlers struct {
	bot      *tgbotapi.BotAPI
	services *service.Services
	logger   *zap.Logger
}

// NewHandlers создает обработчики команд
func NewHandlers(bot *tgbotapi.BotAPI, services *service.Services, logger *zap.Logger) *Handlers {
	return &Handlers{
		bot:      bot,
		services: services,
		logger:   logger,
	}
}

// Start обрабатывает команду /start
func (h *Handlers) Start(message *tgbotapi.Message) {
	text := "Привет! Я помогу найти плейлисты на YouTube.\n" +
		"Начните с /search или посмотрите /help."
	h.sendMessage(message.Chat.ID, text)
}

// Help обрабатывает команду /help
func (h *Handlers) Help(message *tgbotapi.Message) {
	text := "Доступные команды:\n" +
		"\n/search [запрос] - Поиск плейлистов\n" +
		"/search [запрос] -p [токен] - Следующая страница результатов\n" +
		"/playlist [id или ссылка] - Информация о плейлисте\n" +
		"/items [id] - Содержимое плейлиста\n" +
		"/items [id] [токен] - Следующая страница содержимого\n" +
		"/save [id] - Сохранить плейлист\n" +
		"/saved - Показать сохраненные плейлисты\n" +
		"/forget [id] - Удалить из сохраненных\n" +
		"/help - Показать это сообщение"
	h.sendMessage(message.Chat.ID, text)
}

// Search обрабатывает команду /search
func (h *Handlers) Search(ctx context.Context, message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) == 0 {
		h.sendMessage(message.Chat.ID, "Укажите поисковый запрос: /search lo-fi jazz")
		return
	}

	// Токен страницы передается флагом -p
	pageToken := ""
	queryParts := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "-p" && i+1 < len(args) {
			pageToken = args[i+1]
			i++
			continue
		}
		queryParts = append(queryParts, args[i])
	}
	query := strings.Join(queryParts, " ")

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	playlists, pageInfo, err := h.services.Playlist.Search(reqCtx, query, pageToken)
	if err != nil {
		h.logger.Error("Failed to search playlists", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка поиска: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, formatter.FormatSearchResults(query, playlists, pageInfo))
}

// Playlist обрабатывает команду /playlist
func (h *Handlers) Playlist(ctx context.Context, message *tgbotapi.Message) {
	playlistID := strings.TrimSpace(message.CommandArguments())
	if playlistID == "" {
		h.sendMessage(message.Chat.ID, "Укажите идентификатор или ссылку: /playlist PLabc123")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	playlist, err := h.services.Playlist.Lookup(reqCtx, playlistID)
	if err != nil {
		h.logger.Error("Failed to get playlist", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, formatter.FormatPlaylist(playlist))
}

// Items обрабатывает команду /items
func (h *Handlers) Items(ctx context.Context, message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) == 0 {
		h.sendMessage(message.Chat.ID, "Укажите идентификатор плейлиста: /items PLabc123")
		return
	}

	playlistID := args[0]
	pageToken := ""
	if len(args) > 1 {
		pageToken = args[1]
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	items, pageInfo, err := h.services.Playlist.Items(reqCtx, playlistID, pageToken)
	if err != nil {
		h.logger.Error("Failed to get playlist items", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, formatter.FormatItems(playlistID, items, pageInfo))
}

// Save обрабатывает команду /save
func (h *Handlers) Save(ctx context.Context, message *tgbotapi.Message) {
	playlistID := strings.TrimSpace(message.CommandArguments())
	if playlistID == "" {
		h.sendMessage(message.Chat.ID, "Укажите идентификатор плейлиста: /save PLabc123")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	saved, err := h.services.Playlist.Save(reqCtx, message.Chat.ID, playlistID)
	if err != nil {
		h.logger.Error("Failed to save playlist", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf("Плейлист «%s» сохранен.", saved.Title))
}

// Saved обрабатывает команду /saved
func (h *Handlers) Saved(message *tgbotapi.Message) {
	playlists, err := h.services.Playlist.Saved(message.Chat.ID)
	if err != nil {
		h.logger.Error("Failed to get saved playlists", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, formatter.FormatSaved(playlists))
}

// Forget обрабатывает команду /forget
func (h *Handlers) Forget(message *tgbotapi.Message) {
	playlistID := strings.TrimSpace(message.CommandArguments())
	if playlistID == "" {
		h.sendMessage(message.Chat.ID, "Укажите идентификатор плейлиста: /forget PLabc123")
		return
	}

	if err := h.services.Playlist.Forget(message.Chat.ID, playlistID); err != nil {
		h.logger.Error("Failed to forget playlist", zap.Error(err))
		h.sendMessage(message.Chat.ID, fmt.Sprintf("Ошибка: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, "Плейлист удален из сохраненных.")
}

// Unknown обрабатывает неизвестные команды
func (h *Handlers) Unknown(message *tgbotapi.Message) {
	h.sendMessage(message.Chat.ID, "Неизвестная команда. Посмотрите /help.")
}

// sendMessage отправляет HTML-сообщение в чат
func (h *Handlers) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := h.bot.Send(msg); err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
