// Package telegram содержит интеграцию с Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"time"

	"tubegem/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Client представляет клиент Telegram Bot API
type Client struct {
	bot      *tgbotapi.BotAPI
	handlers *Handlers
	logger   *zap.Logger
}

// NewClient создает новый клиент Telegram
func NewClient(botToken string, services *service.Services, logger *zap.Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false
	logger.Info("Telegram bot created", zap.String("username", bot.Self.UserName))

	return &Client{
		bot:      bot,
		handlers: NewHandlers(bot, services, logger),
		logger:   logger,
	}, nil
}

// Username возвращает имя бота
func (c *Client) Username() string {
	return c.bot.Self.UserName
}

// Start запускает обработку обновлений
func (c *Client) Start(ctx context.Context) error {
	c.logger.Info("Bot started", zap.String("username", c.bot.Self.UserName))

	// Удаляем webhook если есть
	_, err := c.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})
	if err != nil {
		c.logger.Error("Failed to delete webhook", zap.Error(err))
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	// Настраиваем команды бота
	_, err = c.bot.Request(tgbotapi.NewSetMyCommands(botCommands()...))
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	// Настраиваем long polling
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message"}

	c.logger.Info("Starting to fetch updates")
	updatesChan := c.bot.GetUpdatesChan(u)
	if updatesChan == nil {
		return fmt.Errorf("failed to create updates channel")
	}

	reconnectDelay := 10 * time.Second // Задержка между попытками реконнекта

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Update loop cancelled by context")
			return ctx.Err()
		case update, ok := <-updatesChan:
			if !ok {
				c.logger.Warn("Update channel closed, will try to reconnect after delay")
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(reconnectDelay):
					updatesChan = c.bot.GetUpdatesChan(u)
					continue
				}
			}

			c.handleUpdate(ctx, update)
		}
	}
}

// Stop останавливает получение обновлений
func (c *Client) Stop() {
	c.bot.StopReceivingUpdates()
}

// handleUpdate обрабатывает одно обновление от Telegram
func (c *Client) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	message := update.Message
	c.logger.Debug("Command received",
		zap.String("command", message.Command()),
		zap.Int64("chat_id", message.Chat.ID))

	switch message.Command() {
	case "start":
		c.handlers.Start(message)
	case "help":
		c.handlers.Help(message)
	case "search":
		c.handlers.Search(ctx, message)
	case "playlist":
		c.handlers.Playlist(ctx, message)
	case "items":
		c.handlers.Items(ctx, message)
	case "save":
		c.handlers.Save(ctx, message)
	case "saved":
		c.handlers.Saved(message)
	case "forget":
		c.handlers.Forget(message)
	default:
		c.handlers.Unknown(message)
	}
}

// botCommands возвращает список команд для меню бота
func botCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "search", Description: "Поиск плейлистов"},
		{Command: "playlist", Description: "Информация о плейлисте"},
		{Command: "items", Description: "Содержимое плейлиста"},
		{Command: "save", Description: "Сохранить плейлист"},
		{Command: "saved", Description: "Сохраненные плейлисты"},
		{Command: "forget", Description: "Удалить из сохраненных"},
		{Command: "help", Description: "Справка"},
	}
}
