// Package app содержит основную логику приложения.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"tubegem/internal/config"
	"tubegem/internal/health"
	"tubegem/internal/service"
	"tubegem/internal/storage"
	"tubegem/internal/telegram"

	"go.uber.org/zap"
)

// Bot представляет основную логику приложения
type Bot struct {
	config   *config.Config
	logger   *zap.Logger
	db       *storage.Postgres
	telegram *telegram.Client
	health   *health.Server
	services *service.Services
	wg       sync.WaitGroup
}

// NewBot создает новый экземпляр бота
func NewBot(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Bot{
		config: cfg,
		logger: logger,
	}, nil
}

// NewBotWithFactory создает новый экземпляр бота через фабрику компонентов
func NewBotWithFactory(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	factory := NewComponentFactory(cfg, logger)
	return factory.CreateBot()
}

// Start запускает бота
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	// Выполняем миграции
	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err := b.db.Migrate(migrateCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Запускаем health check сервер
	if b.health != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			if err := b.health.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				b.logger.Error("Health check server failed", zap.Error(err))
			}
		}()
	}

	b.logger.Info("Bot started successfully",
		zap.String("bot_username", b.telegram.Username()))

	// Основной цикл обработки обновлений
	err = b.telegram.Start(ctx)

	b.shutdown()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// shutdown останавливает компоненты и дожидается фоновых горутин
func (b *Bot) shutdown() {
	b.logger.Info("Shutting down bot")

	b.telegram.Stop()

	if b.health != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := b.health.Stop(shutdownCtx); err != nil {
			b.logger.Error("Failed to stop health check server", zap.Error(err))
		}
		cancel()
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			b.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	b.wg.Wait()
	b.logger.Info("Bot shutdown completed")
}
