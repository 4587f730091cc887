// Package app содержит фабрику компонентов приложения.
package app

import (
	"fmt"

	"tubegem/internal/config"
	"tubegem/internal/gateway/httpapi"
	"tubegem/internal/gateway/youtube"
	"tubegem/internal/health"
	"tubegem/internal/service"
	"tubegem/internal/storage"
	"tubegem/internal/telegram"

	"go.uber.org/zap"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	if config == nil {
		logger.Fatal("Config cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateDatabase создает подключение к базе данных
func (f *ComponentFactory) CreateDatabase() (*storage.Postgres, error) {
	if f.config.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := storage.NewPostgres(f.config.DatabaseURL, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	f.logger.Info("Database connection created successfully")
	return db, nil
}

// CreateGateway создает HTTP-шлюз к YouTube Data API
func (f *ComponentFactory) CreateGateway() *httpapi.Client {
	gatewayConfig := httpapi.Config{
		Endpoint: f.config.YouTubeEndpoint,
		HTTPClientConfig: httpapi.HTTPClientConfig{
			MaxIdleConns:          f.config.HTTPClientConfig.MaxIdleConns,
			MaxIdleConnsPerHost:   f.config.HTTPClientConfig.MaxIdleConnsPerHost,
			IdleConnTimeout:       f.config.HTTPClientConfig.IdleConnTimeout,
			TLSHandshakeTimeout:   f.config.HTTPClientConfig.TLSHandshakeTimeout,
			ResponseHeaderTimeout: f.config.HTTPClientConfig.ResponseHeaderTimeout,
			DisableKeepAlives:     f.config.HTTPClientConfig.DisableKeepAlives,
		},
		RetryConfig: httpapi.RetryConfig{
			MaxRetries:        f.config.RetryConfig.MaxRetries,
			InitialDelay:      f.config.RetryConfig.InitialDelay,
			MaxDelay:          f.config.RetryConfig.MaxDelay,
			BackoffMultiplier: f.config.RetryConfig.BackoffMultiplier,
		},
	}

	gateway := httpapi.NewClient(gatewayConfig, f.logger)
	f.logger.Info("HTTP gateway created successfully")
	return gateway
}

// CreateYouTubeClient создает клиент YouTube Data API
func (f *ComponentFactory) CreateYouTubeClient(gateway youtube.Gateway) (*youtube.Client, error) {
	client, err := youtube.NewClient(gateway, f.config.YouTubeAPIKey, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	f.logger.Info("YouTube client created successfully")
	return client, nil
}

// CreateServices создает все сервисы
func (f *ComponentFactory) CreateServices(db *storage.Postgres, client service.PlaylistAPI) (*service.Services, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	services := service.NewServices(db, client, f.logger)
	f.logger.Info("Services created successfully")
	return services, nil
}

// CreateTelegramClient создает клиент Telegram
func (f *ComponentFactory) CreateTelegramClient(services *service.Services) (*telegram.Client, error) {
	if f.config.BotToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	client, err := telegram.NewClient(f.config.BotToken, services, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}

	f.logger.Info("Telegram client created successfully")
	return client, nil
}

// CreateHealthServer создает health check сервер
func (f *ComponentFactory) CreateHealthServer(db *storage.Postgres) *health.Server {
	if !f.config.HealthCheckEnabled {
		f.logger.Info("Health check disabled by config")
		return nil
	}

	return health.NewServer(f.config.HealthPort, db, f.logger)
}

// CreateBot создает бота со всеми компонентами
func (f *ComponentFactory) CreateBot() (*Bot, error) {
	bot, err := NewBot(f.config, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot structure: %w", err)
	}

	db, err := f.CreateDatabase()
	if err != nil {
		return nil, err
	}
	bot.db = db

	gateway := f.CreateGateway()

	client, err := f.CreateYouTubeClient(gateway)
	if err != nil {
		return nil, err
	}

	services, err := f.CreateServices(db, client)
	if err != nil {
		return nil, err
	}
	bot.services = services

	telegramClient, err := f.CreateTelegramClient(services)
	if err != nil {
		return nil, err
	}
	bot.telegram = telegramClient

	bot.health = f.CreateHealthServer(db)

	f.logger.Info("All components created successfully")
	return bot, nil
}
