package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken   string `env:"BOT_TOKEN,required"`
	NanoAPIKey string `env:"NANOBANANA_API_KEY,required"`
	NanoAPIURL string `env:"NANOBANANA_API_URL" envDefault:"https://api.nanobanana.pro/v1"`

	// Generation
	PollInterval   time.Duration `env:"GENERATION_POLL_INTERVAL" envDefault:"2s"`
	PollBudget     time.Duration `env:"GENERATION_POLL_BUDGET" envDefault:"60s"`
	RequestTimeout time.Duration `env:"GENERATION_REQUEST_TIMEOUT" envDefault:"120s"`
	MaxConcurrent  int64         `env:"GENERATION_MAX_CONCURRENT" envDefault:"8"`

	// Sessions
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// Rate limiting (updates per minute per chat)
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicActivity  int   `env:"LOG_TOPIC_ACTIVITY"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
