package handler

import (
	"github.com/go-telegram/bot"
	"github.com/mebelart/catalogbot/internal/config"
	"github.com/mebelart/catalogbot/internal/service"
	"github.com/mebelart/catalogbot/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot       *bot.Bot
	cfg       *config.Config
	sessions  *service.SessionService
	generator *service.GeneratorService
	tgLogger  *telegram.TelegramLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Sessions  *service.SessionService
	Generator *service.GeneratorService
	TgLogger  *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:       deps.Bot,
		cfg:       deps.Cfg,
		sessions:  deps.Sessions,
		generator: deps.Generator,
		tgLogger:  deps.TgLogger,
	}
}
