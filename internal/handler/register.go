package handler

import (
	"github.com/go-telegram/bot"
	tg "github.com/mebelart/catalogbot/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)

	// Menu callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackMainMenu, bot.MatchTypeExact, h.handleMainMenu)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackNewProject, bot.MatchTypeExact, h.handleNewProject)

	// Furniture flow callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackGenerateFurniture, bot.MatchTypeExact, h.handleGenerateFurniture)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackAutoCatalog, bot.MatchTypeExact, h.handleAutoCatalog)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackCustomPrompt, bot.MatchTypeExact, h.handleCustomPrompt)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackNewPrompt, bot.MatchTypeExact, h.handleCustomPrompt)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackRegenerate, bot.MatchTypeExact, h.handleRegenerate)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackImproveQuality, bot.MatchTypeExact, h.handleRegenerate)

	// Room flow callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackFurnitureReady, bot.MatchTypeExact, h.handleFurnitureReady)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackAddToRoom, bot.MatchTypeExact, h.handleFurnitureReady)
}
