package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	tg "github.com/mebelart/catalogbot/internal/telegram"
)

const welcomeText = "🎨 *Бот генерации мебели для каталогов*\n\n" +
	"📋 *Как работать:*\n" +
	"• Прикрепите эскиз шкафа/кухни\n" +
	"• Нажмите 🛋️ *«Генерация мебели»*\n" +
	"• Доработайте результат\n" +
	"• Прикрепите фото комнаты → *«Добавить в комнату»*\n\n" +
	"🎯 *Итог:* мебель в интерьере клиента!"

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.sessions.FindOrCreate(chatID)

	tg.SendMessage(ctx, b, chatID, welcomeText, tg.MainKeyboard())
}

// handleMainMenu returns to the action menu and clears the current
// project so every entry from the menu starts clean.
func (h *Handler) handleMainMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer tg.AnswerCallback(ctx, b, cb.ID)

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	h.sessions.Reset(msg.Chat.ID)

	err := tg.EditMessage(ctx, b, msg.Chat.ID, msg.ID, "🎨 *Выберите действие:*", tg.MainKeyboard())
	if err != nil {
		// Result photos cannot be edited into text; send a fresh message.
		tg.SendMessage(ctx, b, msg.Chat.ID, "🎨 *Выберите действие:*", tg.MainKeyboard())
	}
}

func (h *Handler) handleNewProject(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleMainMenu(ctx, b, update)
}
