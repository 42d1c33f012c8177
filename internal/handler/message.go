package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mebelart/catalogbot/internal/domain"
	tg "github.com/mebelart/catalogbot/internal/telegram"
)

// HandleMessage routes non-command messages by the session stage:
// photos feed the intake stages, text feeds the custom prompt sub-mode.
func (h *Handler) HandleMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Chat.Type != "private" {
		return
	}
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	chatID := msg.Chat.ID
	sess := h.sessions.FindOrCreate(chatID)

	if len(msg.Photo) > 0 {
		h.handlePhoto(ctx, b, sess, msg)
		return
	}
	h.handleText(ctx, b, sess, msg)
}

func (h *Handler) handlePhoto(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession, msg *models.Message) {
	chatID := msg.Chat.ID

	switch sess.Stage() {
	case domain.StageAwaitingFurniturePhoto:
		data, err := tg.DownloadPhoto(ctx, b, msg.Photo)
		if err != nil {
			slog.Error("download furniture photo", "error", err, "chat_id", chatID)
			tg.SendMessage(ctx, b, chatID, "❌ Не удалось загрузить фото. Прикрепите его ещё раз.", nil)
			return
		}
		sess.SetFurniturePhoto(data)
		tg.SendMessage(ctx, b, chatID,
			"✨ *Готово к генерации!*\n\nВыберите действие:", tg.GenerateKeyboard())

	case domain.StageAwaitingRoomPhoto:
		data, err := tg.DownloadPhoto(ctx, b, msg.Photo)
		if err != nil {
			slog.Error("download room photo", "error", err, "chat_id", chatID)
			tg.SendMessage(ctx, b, chatID, "❌ Не удалось загрузить фото. Прикрепите его ещё раз.", nil)
			return
		}
		tg.SendMessage(ctx, b, chatID, "✅ Фото комнаты получено!", nil)
		h.runRoomPass(ctx, b, sess, data)

	default:
		tg.SendMessage(ctx, b, chatID,
			"📸 Чтобы начать работу с фото, нажмите «Генерация мебели».", tg.MainKeyboard())
	}
}

func (h *Handler) handleText(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession, msg *models.Message) {
	chatID := msg.Chat.ID

	switch sess.Stage() {
	case domain.StageAwaitingPrompt:
		prompt := strings.TrimSpace(msg.Text)
		if prompt == "" {
			tg.SendMessage(ctx, b, chatID, "✏️ Отправьте текст промта.", tg.CancelKeyboard())
			return
		}
		sess.SetPrompt(prompt)
		h.runFurniturePass(ctx, b, sess, prompt, 0)

	case domain.StageAwaitingFurniturePhoto:
		tg.SendMessage(ctx, b, chatID, "❌ Прикрепите фото эскиза!", tg.CancelKeyboard())

	case domain.StageAwaitingRoomPhoto:
		tg.SendMessage(ctx, b, chatID, "❌ Прикрепите фото комнаты!", tg.CancelKeyboard())

	default:
		tg.SendMessage(ctx, b, chatID, "🎨 *Выберите действие:*", tg.MainKeyboard())
	}
}
