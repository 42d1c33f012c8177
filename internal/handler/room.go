package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mebelart/catalogbot/internal/config"
	"github.com/mebelart/catalogbot/internal/domain"
	tg "github.com/mebelart/catalogbot/internal/telegram"
)

// handleFurnitureReady moves the session into the room intake stage for
// the integration pass.
func (h *Handler) handleFurnitureReady(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	defer tg.AnswerCallback(ctx, b, cb.ID)

	msg := cb.Message.Message
	if msg == nil {
		return
	}

	sess := h.sessions.FindOrCreate(msg.Chat.ID)
	sess.SetStage(domain.StageAwaitingRoomPhoto)

	tg.SendMessage(ctx, b, msg.Chat.ID,
		"🏠 *Прикрепите фото комнаты клиента*\n\n📸 Реальный интерьер куда встанет мебель",
		tg.CancelKeyboard())
}

// runRoomPass performs the integration generation with the freshly
// received room photo. On success the full two-pass cycle is done and
// the project resets to idle; on failure the session stays in the room
// intake stage for a retry.
func (h *Handler) runRoomPass(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession, roomPhoto []byte) {
	chatID := sess.ChatID()

	epoch, err := sess.BeginGeneration()
	if err != nil {
		tg.SendMessage(ctx, b, chatID, "⏳ Генерация уже идёт. Дождитесь результата.", nil)
		return
	}
	defer sess.EndGeneration()

	tg.SendMessage(ctx, b, chatID, "🎉 *Интегрирую мебель в интерьер...*", nil)

	stopAction := tg.StartUploading(ctx, b, chatID, config.ChatActionInterval)
	started := time.Now()
	resultURL, err := h.generator.Generate(ctx, domain.GenerationRequest{
		Prompt: config.RoomIntegrationPrompt,
		Image:  roomPhoto,
	})
	stopAction()

	if err != nil {
		h.reportFailure(ctx, b, sess, epoch, "room", err)
		return
	}

	if !sess.Observed(epoch) {
		slog.Info("discarding stale integration result", "chat_id", chatID)
		return
	}

	h.tgLogger.LogGeneration(chatID, "room", time.Since(started))

	caption := "🎊 *ГОТОВО!* Мебель в интерьере клиента\n\n" +
		"🔄 Нажмите «Новый проект» для следующего заказа"
	if err := tg.SendPhotoURL(ctx, b, chatID, resultURL, caption, tg.MainKeyboard()); err != nil {
		slog.Error("send final photo", "error", err, "chat_id", chatID)
		tg.SendMessage(ctx, b, chatID, "🎊 Готово: "+resultURL, tg.MainKeyboard())
	}

	sess.Reset()
}
