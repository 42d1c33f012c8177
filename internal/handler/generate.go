package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mebelart/catalogbot/internal/config"
	"github.com/mebelart/catalogbot/internal/domain"
	tg "github.com/mebelart/catalogbot/internal/telegram"
)

// handleGenerateFurniture starts a new furniture pass by asking for the
// source sketch.
func (h *Handler) handleGenerateFurniture(ctx context.Context, b *bot.Bot, update *models.Update) {
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
	sess.SetStage(domain.StageAwaitingFurniturePhoto)

	tg.EditMessage(ctx, b, msg.Chat.ID, msg.ID,
		"🛋️ *Прикрепите эскиз мебели*\n\n📸 Фото/рисунок шкафа, кухни со схемой\n📏 С размерами желательно",
		tg.CancelKeyboard())
}

// handleAutoCatalog runs the catalog pass with the default instruction.
func (h *Handler) handleAutoCatalog(ctx context.Context, b *bot.Bot, update *models.Update) {
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
	h.runFurniturePass(ctx, b, sess, config.FurniturePrompt, msg.ID)
}

// handleCustomPrompt switches the session into the prompt sub-mode; the
// next text message becomes the active instruction.
func (h *Handler) handleCustomPrompt(ctx context.Context, b *bot.Bot, update *models.Update) {
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
	if len(sess.FurniturePhoto()) == 0 {
		h.askForFurniturePhoto(ctx, b, sess)
		return
	}
	sess.SetStage(domain.StageAwaitingPrompt)

	tg.SendMessage(ctx, b, msg.Chat.ID,
		"✏️ *Отправьте свой промт текстом*\n\nОпишите желаемый стиль, материалы и освещение.",
		tg.CancelKeyboard())
}

// handleRegenerate reruns the catalog pass with the stored instruction
// (or the default one) and the stored source photo.
func (h *Handler) handleRegenerate(ctx context.Context, b *bot.Bot, update *models.Update) {
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
	h.runFurniturePass(ctx, b, sess, sess.Prompt(config.FurniturePrompt), 0)
}

// runFurniturePass performs one catalog generation with the stored
// source photo. progressMsgID, when nonzero, is edited into a progress
// indicator instead of sending a new message.
func (h *Handler) runFurniturePass(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession, prompt string, progressMsgID int) {
	chatID := sess.ChatID()

	photo := sess.FurniturePhoto()
	if len(photo) == 0 {
		h.askForFurniturePhoto(ctx, b, sess)
		return
	}

	epoch, err := sess.BeginGeneration()
	if err != nil {
		tg.SendMessage(ctx, b, chatID, "⏳ Генерация уже идёт. Дождитесь результата.", nil)
		return
	}
	defer sess.EndGeneration()

	progressText := "🎨 *Генерирую каталожную визуализацию...*"
	if progressMsgID != 0 {
		tg.EditMessage(ctx, b, chatID, progressMsgID, progressText, nil)
	} else {
		tg.SendMessage(ctx, b, chatID, progressText, nil)
	}

	stopAction := tg.StartUploading(ctx, b, chatID, config.ChatActionInterval)
	started := time.Now()
	resultURL, err := h.generator.Generate(ctx, domain.GenerationRequest{
		Prompt: prompt,
		Image:  photo,
	})
	stopAction()

	if err != nil {
		h.reportFailure(ctx, b, sess, epoch, "furniture", err)
		return
	}

	// Project was reset while the task was in flight: drop the outcome.
	if !sess.ApplyResult(epoch, resultURL) {
		slog.Info("discarding stale generation result", "chat_id", chatID)
		return
	}

	if progressMsgID != 0 {
		tg.DeleteMessage(ctx, b, chatID, progressMsgID)
	}

	h.tgLogger.LogGeneration(chatID, "furniture", time.Since(started))

	if err := tg.SendPhotoURL(ctx, b, chatID, resultURL,
		"✅ *Профессиональная визуализация готова!*\n\nЧто дальше?",
		tg.ResultKeyboard()); err != nil {
		slog.Error("send result photo", "error", err, "chat_id", chatID)
		tg.SendMessage(ctx, b, chatID, "✅ Визуализация готова: "+resultURL, tg.ResultKeyboard())
	}
}

// askForFurniturePhoto re-prompts for the source sketch when a
// generation was requested without one.
func (h *Handler) askForFurniturePhoto(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession) {
	sess.SetStage(domain.StageAwaitingFurniturePhoto)
	tg.SendMessage(ctx, b, sess.ChatID(),
		"❌ Сначала прикрепите эскиз мебели!", tg.CancelKeyboard())
}

// reportFailure surfaces a classified generation failure to the user,
// unless the session was reset while the task was in flight.
func (h *Handler) reportFailure(ctx context.Context, b *bot.Bot, sess *domain.ProjectSession, epoch uint64, pass string, err error) {
	slog.Error("generation failed", "error", err, "chat_id", sess.ChatID(), "pass", pass)
	h.tgLogger.LogError(err, "generation:"+pass)

	if !sess.Observed(epoch) {
		return
	}
	tg.SendMessage(ctx, b, sess.ChatID(), failureText(err), nil)
}

func failureText(err error) string {
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) {
		return "❌ Ошибка генерации. Попробуйте ещё раз."
	}

	switch genErr.Kind {
	case domain.FailureTimeout:
		return "⏳ Сервис не ответил вовремя. Попробуйте ещё раз позже."
	case domain.FailureRemoteTask:
		if genErr.Detail != "" {
			return fmt.Sprintf("❌ Ошибка генерации: %s", genErr.Detail)
		}
		return "❌ Сервис сообщил об ошибке генерации. Попробуйте ещё раз."
	case domain.FailureProtocol:
		return "❌ Сервис вернул некорректный ответ. Попробуйте перегенерировать."
	default:
		return "❌ Не удалось отправить запрос на генерацию. Попробуйте ещё раз."
	}
}
