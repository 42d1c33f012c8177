package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const MaxMessageLen = 4096

// SendMessage sends a Markdown message, falling back to plain text if
// Telegram rejects the formatting.
func SendMessage(ctx context.Context, b *bot.Bot, chatID int64, text string, replyMarkup models.ReplyMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}
	if replyMarkup != nil {
		params.ReplyMarkup = replyMarkup
	}

	_, err := b.SendMessage(ctx, params)
	if err != nil {
		slog.Warn("markdown send failed, falling back to plain text", "error", err)
		params.ParseMode = ""
		if _, err = b.SendMessage(ctx, params); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// EditMessage edits a message's text, with the same plain-text fallback.
func EditMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, replyMarkup *models.InlineKeyboardMarkup) error {
	if len([]rune(text)) > MaxMessageLen {
		text = string([]rune(text)[:MaxMessageLen-3]) + "..."
	}

	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	}
	if replyMarkup != nil {
		params.ReplyMarkup = replyMarkup
	}

	_, err := b.EditMessageText(ctx, params)
	if err != nil {
		params.ParseMode = ""
		_, err = b.EditMessageText(ctx, params)
	}
	return err
}

// SendPhotoURL sends a photo referenced by URL with a caption and
// optional inline keyboard.
func SendPhotoURL(ctx context.Context, b *bot.Bot, chatID int64, photoURL, caption string, replyMarkup models.ReplyMarkup) error {
	params := &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     &models.InputFileString{Data: photoURL},
		Caption:   TruncateCaption(caption),
		ParseMode: models.ParseModeMarkdownV1,
	}
	if replyMarkup != nil {
		params.ReplyMarkup = replyMarkup
	}

	_, err := b.SendPhoto(ctx, params)
	if err != nil {
		params.ParseMode = ""
		if _, err = b.SendPhoto(ctx, params); err != nil {
			return fmt.Errorf("send photo: %w", err)
		}
	}
	return nil
}

// StartUploading sends the upload_photo chat action every few seconds
// until the returned cancel function is called. Used while a generation
// task is in flight so the chat shows activity.
func StartUploading(ctx context.Context, b *bot.Bot, chatID int64, interval time.Duration) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		// Send immediately
		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionUploadPhoto,
		})
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.SendChatAction(ctx, &bot.SendChatActionParams{
					ChatID: chatID,
					Action: models.ChatActionUploadPhoto,
				})
			}
		}
	}()
	return cancel
}

// DeleteMessage removes a message, ignoring failures (it may already be gone).
func DeleteMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		slog.Debug("delete message", "error", err, "chat_id", chatID, "message_id", messageID)
	}
}

// AnswerCallback acknowledges a callback query so the client stops the
// button spinner.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
}
