package telegram

import (
	"github.com/go-telegram/bot/models"
)

// Callback action identifiers used across handlers.
const (
	CallbackMainMenu          = "main_menu"
	CallbackNewProject        = "new_project"
	CallbackGenerateFurniture = "generate_furniture"
	CallbackImproveQuality    = "improve_quality"
	CallbackAddToRoom         = "add_to_room"
	CallbackAutoCatalog       = "auto_catalog"
	CallbackCustomPrompt      = "custom_prompt"
	CallbackFurnitureReady    = "furniture_ready"
	CallbackRegenerate        = "regenerate"
	CallbackNewPrompt         = "new_prompt"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// MainKeyboard is the top-level project menu.
func MainKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("🛋️ Генерация мебели", CallbackGenerateFurniture)),
		ButtonRow(InlineButton("📸 Улучшить качество", CallbackImproveQuality)),
		ButtonRow(InlineButton("🏠 Добавить в комнату", CallbackAddToRoom)),
		ButtonRow(InlineButton("🔄 Новый проект", CallbackNewProject)),
	)
}

// ResultKeyboard is shown under a finished catalog visualization.
func ResultKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("✅ Готово для комнаты", CallbackFurnitureReady)),
		ButtonRow(InlineButton("🔄 Перегенерировать", CallbackRegenerate)),
		ButtonRow(InlineButton("✏️ Новый промт", CallbackNewPrompt)),
		ButtonRow(InlineButton("🏠 Главное меню", CallbackMainMenu)),
	)
}

// GenerateKeyboard is shown once a furniture photo has been captured.
func GenerateKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("🚀 Авто-каталог", CallbackAutoCatalog)),
		ButtonRow(InlineButton("✏️ Свой промт", CallbackCustomPrompt)),
		ButtonRow(InlineButton("❌ Отмена", CallbackMainMenu)),
	)
}

// CancelKeyboard offers a single way back to the main menu.
func CancelKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(
		ButtonRow(InlineButton("❌ Отмена", CallbackMainMenu)),
	)
}
