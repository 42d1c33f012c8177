package telegram

// MaxCaptionLen is Telegram's limit for photo captions.
const MaxCaptionLen = 1024

// TruncateCaption shortens text to fit a photo caption.
func TruncateCaption(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxCaptionLen {
		return text
	}
	return string(runes[:MaxCaptionLen-3]) + "..."
}
