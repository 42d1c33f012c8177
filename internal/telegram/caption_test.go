package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateCaption(t *testing.T) {
	short := "✅ Визуализация готова"
	if got := TruncateCaption(short); got != short {
		t.Errorf("short caption must pass through, got %q", got)
	}

	long := strings.Repeat("ю", MaxCaptionLen+50)
	got := TruncateCaption(long)
	if utf8.RuneCountInString(got) > MaxCaptionLen {
		t.Errorf("truncated caption too long: %d runes", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated caption must end with ellipsis, got %q", got[len(got)-9:])
	}
}
