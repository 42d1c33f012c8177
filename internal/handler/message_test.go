package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mebelart/catalogbot/internal/config"
	"github.com/mebelart/catalogbot/internal/domain"
	"github.com/mebelart/catalogbot/internal/service"
	"github.com/mebelart/catalogbot/internal/telegram"
)

// routingFixture wires a Handler to stub servers: a Bot API stub that
// accepts everything and counts sendMessage calls, and a generation API
// stub that counts submissions and rejects them.
type routingFixture struct {
	handler        *Handler
	bot            *bot.Bot
	generatorCalls int64
	messagesSent   int64
}

func newRoutingFixture(t *testing.T) *routingFixture {
	t.Helper()

	f := &routingFixture{}

	genSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.generatorCalls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(genSrv.Close)

	tgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path.Base(r.URL.Path) == "sendMessage" {
			atomic.AddInt64(&f.messagesSent, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":10,"type":"private"}}}`)
	}))
	t.Cleanup(tgSrv.Close)

	b, err := bot.New("123456:test-token",
		bot.WithServerURL(tgSrv.URL),
		bot.WithSkipGetMe(),
	)
	if err != nil {
		t.Fatalf("create bot: %v", err)
	}
	f.bot = b

	cfg := &config.Config{}
	api := service.NewNanoBananaService("test-key", genSrv.URL, time.Second)

	f.handler = New(Deps{
		Bot:       b,
		Cfg:       cfg,
		Sessions:  service.NewSessionService(time.Minute, time.Minute),
		Generator: service.NewGeneratorService(api, time.Millisecond, 5*time.Millisecond, 1),
		TgLogger:  telegram.NewTelegramLogger(b, cfg),
	})
	return f
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{
		ID: 1,
		Message: &models.Message{
			ID:   1,
			Text: text,
			Chat: models.Chat{ID: chatID, Type: "private"},
		},
	}
}

func TestHandleMessage_TextDuringPhotoIntake(t *testing.T) {
	stages := []struct {
		name  string
		stage domain.Stage
	}{
		{"furniture intake", domain.StageAwaitingFurniturePhoto},
		{"room intake", domain.StageAwaitingRoomPhoto},
	}

	for _, tt := range stages {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoutingFixture(t)
			sess := f.handler.sessions.FindOrCreate(10)
			sess.SetStage(tt.stage)

			f.handler.HandleMessage(context.Background(), f.bot, textUpdate(10, "это не фото"))

			if got := sess.Stage(); got != tt.stage {
				t.Errorf("non-image input must not change the stage, got %s", got)
			}
			if n := atomic.LoadInt64(&f.generatorCalls); n != 0 {
				t.Errorf("no generation may be submitted, got %d calls", n)
			}
			if atomic.LoadInt64(&f.messagesSent) == 0 {
				t.Error("expected a re-prompt message")
			}
		})
	}
}

func TestHandleMessage_PromptSubmodeRunsGeneration(t *testing.T) {
	f := newRoutingFixture(t)
	sess := f.handler.sessions.FindOrCreate(10)
	sess.SetFurniturePhoto([]byte("sketch"))
	sess.SetStage(domain.StageAwaitingPrompt)

	f.handler.HandleMessage(context.Background(), f.bot, textUpdate(10, "студийный свет"))

	if got := sess.Prompt("default"); got != "студийный свет" {
		t.Errorf("prompt text must become the active instruction, got %q", got)
	}
	if sess.Stage() != domain.StageReadyToGenerate {
		t.Errorf("prompt intake must return to ready, got %s", sess.Stage())
	}
	if n := atomic.LoadInt64(&f.generatorCalls); n != 1 {
		t.Errorf("expected exactly one submission, got %d", n)
	}
	// Submission was rejected by the stub; the failure must reach the user.
	if atomic.LoadInt64(&f.messagesSent) == 0 {
		t.Error("expected a failure message")
	}
}

func TestHandleMessage_IgnoresCommandsAndOtherChats(t *testing.T) {
	f := newRoutingFixture(t)
	sess := f.handler.sessions.FindOrCreate(10)
	sess.SetStage(domain.StageAwaitingFurniturePhoto)

	f.handler.HandleMessage(context.Background(), f.bot, textUpdate(10, "/start"))

	group := textUpdate(10, "привет")
	group.Message.Chat.Type = "group"
	f.handler.HandleMessage(context.Background(), f.bot, group)

	if n := atomic.LoadInt64(&f.messagesSent); n != 0 {
		t.Errorf("commands and group chats must not be routed, got %d messages", n)
	}
	if sess.Stage() != domain.StageAwaitingFurniturePhoto {
		t.Errorf("stage must be untouched, got %s", sess.Stage())
	}
}
