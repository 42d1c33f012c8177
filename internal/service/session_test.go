package service

import (
	"testing"
	"time"

	"github.com/mebelart/catalogbot/internal/domain"
)

func TestSessionService_FindOrCreate(t *testing.T) {
	svc := NewSessionService(time.Minute, time.Minute)

	first := svc.FindOrCreate(42)
	second := svc.FindOrCreate(42)
	if first != second {
		t.Error("same chat must resolve to the same session")
	}

	other := svc.FindOrCreate(43)
	if other == first {
		t.Error("different chats must not share a session")
	}

	if svc.Count() != 2 {
		t.Errorf("expected 2 live sessions, got %d", svc.Count())
	}
}

func TestSessionService_Peek(t *testing.T) {
	svc := NewSessionService(time.Minute, time.Minute)

	if _, err := svc.Peek(1); err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	created := svc.FindOrCreate(1)
	got, err := svc.Peek(1)
	if err != nil || got != created {
		t.Errorf("expected existing session, got %v (%v)", got, err)
	}
}

func TestSessionService_Reset(t *testing.T) {
	svc := NewSessionService(time.Minute, time.Minute)

	sess := svc.FindOrCreate(7)
	sess.SetFurniturePhoto([]byte("photo"))
	sess.SetPrompt("свой промт")

	reset := svc.Reset(7)
	if reset != sess {
		t.Error("reset must act on the existing session")
	}
	if reset.Stage() != domain.StageIdle {
		t.Errorf("expected idle stage after reset, got %s", reset.Stage())
	}
	if reset.FurniturePhoto() != nil {
		t.Error("reset must clear the stored photo")
	}
}
