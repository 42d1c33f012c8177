package domain

import (
	"sync"
	"time"
)

// Stage is the conversational state of one furniture project.
type Stage int

const (
	StageIdle Stage = iota
	StageAwaitingFurniturePhoto
	StageReadyToGenerate
	StageAwaitingPrompt
	StageAwaitingRoomPhoto
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageAwaitingFurniturePhoto:
		return "awaiting_furniture_photo"
	case StageReadyToGenerate:
		return "ready_to_generate"
	case StageAwaitingPrompt:
		return "awaiting_prompt"
	case StageAwaitingRoomPhoto:
		return "awaiting_room_photo"
	}
	return "unknown"
}

// ProjectSession holds per-chat conversation state for one furniture
// project. All access goes through the mutex-guarded methods: Telegram
// updates for the same chat may be handled on concurrent goroutines.
//
// The epoch counter increments on every Reset. A generation started
// before a reset carries the old epoch, so its outcome is discarded by
// ApplyResult instead of resurrecting a cleared project.
type ProjectSession struct {
	mu sync.Mutex

	chatID         int64
	stage          Stage
	furniturePhoto []byte
	prompt         string
	resultURL      string
	epoch          uint64
	generating     bool
	createdAt      time.Time
}

func NewProjectSession(chatID int64) *ProjectSession {
	return &ProjectSession{
		chatID:    chatID,
		stage:     StageIdle,
		createdAt: time.Now(),
	}
}

func (s *ProjectSession) ChatID() int64 {
	return s.chatID
}

func (s *ProjectSession) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *ProjectSession) SetStage(stage Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = stage
}

// SetFurniturePhoto stores the source image and advances to the
// ready-to-generate stage.
func (s *ProjectSession) SetFurniturePhoto(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.furniturePhoto = data
	s.stage = StageReadyToGenerate
}

func (s *ProjectSession) FurniturePhoto() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.furniturePhoto
}

// SetPrompt stores a user-supplied instruction and returns to the
// ready-to-generate stage.
func (s *ProjectSession) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
	s.stage = StageReadyToGenerate
}

// Prompt returns the active instruction, or def when none is stored.
func (s *ProjectSession) Prompt(def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == "" {
		return def
	}
	return s.prompt
}

func (s *ProjectSession) ResultURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultURL
}

// BeginGeneration marks the session as having a generation in flight and
// returns the current epoch. A second concurrent trigger is rejected
// with ErrGenerationInFlight; non-generation interactions stay allowed.
func (s *ProjectSession) BeginGeneration() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return 0, ErrGenerationInFlight
	}
	s.generating = true
	return s.epoch, nil
}

func (s *ProjectSession) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
}

// ApplyResult stores url as the current result if the session has not
// been reset since epoch was obtained. It reports whether the outcome
// was applied; a stale outcome is dropped.
func (s *ProjectSession) ApplyResult(epoch uint64, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return false
	}
	s.resultURL = url
	return true
}

// Observed reports whether the session still lives in the epoch a
// generation was started under, i.e. whether its outcome is of interest.
func (s *ProjectSession) Observed(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return epoch == s.epoch
}

// Reset clears the project back to Idle and bumps the epoch so that any
// outstanding generation outcome is discarded on arrival.
func (s *ProjectSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageIdle
	s.furniturePhoto = nil
	s.prompt = ""
	s.resultURL = ""
	s.epoch++
}
