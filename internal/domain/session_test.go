package domain

import "testing"

func TestProjectSession_PhotoIntake(t *testing.T) {
	sess := NewProjectSession(1)
	if sess.Stage() != StageIdle {
		t.Fatalf("new session must start idle, got %s", sess.Stage())
	}

	sess.SetStage(StageAwaitingFurniturePhoto)
	sess.SetFurniturePhoto([]byte("sketch"))

	if sess.Stage() != StageReadyToGenerate {
		t.Errorf("photo intake must advance to ready, got %s", sess.Stage())
	}
	if string(sess.FurniturePhoto()) != "sketch" {
		t.Error("stored photo lost")
	}
}

func TestProjectSession_PromptDefaultAndOverride(t *testing.T) {
	sess := NewProjectSession(1)

	if got := sess.Prompt("default"); got != "default" {
		t.Errorf("empty prompt must fall back to default, got %q", got)
	}

	sess.SetStage(StageAwaitingPrompt)
	sess.SetPrompt("матовые фасады")

	if got := sess.Prompt("default"); got != "матовые фасады" {
		t.Errorf("stored prompt must win, got %q", got)
	}
	if sess.Stage() != StageReadyToGenerate {
		t.Errorf("prompt intake must return to ready, got %s", sess.Stage())
	}
}

func TestProjectSession_SingleGenerationInFlight(t *testing.T) {
	sess := NewProjectSession(1)

	epoch, err := sess.BeginGeneration()
	if err != nil {
		t.Fatalf("first trigger must succeed: %v", err)
	}

	if _, err := sess.BeginGeneration(); err != ErrGenerationInFlight {
		t.Errorf("second concurrent trigger must be rejected, got %v", err)
	}

	sess.EndGeneration()
	if _, err := sess.BeginGeneration(); err != nil {
		t.Errorf("trigger after completion must succeed: %v", err)
	}

	if !sess.ApplyResult(epoch, "https://cdn.example/r1.png") {
		t.Error("result from the current epoch must apply")
	}
	if sess.ResultURL() != "https://cdn.example/r1.png" {
		t.Errorf("result not stored: %q", sess.ResultURL())
	}
}

func TestProjectSession_RegenerationReplacesResult(t *testing.T) {
	sess := NewProjectSession(1)

	epoch, _ := sess.BeginGeneration()
	sess.ApplyResult(epoch, "R1")
	sess.EndGeneration()

	epoch2, _ := sess.BeginGeneration()
	sess.ApplyResult(epoch2, "R2")
	sess.EndGeneration()

	if sess.ResultURL() != "R2" {
		t.Errorf("regeneration must replace the stored result, got %q", sess.ResultURL())
	}
}

func TestProjectSession_ResetDiscardsOutstandingOutcome(t *testing.T) {
	sess := NewProjectSession(1)
	sess.SetFurniturePhoto([]byte("sketch"))

	epoch, err := sess.BeginGeneration()
	if err != nil {
		t.Fatalf("trigger failed: %v", err)
	}

	// User starts a new project while the task is still in flight.
	sess.Reset()
	sess.EndGeneration()

	if sess.ApplyResult(epoch, "stale") {
		t.Error("outcome from before the reset must be discarded")
	}
	if sess.Observed(epoch) {
		t.Error("old epoch must no longer be observed")
	}
	if sess.ResultURL() != "" {
		t.Errorf("reset session must stay empty, got %q", sess.ResultURL())
	}
	if sess.Stage() != StageIdle {
		t.Errorf("reset must return to idle, got %s", sess.Stage())
	}
}
