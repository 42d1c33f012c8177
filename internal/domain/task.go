package domain

// TaskStatus is the lifecycle state of one remote generation job.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskProcessing TaskStatus = "processing"
	TaskCompleted  TaskStatus = "completed"
	TaskFailed     TaskStatus = "failed"
)

// Terminal reports whether the status ends the polling loop.
func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// GenerationRequest is one immutable submission to the generation service.
// Image may be nil for text-only generation.
type GenerationRequest struct {
	Prompt string
	Image  []byte
}

// GenerationTask tracks one submit-and-poll cycle. ResultURL is set only
// when Status is TaskCompleted, Detail only when TaskFailed.
type GenerationTask struct {
	ID        string
	Status    TaskStatus
	ResultURL string
	Detail    string
}
