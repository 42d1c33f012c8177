package config

import "time"

const (
	// Generation request parameters
	ImageCount     = 1
	ImageSize      = "1024x1024"
	ResponseFormat = "url"

	// Chat action cadence while a task is in flight
	ChatActionInterval = 4 * time.Second

	// Session store janitor cadence
	SessionCleanup = 10 * time.Minute
)
