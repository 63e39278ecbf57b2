package models

import "time"

// ExportMetadata carries basic client information in the session export.
type ExportMetadata struct {
	Hostname string `json:"hostname,omitempty"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Version  string `json:"version,omitempty"`
}

// SessionExport is the end-of-session artifact written when a participant
// reaches the terminal thank-you stage: the full study record as one JSON
// document.
type SessionExport struct {
	Users            []User           `json:"users"`
	Tasks            []Task           `json:"tasks"`
	OldTaskCycles    [][]Task         `json:"oldTaskCycles"`
	FeedbackHistory  []CycleFeedback  `json:"feedbackHistory"`
	RecommendedTasks []Recommendation `json:"recommendedTasks"`
	UserSkills       []string         `json:"userSkills"`
	Timestamp        time.Time        `json:"timestamp"`
	Metadata         ExportMetadata   `json:"metadata"`
}
