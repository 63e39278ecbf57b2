package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TaskType tags the kind of work a task asks for.
type TaskType string

const (
	TypeTranscription  TaskType = "transcription"
	TypeImageLabeling  TaskType = "image_labeling"
	TypeTextLabeling   TaskType = "text_labeling"
	TypeVoiceRecording TaskType = "voice_recording"
	TypeVideoRecording TaskType = "video_recording"
	TypeSurveyResponse TaskType = "survey_response"
	TypeImage          TaskType = "image"
	TypeDocument       TaskType = "document"
	TypeAudio          TaskType = "audio"
	TypeSelection      TaskType = "selection"
)

// SubmissionKind distinguishes file uploads from free-text answers.
type SubmissionKind string

const (
	SubmissionFile SubmissionKind = "file"
	SubmissionText SubmissionKind = "text"
)

// Submission is the content a worker handed in for a task: either a file
// reference or raw text, tagged with its kind.
type Submission struct {
	Content string         `json:"content" validate:"required"`
	Kind    SubmissionKind `json:"kind" validate:"required,oneof=file text"`
}

// Feedback is a per-task comment plus a 1-5 rating.
type Feedback struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// Task is a unit of work in the active cycle.
//
// A task carries two identifiers: ID is an opaque UUID stable within a
// cycle, NumID is a small numeric id stable across catalog regenerations
// and used for cross-service matching. DependsOn names the prerequisite
// task by its numeric id, kept as a string so snapshots written by older
// builds, which referenced the opaque id, still unlock correctly.
type Task struct {
	ID              string      `json:"id" validate:"required"`
	NumID           int         `json:"numId" validate:"required,min=1"`
	Name            string      `json:"name" validate:"required,min=3,max=255"`
	Description     string      `json:"description,omitempty"`
	Instructions    string      `json:"instructions,omitempty"`
	Price           float64     `json:"price" validate:"min=0"`
	Type            TaskType    `json:"type" validate:"required,oneof=transcription image_labeling text_labeling voice_recording video_recording survey_response image document audio selection"`
	Topic           string      `json:"topic,omitempty"`
	Duration        int         `json:"duration,omitempty"` // minutes
	NumQuestions    int         `json:"numQuestions,omitempty"`
	AcceptedFormats []string    `json:"acceptedFormats,omitempty"`
	RequiredSkills  []string    `json:"requiredSkills,omitempty"`
	Locked          bool        `json:"locked"`
	Completed       bool        `json:"completed"`
	DependsOn       string      `json:"dependsOn,omitempty"`
	Submission      *Submission `json:"submission,omitempty"`
	Feedback        *Feedback   `json:"feedback,omitempty"`
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		// Safeguard for tests running in isolation.
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
