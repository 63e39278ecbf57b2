package models

// Language is a participant's main language.
type Language string

const (
	LangEnglish    Language = "english"
	LangFrench     Language = "french"
	LangSpanish    Language = "spanish"
	LangGerman     Language = "german"
	LangItalian    Language = "italian"
	LangPortuguese Language = "portuguese"
	LangChinese    Language = "chinese"
	LangJapanese   Language = "japanese"
)

// User is a signup profile. The user list is append-only; there is no
// update or delete path.
type User struct {
	Username     string   `json:"username" validate:"required,min=2"`
	Country      string   `json:"country" validate:"required,min=2"`
	Sex          string   `json:"sex,omitempty" validate:"omitempty,oneof=femenine masculine"`
	MainLanguage Language `json:"main_language" validate:"required,oneof=english french spanish german italian portuguese chinese japanese"`
}

// FeedbackEntry is the per-task feedback extracted when a cycle is archived.
type FeedbackEntry struct {
	TaskID  string `json:"taskId"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// CycleFeedback aggregates one archived cycle's feedback: every per-task
// entry that was collected plus one general comment and rating for the
// cycle as a whole.
type CycleFeedback struct {
	TaskFeedbacks   []FeedbackEntry `json:"taskFeedbacks"`
	GeneralFeedback Feedback        `json:"generalFeedback"`
}
