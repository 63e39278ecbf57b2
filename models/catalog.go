package models

// SeedCatalog returns the built-in task definitions installed for the very
// first cycle. All seven are unlocked so the participant can pick freely.
func SeedCatalog() []Task {
	return []Task{
		{
			ID:              "general-tag-1",
			NumID:           1,
			Name:            "Upload a Color Picture",
			Description:     "Help us identify colors.",
			Instructions:    "Upload a picture with something that matches the color you are asked to identify.",
			Price:           0.25,
			Type:            TypeImage,
			AcceptedFormats: []string{"jpg", "png", "jpeg"},
		},
		{
			ID:              "general-tag-2",
			NumID:           2,
			Name:            "Verify Your Identity",
			Description:     "Help us ensure the integrity of the platform.",
			Instructions:    "Write down the same age as you have in the survey.",
			Price:           0.05,
			Type:            TypeDocument,
			AcceptedFormats: []string{"jpg", "png", "pdf"},
		},
		{
			ID:              "general-tag-3",
			NumID:           3,
			Name:            "Proof of Education",
			Description:     "What is your highest level of education?",
			Instructions:    "Tell us your highest level of education in simple words.",
			Price:           0.05,
			Type:            TypeDocument,
			AcceptedFormats: []string{"pdf", "jpg", "png"},
		},
		{
			ID:              "general-tag-4",
			NumID:           4,
			Name:            "Audio Sample",
			Description:     "Submit a transcription of the following audio.",
			Instructions:    "Read the audio and transcribe it word by word.",
			Price:           0.18,
			Type:            TypeAudio,
			AcceptedFormats: []string{"mp3", "wav", "m4a"},
		},
		{
			ID:              "general-tag-5",
			NumID:           5,
			Name:            "Transcription Sample",
			Description:     "Read the text and transcribe it.",
			Instructions:    "Read carefully and transcribe the text word by word.",
			Price:           0.35,
			Type:            TypeTranscription,
			AcceptedFormats: []string{"txt"},
		},
		{
			ID:              "general-tag-6",
			NumID:           6,
			Name:            "Product Categorization",
			Description:     "Categorize products based on their images",
			Instructions:    "See the product image and categorize it",
			Price:           0.25,
			Type:            TypeTextLabeling,
			AcceptedFormats: []string{"jpg", "png", "txt"},
		},
		{
			ID:              "general-tag-7",
			NumID:           7,
			Name:            "Data Entry from Receipt",
			Description:     "Extract key information from a sales receipt.",
			Instructions:    "Tell us the total amount of the receipt.",
			Price:           0.22,
			Type:            TypeDocument,
			AcceptedFormats: []string{"pdf", "jpg", "png"},
		},
	}
}

// AdvancedCatalog returns the follow-up task definitions offered from the
// third cycle on. Several are gated behind a prerequisite: DependsOn names
// the numeric id of the task that must be completed first.
func AdvancedCatalog() []Task {
	return []Task{
		{
			ID:              "advanced-tag-1",
			NumID:           8,
			Name:            "Medical Term Transcription",
			Description:     "Transcribe a short clinical dictation.",
			Instructions:    "Listen to the recording and transcribe every term exactly as spoken.",
			Price:           0.60,
			Type:            TypeTranscription,
			Topic:           "medical",
			Duration:        15,
			AcceptedFormats: []string{"txt"},
			RequiredSkills:  []string{"medical_terminology"},
		},
		{
			ID:              "advanced-tag-2",
			NumID:           9,
			Name:            "Street Scene Annotation",
			Description:     "Label vehicles and pedestrians in street photos.",
			Instructions:    "Draw a box around every vehicle and pedestrian and tag its class.",
			Price:           0.45,
			Type:            TypeImageLabeling,
			Topic:           "traffic",
			Duration:        20,
			NumQuestions:    12,
			AcceptedFormats: []string{"jpg", "png"},
			RequiredSkills:  []string{"image_annotation"},
		},
		{
			ID:              "advanced-tag-3",
			NumID:           10,
			Name:            "Product Review Sentiment",
			Description:     "Classify the sentiment of customer reviews.",
			Instructions:    "Mark each review as positive, neutral or negative.",
			Price:           0.30,
			Type:            TypeTextLabeling,
			Topic:           "retail",
			Duration:        10,
			NumQuestions:    20,
			AcceptedFormats: []string{"txt"},
			Locked:          true,
			DependsOn:       "9",
		},
		{
			ID:              "advanced-tag-4",
			NumID:           11,
			Name:            "Pronunciation Recording",
			Description:     "Record yourself reading a word list.",
			Instructions:    "Read the 30 words aloud in a quiet room and upload the recording.",
			Price:           0.50,
			Type:            TypeVoiceRecording,
			Topic:           "speech",
			Duration:        12,
			AcceptedFormats: []string{"mp3", "wav", "m4a"},
			RequiredSkills:  []string{"audio_processing"},
		},
		{
			ID:              "advanced-tag-5",
			NumID:           12,
			Name:            "Gesture Video Capture",
			Description:     "Record short clips of common hand gestures.",
			Instructions:    "Record each listed gesture for three seconds against a plain background.",
			Price:           0.75,
			Type:            TypeVideoRecording,
			Topic:           "gestures",
			Duration:        25,
			AcceptedFormats: []string{"mp4", "mov"},
			Locked:          true,
			DependsOn:       "11",
		},
		{
			ID:              "advanced-tag-6",
			NumID:           13,
			Name:            "Shopping Habits Survey",
			Description:     "Answer a survey about your shopping habits.",
			Instructions:    "Answer every question honestly; there are no wrong answers.",
			Price:           0.40,
			Type:            TypeSurveyResponse,
			Topic:           "retail",
			Duration:        18,
			NumQuestions:    25,
			AcceptedFormats: []string{"txt"},
			RequiredSkills:  []string{"survey_research"},
		},
		{
			ID:              "advanced-tag-7",
			NumID:           14,
			Name:            "Receipt Field Extraction",
			Description:     "Extract structured fields from scanned receipts.",
			Instructions:    "Type the vendor, date and total for each receipt image.",
			Price:           0.35,
			Type:            TypeDocument,
			Topic:           "finance",
			Duration:        14,
			NumQuestions:    9,
			AcceptedFormats: []string{"pdf", "jpg", "png"},
			Locked:          true,
			DependsOn:       "13",
			RequiredSkills:  []string{"data_entry"},
		},
	}
}

// SuggestedSkill is a skill the participant can claim during onboarding.
type SuggestedSkill struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestedSkills returns the fixed onboarding skill catalog.
func SuggestedSkills() []SuggestedSkill {
	return []SuggestedSkill{
		{ID: "medical_terminology", Title: "Medical Terminology", Description: "Understanding of medical terms and ability to transcribe them accurately."},
		{ID: "data_entry", Title: "Data Entry", Description: "Accurate and efficient data entry skills for various formats."},
		{ID: "content_analysis", Title: "Content Analysis", Description: "Ability to analyze and categorize text content effectively."},
		{ID: "audio_processing", Title: "Audio Processing", Description: "Experience with audio recording, editing, and transcription."},
		{ID: "image_annotation", Title: "Image Annotation", Description: "Skills in labeling and categorizing visual content."},
		{ID: "survey_research", Title: "Survey Research", Description: "Experience in conducting and analyzing survey responses."},
	}
}
