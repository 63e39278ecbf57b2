package models

// Recommendation is one result item from the external recommendation
// service. Fields the service omits are filled with defaults by the
// recommender client, never assumed present.
type Recommendation struct {
	Task         int     `json:"task"`
	Score        float64 `json:"score"`
	Skill        int     `json:"skill"`
	Length       int     `json:"length"`
	Price        float64 `json:"price"`
	PricePerHour float64 `json:"price_per_hour"`
	NumQuestions int     `json:"num_questions"`
	Duration     int     `json:"duration"`
	Topic        string  `json:"topic"`
	Type         string  `json:"type"`
	IsFair       bool    `json:"is_fair"`
	TopFeature   string  `json:"top_feature,omitempty"`
}

// RecommendationResult is the service's full answer: the ranked tasks to
// offer and the ones it withheld.
type RecommendationResult struct {
	Recommended []Recommendation `json:"recommended"`
	Blocked     []Recommendation `json:"blocked,omitempty"`
}

// RecommendedNumIDs returns the numeric task ids of the recommended set in
// the order the service ranked them.
func (r *RecommendationResult) RecommendedNumIDs() []int {
	if r == nil {
		return nil
	}
	seen := make(map[int]bool, len(r.Recommended))
	ids := make([]int, 0, len(r.Recommended))
	for _, rec := range r.Recommended {
		if !seen[rec.Task] {
			seen[rec.Task] = true
			ids = append(ids, rec.Task)
		}
	}
	return ids
}
