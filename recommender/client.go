// Package recommender is the client for the external recommendation
// service: given the tasks a participant has already taken and the
// candidate catalog, the service returns a ranked, fairness-flagged
// subset. A failed call degrades to an empty result at the call sites;
// it is never fatal to the surrounding flow.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cycleworks/taskcycle/models"
)

// Config holds configuration for the recommendation client.
type Config struct {
	// BaseURL is the service URL (e.g. "http://localhost:8000").
	BaseURL string

	// Timeout bounds each request (default: 30s). The original client had
	// no bound at all; a stalled service left the flow hanging.
	Timeout time.Duration
}

// Client talks to the /api/recommend endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// TaskPayload is one candidate task in the request body. Field casing
// follows the service's schema, which mixes capitalized and snake_case
// keys.
type TaskPayload struct {
	Task         int     `json:"Task"`
	Skill        int     `json:"Skill"`
	Length       int     `json:"Length"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	NumQuestions int     `json:"num_questions"`
	Duration     int     `json:"duration"`
	Topic        string  `json:"topic"`
}

// request is the body for /api/recommend.
type request struct {
	TakenTasks   []int         `json:"taken_tasks"`
	TasksPayload []TaskPayload `json:"tasks_payload"`
	UserSkills   []string      `json:"user_skills,omitempty"`
}

// NewClient creates a recommendation client.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("recommender base URL is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// PayloadFromTasks converts a task catalog to the service's request
// format. skillLevel is the participant's overall level (1-3).
func PayloadFromTasks(tasks []models.Task, skillLevel int) []TaskPayload {
	payload := make([]TaskPayload, 0, len(tasks))
	for _, t := range tasks {
		payload = append(payload, TaskPayload{
			Task:         t.NumID,
			Skill:        skillLevel,
			Length:       t.Duration,
			Type:         string(t.Type),
			Price:        t.Price,
			NumQuestions: t.NumQuestions,
			Duration:     t.Duration,
			Topic:        t.Topic,
		})
	}
	return payload
}

// Recommend asks the service to rank the candidate tasks, excluding the
// already-taken numeric ids. The service answers with either a bare array
// of recommendations or a {recommended, blocked} object; both shapes are
// accepted and missing fields are defaulted.
func (c *Client) Recommend(ctx context.Context, taken []int, candidates []TaskPayload, userSkills []string) (*models.RecommendationResult, error) {
	if taken == nil {
		taken = []int{}
	}
	reqBody := request{
		TakenTasks:   taken,
		TasksPayload: candidates,
		UserSkills:   userSkills,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/api/recommend"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("recommender returned status %d: %s", resp.StatusCode, string(respBody))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return decodeResult(raw)
}

// rawRecommendation mirrors the wire shape with pointers so absent fields
// are distinguishable from zero values.
type rawRecommendation struct {
	Task         int      `json:"task"`
	Score        float64  `json:"score"`
	Skill        *int     `json:"skill"`
	Length       *int     `json:"length"`
	Price        float64  `json:"price"`
	NumQuestions *int     `json:"num_questions"`
	Duration     *int     `json:"duration"`
	Topic        string   `json:"topic"`
	Type         string   `json:"type"`
	IsFair       *bool    `json:"is_fair"`
	TopFeature   *string  `json:"top_feature"`
	PricePerHour *float64 `json:"price_per_hour"`
}

// decodeResult handles both response shapes.
func decodeResult(raw []byte) (*models.RecommendationResult, error) {
	var asArray []rawRecommendation
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return &models.RecommendationResult{Recommended: normalize(asArray)}, nil
	}

	var asObject struct {
		Recommended []rawRecommendation `json:"recommended"`
		Blocked     []rawRecommendation `json:"blocked"`
	}
	if err := json.Unmarshal(raw, &asObject); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &models.RecommendationResult{
		Recommended: normalize(asObject.Recommended),
		Blocked:     normalize(asObject.Blocked),
	}, nil
}

// normalize fills in the documented defaults for absent fields and derives
// price_per_hour when the service did not send one.
func normalize(raws []rawRecommendation) []models.Recommendation {
	if len(raws) == 0 {
		return nil
	}
	recs := make([]models.Recommendation, 0, len(raws))
	for _, r := range raws {
		rec := models.Recommendation{
			Task:         r.Task,
			Score:        r.Score,
			Skill:        1,
			Price:        r.Price,
			NumQuestions: 1,
			Duration:     60,
			Topic:        "general",
			Type:         "general",
			IsFair:       true,
		}
		if r.Skill != nil {
			rec.Skill = *r.Skill
		}
		if r.Length != nil {
			rec.Length = *r.Length
		}
		if r.NumQuestions != nil {
			rec.NumQuestions = *r.NumQuestions
		}
		if r.Duration != nil {
			rec.Duration = *r.Duration
		}
		if r.Topic != "" {
			rec.Topic = r.Topic
		}
		if r.Type != "" {
			rec.Type = r.Type
		}
		if r.IsFair != nil {
			rec.IsFair = *r.IsFair
		}
		if r.TopFeature != nil {
			rec.TopFeature = *r.TopFeature
		}
		if r.PricePerHour != nil {
			rec.PricePerHour = *r.PricePerHour
		} else if rec.Duration > 0 {
			rec.PricePerHour = rec.Price / (float64(rec.Duration) / 60)
		}
		recs = append(recs, rec)
	}
	return recs
}
