package recommender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cycleworks/taskcycle/models"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(&Config{}); err == nil {
		t.Error("NewClient should reject an empty base URL")
	}
}

func TestRecommend_ObjectResponse(t *testing.T) {
	var gotBody request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/recommend" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"recommended": [
				{"task": 8, "score": 0.91, "price": 12.5, "duration": 30, "topic": "medical", "type": "transcription", "top_feature": "topic"},
				{"task": 10, "score": 0.84, "price": 6.0}
			],
			"blocked": [
				{"task": 14, "score": 0.2, "is_fair": false}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	candidates := []TaskPayload{{Task: 8, Skill: 2, Type: "transcription", Price: 12.5, Duration: 30}}
	result, err := client.Recommend(context.Background(), []int{1, 2, 3}, candidates, []string{"data_entry"})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if len(gotBody.TakenTasks) != 3 {
		t.Errorf("taken_tasks not forwarded: %v", gotBody.TakenTasks)
	}
	if len(gotBody.TasksPayload) != 1 || gotBody.TasksPayload[0].Task != 8 {
		t.Errorf("tasks_payload not forwarded: %+v", gotBody.TasksPayload)
	}
	if len(gotBody.UserSkills) != 1 || gotBody.UserSkills[0] != "data_entry" {
		t.Errorf("user_skills not forwarded: %v", gotBody.UserSkills)
	}

	if len(result.Recommended) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(result.Recommended))
	}
	first := result.Recommended[0]
	if first.Task != 8 || first.Topic != "medical" || first.TopFeature != "topic" {
		t.Errorf("first recommendation mangled: %+v", first)
	}
	if first.PricePerHour != 25.0 {
		t.Errorf("price_per_hour for 30min at 12.5 should be 25, got %v", first.PricePerHour)
	}

	second := result.Recommended[1]
	if second.Skill != 1 || second.Duration != 60 || second.Topic != "general" || second.Type != "general" || !second.IsFair {
		t.Errorf("defaults not applied: %+v", second)
	}
	if second.PricePerHour != 6.0 {
		t.Errorf("default duration of 60 makes price_per_hour equal price, got %v", second.PricePerHour)
	}

	if len(result.Blocked) != 1 || result.Blocked[0].IsFair {
		t.Errorf("blocked entries mangled: %+v", result.Blocked)
	}
}

func TestRecommend_BareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"task": 2, "score": 0.7}, {"task": 5, "score": 0.6}]`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	result, err := client.Recommend(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(result.Recommended) != 2 || result.Recommended[0].Task != 2 {
		t.Errorf("bare array not decoded: %+v", result.Recommended)
	}
	if len(result.Blocked) != 0 {
		t.Errorf("bare array response should have no blocked entries: %+v", result.Blocked)
	}
}

func TestRecommend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(&Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.Recommend(context.Background(), []int{}, nil, nil); err == nil {
		t.Error("Recommend should surface non-200 responses as errors")
	}
}

func TestRecommend_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := NewClient(&Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := client.Recommend(ctx, []int{}, nil, nil); err == nil {
		t.Error("Recommend should fail when the context deadline passes")
	}
}

func TestPayloadFromTasks(t *testing.T) {
	tasks := []models.Task{
		{NumID: 1, Type: models.TypeImage, Price: 5, Duration: 10, NumQuestions: 1, Topic: "general"},
		{NumID: 9, Type: models.TypeTranscription, Price: 12.5, Duration: 30, NumQuestions: 3, Topic: "medical"},
	}
	payload := PayloadFromTasks(tasks, 2)
	if len(payload) != 2 {
		t.Fatalf("expected 2 payload entries, got %d", len(payload))
	}
	if payload[0].Task != 1 || payload[0].Skill != 2 || payload[0].Length != 10 {
		t.Errorf("first payload entry mangled: %+v", payload[0])
	}
	if payload[1].Type != "transcription" || payload[1].NumQuestions != 3 || payload[1].Topic != "medical" {
		t.Errorf("second payload entry mangled: %+v", payload[1])
	}
}
