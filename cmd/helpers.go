package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/models"
	"github.com/cycleworks/taskcycle/recommender"
)

// withSession loads the session snapshot, runs fn against a manager, and
// persists the state again when fn reports a mutation. Every command that
// touches the session goes through here so the lock/load/save discipline
// stays in one place.
func withSession(fn func(m *cycle.Manager) (changed bool, err error)) error {
	stateStore, err := GetStore()
	if err != nil {
		return fmt.Errorf("could not initialize the state store: %w", err)
	}
	defer func() { _ = stateStore.Close() }()

	state, err := stateStore.Load()
	if err != nil {
		return fmt.Errorf("could not load session state: %w", err)
	}

	m := cycle.NewManager(state)
	changed, err := fn(m)
	if err != nil {
		return err
	}
	if changed {
		if err := stateStore.Save(m.State()); err != nil {
			return fmt.Errorf("could not save session state: %w", err)
		}
	}
	return nil
}

// newRecommenderClient builds a client from configuration. It returns nil
// when no service URL is configured; callers treat that as "recommendations
// disabled" rather than an error.
func newRecommenderClient() (*recommender.Client, error) {
	cfg := GetConfig()
	if cfg.Recommender.URL == "" {
		return nil, nil
	}
	timeout := time.Duration(cfg.Recommender.RequestTimeoutSeconds) * time.Second
	return recommender.NewClient(&recommender.Config{
		BaseURL: cfg.Recommender.URL,
		Timeout: timeout,
	})
}

// fetchRecommendations asks the external service to rank the candidate
// catalog against the participant's history. A nil result with nil error
// means the service is not configured.
func fetchRecommendations(ctx context.Context, m *cycle.Manager, candidates []models.Task) (*models.RecommendationResult, error) {
	client, err := newRecommenderClient()
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}

	skillLevel := 1
	if len(m.State().UserSkills) > 2 {
		skillLevel = 2
	}
	payload := recommender.PayloadFromTasks(candidates, skillLevel)
	return client.Recommend(ctx, m.CompletedNumericIDs(), payload, m.State().UserSkills)
}

// catalogFor maps a routing decision onto the task definitions it installs.
func catalogFor(choice cycle.CatalogChoice) []models.Task {
	switch choice {
	case cycle.CatalogSeed:
		return models.SeedCatalog()
	case cycle.CatalogAdvanced:
		return models.AdvancedCatalog()
	default:
		return nil
	}
}
