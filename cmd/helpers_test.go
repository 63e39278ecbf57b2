package cmd

import (
	"testing"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/models"
)

func TestCatalogFor(t *testing.T) {
	if got := catalogFor(cycle.CatalogNone); got != nil {
		t.Errorf("CatalogNone should install nothing, got %d tasks", len(got))
	}
	seed := catalogFor(cycle.CatalogSeed)
	if len(seed) != 7 || seed[0].NumID != 1 {
		t.Errorf("CatalogSeed should return the seed catalog, got %d tasks", len(seed))
	}
	advanced := catalogFor(cycle.CatalogAdvanced)
	if len(advanced) != 7 || advanced[0].NumID != 8 {
		t.Errorf("CatalogAdvanced should return the advanced catalog, got %d tasks", len(advanced))
	}
}

func TestLockedNumIDs(t *testing.T) {
	m := cycle.NewManager(nil)
	m.ReplaceCatalog(models.AdvancedCatalog(), nil)

	locked := lockedNumIDs(m)
	// The advanced catalog ships with three authored locks (10, 12, 14).
	for _, want := range []int{10, 12, 14} {
		if !locked[want] {
			t.Errorf("task %d should start locked", want)
		}
	}
	if locked[8] {
		t.Error("task 8 should start unlocked")
	}
}

func TestRecommendedNumIDs(t *testing.T) {
	m := cycle.NewManager(nil)
	if ids := recommendedNumIDs(m); len(ids) != 0 {
		t.Errorf("fresh session has no recommendations, got %v", ids)
	}

	m.SetRecommendedTasks([]models.Recommendation{{Task: 9}, {Task: 11}})
	ids := recommendedNumIDs(m)
	if len(ids) != 2 || ids[0] != 9 || ids[1] != 11 {
		t.Errorf("unexpected recommended ids: %v", ids)
	}
}
