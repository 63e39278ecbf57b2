package cycle

import "testing"

func TestShouldCollectFeedback(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		cycle     int
		current   Route
		want      bool
	}{
		{"threshold reached on cycle 0", 3, 0, RouteTasks, true},
		{"more than threshold", 5, 1, RouteTasks, true},
		{"below threshold", 2, 0, RouteTasks, false},
		{"cycle at ceiling", 3, 3, RouteTasks, false},
		{"cycle past ceiling", 3, 4, RouteTasks, false},
		{"already on feedback", 3, 0, RouteFeedback, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldCollectFeedback(tt.completed, tt.cycle, tt.current)
			if got != tt.want {
				t.Errorf("ShouldCollectFeedback(%d, %d, %q) = %v, want %v",
					tt.completed, tt.cycle, tt.current, got, tt.want)
			}
		})
	}
}

func TestPostFeedbackRoute(t *testing.T) {
	tests := []struct {
		name        string
		cycle       int
		entry       EntryPoint
		wantRoute   Route
		wantInstall CatalogChoice
		wantRestart bool
	}{
		{"after first cycle", 1, EntryTasks, RouteThankYou, CatalogSeed, false},
		{"second cycle plain flow", 2, EntryTasks, RouteThankYou, CatalogNone, false},
		{"second cycle recommender1", 2, EntryRecommender1, RouteRecommender1, CatalogAdvanced, false},
		{"second cycle recommender2", 2, EntryRecommender2, RouteRecommender2, CatalogAdvanced, false},
		{"final cycle restarts", 3, EntryRecommender1, RouteThankYou, CatalogSeed, true},
		{"beyond final cycle", 5, EntryTasks, RouteThankYou, CatalogSeed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PostFeedbackRoute(tt.cycle, tt.entry)
			if got.Route != tt.wantRoute {
				t.Errorf("Route = %q, want %q", got.Route, tt.wantRoute)
			}
			if got.Install != tt.wantInstall {
				t.Errorf("Install = %d, want %d", got.Install, tt.wantInstall)
			}
			if got.RestartCycle != tt.wantRestart {
				t.Errorf("RestartCycle = %v, want %v", got.RestartCycle, tt.wantRestart)
			}
		})
	}
}

func TestConsultRecommender(t *testing.T) {
	for cycle, want := range map[int]bool{0: false, 1: true, 2: true, 3: false} {
		if got := ConsultRecommender(cycle); got != want {
			t.Errorf("ConsultRecommender(%d) = %v, want %v", cycle, got, want)
		}
	}
}
