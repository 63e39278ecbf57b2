package cycle

// Route names a stage of the experiment flow. The presentation layer maps
// these onto whatever surface it renders.
type Route string

const (
	RouteTasks        Route = "tasks"
	RouteFeedback     Route = "feedback"
	RouteThankYou     Route = "thank-you"
	RouteRecommender1 Route = "recommender1"
	RouteRecommender2 Route = "recommender2"
)

// Fixed routing policy: feedback is collected once three tasks are
// completed, and only while the cycle counter is below the ceiling.
const (
	feedbackThreshold    = 3
	feedbackCycleCeiling = 3
)

// ShouldCollectFeedback decides whether the flow must move to the feedback
// stage. The presentation layer calls this after every mutation that can
// change the completion count.
func ShouldCollectFeedback(completedCount, cycleNumber int, current Route) bool {
	return completedCount >= feedbackThreshold &&
		cycleNumber < feedbackCycleCeiling &&
		current != RouteFeedback
}

// CatalogChoice says which task catalog, if any, the flow installs when
// moving past the feedback stage.
type CatalogChoice int

const (
	CatalogNone CatalogChoice = iota
	CatalogSeed
	CatalogAdvanced
)

// PostFeedback is the routing decision after a cycle has been archived.
type PostFeedback struct {
	Route   Route
	Install CatalogChoice
	// RestartCycle forces the counter back to 1 for a fresh session.
	RestartCycle bool
}

// PostFeedbackRoute decides where the flow goes after ArchiveCycle has
// advanced the counter. cycleNumber is the post-archive value. The second
// cycle branches on the entry point: plain task-list participants are
// done, recommender participants get the advanced catalog and return to
// their recommender variant.
func PostFeedbackRoute(cycleNumber int, entry EntryPoint) PostFeedback {
	switch {
	case cycleNumber <= 1:
		return PostFeedback{Route: RouteThankYou, Install: CatalogSeed}
	case cycleNumber == 2:
		switch entry {
		case EntryRecommender1:
			return PostFeedback{Route: RouteRecommender1, Install: CatalogAdvanced}
		case EntryRecommender2:
			return PostFeedback{Route: RouteRecommender2, Install: CatalogAdvanced}
		default:
			return PostFeedback{Route: RouteThankYou}
		}
	default:
		return PostFeedback{Route: RouteThankYou, Install: CatalogSeed, RestartCycle: true}
	}
}

// ConsultRecommender reports whether the feedback stage should call the
// external recommendation service before archiving. cycleNumber is the
// pre-archive counter; only cycles 1 and 2 consult the service.
func ConsultRecommender(cycleNumber int) bool {
	return cycleNumber == 1 || cycleNumber == 2
}
