package cycle

import (
	"errors"
	"slices"
	"testing"

	"github.com/cycleworks/taskcycle/models"
)

func newTask(id string, numID int, opts func(*models.Task)) models.Task {
	t := models.Task{
		ID:    id,
		NumID: numID,
		Name:  "Task " + id,
		Type:  models.TypeDocument,
	}
	if opts != nil {
		opts(&t)
	}
	return t
}

func TestRecordCompletion_UnlockCascade(t *testing.T) {
	state := &State{Tasks: []models.Task{
		newTask("a", 1, nil),
		newTask("b", 2, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "1"
		}),
		newTask("c", 3, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "99"
		}),
	}}
	m := NewManager(state)

	done, err := m.RecordCompletion("a", nil)
	if err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	if !done.Completed {
		t.Error("completed task should be marked completed")
	}

	b, _ := m.Task("b")
	if b.Locked {
		t.Error("task b depends on a and should be unlocked")
	}
	c, _ := m.Task("c")
	if !c.Locked {
		t.Error("task c has an unrelated dependency and must stay locked")
	}
}

func TestRecordCompletion_CascadeMatchesOpaqueID(t *testing.T) {
	// Older snapshots referenced the prerequisite by its opaque id.
	state := &State{Tasks: []models.Task{
		newTask("general-tag-1", 1, nil),
		newTask("general-tag-2", 2, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "general-tag-1"
		}),
	}}
	m := NewManager(state)

	if _, err := m.RecordCompletion("general-tag-1", nil); err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	b, _ := m.Task("general-tag-2")
	if b.Locked {
		t.Error("opaque-id dependency should still unlock")
	}
}

func TestRecordCompletion_NoTransitiveUnlock(t *testing.T) {
	state := &State{Tasks: []models.Task{
		newTask("a", 1, nil),
		newTask("b", 2, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "1"
		}),
		newTask("c", 3, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "2"
		}),
	}}
	m := NewManager(state)

	if _, err := m.RecordCompletion("a", nil); err != nil {
		t.Fatalf("completing a: %v", err)
	}
	c, _ := m.Task("c")
	if !c.Locked {
		t.Fatal("c must stay locked until b is completed")
	}

	if _, err := m.RecordCompletion("b", nil); err != nil {
		t.Fatalf("completing b: %v", err)
	}
	c, _ = m.Task("c")
	if c.Locked {
		t.Error("c should unlock once b is completed")
	}
}

func TestRecordCompletion_NotFoundAndLocked(t *testing.T) {
	state := &State{Tasks: []models.Task{
		newTask("a", 1, func(task *models.Task) { task.Locked = true }),
	}}
	m := NewManager(state)

	if _, err := m.RecordCompletion("missing", nil); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := m.RecordCompletion("a", nil); !errors.Is(err, ErrTaskLocked) {
		t.Errorf("expected ErrTaskLocked, got %v", err)
	}
}

func TestRecordCompletion_OverwritesSubmission(t *testing.T) {
	state := &State{Tasks: []models.Task{newTask("a", 1, nil)}}
	m := NewManager(state)

	first := &models.Submission{Content: "first.txt", Kind: models.SubmissionFile}
	if _, err := m.RecordCompletion("a", first); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	second := &models.Submission{Content: "better answer", Kind: models.SubmissionText}
	task, err := m.RecordCompletion("a", second)
	if err != nil {
		t.Fatalf("re-completion: %v", err)
	}
	if task.Submission == nil || task.Submission.Content != "better answer" {
		t.Errorf("re-completion should overwrite the submission, got %+v", task.Submission)
	}
}

func TestAttachFeedback(t *testing.T) {
	state := &State{Tasks: []models.Task{newTask("a", 1, nil)}}
	m := NewManager(state)

	if err := m.AttachFeedback("a", models.Feedback{Comment: "fine", Rating: 4}); err != nil {
		t.Fatalf("AttachFeedback failed: %v", err)
	}
	task, _ := m.Task("a")
	if task.Feedback == nil || task.Feedback.Rating != 4 {
		t.Errorf("feedback not stored: %+v", task.Feedback)
	}

	if err := m.AttachFeedback("a", models.Feedback{Comment: "x", Rating: 6}); err == nil {
		t.Error("rating above 5 must be rejected")
	}
	if err := m.AttachFeedback("nope", models.Feedback{Comment: "x", Rating: 3}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestReplaceCatalog_PreservesIdentityAndResets(t *testing.T) {
	state := &State{Tasks: []models.Task{
		newTask("stable-id", 1, func(task *models.Task) {
			task.Completed = true
			task.Feedback = &models.Feedback{Comment: "old", Rating: 5}
			task.Submission = &models.Submission{Content: "old.txt", Kind: models.SubmissionFile}
		}),
	}}
	m := NewManager(state)

	m.ReplaceCatalog([]models.Task{
		newTask("new-id", 1, nil),
		newTask("brand-new", 2, nil),
	}, nil)

	tasks := m.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "stable-id" {
		t.Errorf("matching numeric id must preserve the opaque id, got %q", tasks[0].ID)
	}
	if tasks[0].Completed || tasks[0].Feedback != nil || tasks[0].Submission != nil {
		t.Error("replacement must reset completion, feedback and submission")
	}
	if tasks[1].ID != "brand-new" {
		t.Errorf("unmatched task keeps its authored id, got %q", tasks[1].ID)
	}
}

func TestReplaceCatalog_FirstThreeRecommendedUnlocked(t *testing.T) {
	m := NewManager(&State{})

	defs := []models.Task{
		newTask("t1", 1, nil),
		newTask("t2", 2, nil),
		newTask("t3", 3, nil),
		newTask("t4", 4, nil),
		newTask("t5", 5, nil),
		newTask("t6", 6, nil), // not recommended, authored unlocked
	}
	rec := &models.RecommendationResult{Recommended: []models.Recommendation{
		{Task: 5}, {Task: 3}, {Task: 1}, {Task: 2}, {Task: 4},
	}}

	m.ReplaceCatalog(defs, rec)

	wantUnlocked := map[int]bool{5: true, 3: true, 1: true}
	for _, task := range m.Tasks() {
		if wantUnlocked[task.NumID] && task.Locked {
			t.Errorf("task %d is in the first three recommendations and must be unlocked", task.NumID)
		}
		if !wantUnlocked[task.NumID] && !task.Locked {
			t.Errorf("task %d must be locked", task.NumID)
		}
	}
	if len(m.State().RecommendedTasks) != 5 {
		t.Errorf("recommendation cache not stored, got %d entries", len(m.State().RecommendedTasks))
	}
}

func TestReplaceCatalog_AuthoredLocksWithoutRecommendations(t *testing.T) {
	m := NewManager(&State{})
	m.ReplaceCatalog([]models.Task{
		newTask("t1", 1, nil),
		newTask("t2", 2, func(task *models.Task) {
			task.Locked = true
			task.DependsOn = "1"
		}),
	}, nil)

	tasks := m.Tasks()
	if tasks[0].Locked {
		t.Error("authored unlocked task must stay unlocked")
	}
	if !tasks[1].Locked {
		t.Error("authored locked task must stay locked")
	}
}

func TestArchiveCycle_CounterProgression(t *testing.T) {
	m := NewManager(&State{Tasks: models.SeedCatalog()})

	want := []int{1, 2, 3, 1}
	for i, expect := range want {
		m.ArchiveCycle(nil)
		if got := m.State().CurrentCycle; got != expect {
			t.Fatalf("archive %d: cycle = %d, want %d", i+1, got, expect)
		}
	}
	if len(m.State().OldTaskCycles) != 4 {
		t.Errorf("expected 4 archived cycles, got %d", len(m.State().OldTaskCycles))
	}
}

func TestArchiveCycle_CollectsFeedbackAndPreferred(t *testing.T) {
	state := &State{Tasks: models.SeedCatalog()}
	m := NewManager(state)

	for _, ref := range []string{"1", "2", "4"} {
		if _, err := m.RecordCompletion(ref, nil); err != nil {
			t.Fatalf("completing %s: %v", ref, err)
		}
	}
	if err := m.AttachFeedback("1", models.Feedback{Comment: "easy", Rating: 5}); err != nil {
		t.Fatalf("AttachFeedback: %v", err)
	}

	m.ArchiveCycle(&models.Feedback{Comment: "good round", Rating: 4})

	if len(state.FeedbackHistory) != 1 {
		t.Fatalf("expected 1 feedback record, got %d", len(state.FeedbackHistory))
	}
	cf := state.FeedbackHistory[0]
	if len(cf.TaskFeedbacks) != 1 || cf.TaskFeedbacks[0].Comment != "easy" {
		t.Errorf("per-task feedback not extracted: %+v", cf.TaskFeedbacks)
	}
	if cf.GeneralFeedback.Rating != 4 {
		t.Errorf("general feedback not stored: %+v", cf.GeneralFeedback)
	}
	if !slices.Equal(state.PreferredTasks, []int{1, 2, 4}) {
		t.Errorf("preferred tasks = %v, want [1 2 4]", state.PreferredTasks)
	}
}

func TestArchiveCycle_DefaultGeneralFeedback(t *testing.T) {
	m := NewManager(&State{Tasks: models.SeedCatalog()})
	m.ArchiveCycle(nil)

	cf := m.State().FeedbackHistory[0]
	if cf.GeneralFeedback.Comment != "" || cf.GeneralFeedback.Rating != 0 {
		t.Errorf("missing general feedback must archive as empty, got %+v", cf.GeneralFeedback)
	}
}

func TestArchiveCycle_SnapshotIsImmutable(t *testing.T) {
	m := NewManager(&State{Tasks: models.SeedCatalog()})
	if _, err := m.RecordCompletion("1", &models.Submission{Content: "a.jpg", Kind: models.SubmissionFile}); err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}
	m.ArchiveCycle(nil)

	// Mutating the active set after archiving must not touch the snapshot.
	m.ReplaceCatalog(models.SeedCatalog(), nil)
	archived := m.State().OldTaskCycles[0]
	if !archived[0].Completed {
		t.Error("archived snapshot lost its completion state")
	}
	if archived[0].Submission == nil || archived[0].Submission.Content != "a.jpg" {
		t.Error("archived snapshot lost its submission")
	}
}

func TestCompletedNumericIDs_Deduplicated(t *testing.T) {
	m := NewManager(&State{Tasks: models.SeedCatalog()})

	if _, err := m.RecordCompletion("1", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RecordCompletion("2", nil); err != nil {
		t.Fatal(err)
	}
	m.ArchiveCycle(nil)

	// Reinstall the same catalog and complete task 1 again.
	m.ReplaceCatalog(models.SeedCatalog(), nil)
	if _, err := m.RecordCompletion("1", nil); err != nil {
		t.Fatal(err)
	}

	got := m.CompletedNumericIDs()
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("CompletedNumericIDs = %v, want [1 2]", got)
	}
}

func TestResetAll_UsersSurvive(t *testing.T) {
	state := NewState()
	m := NewManager(state)

	if err := m.AddUser(models.User{Username: "ada", Country: "uk", MainLanguage: models.LangEnglish}); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	m.SetUserSkills([]string{"data_entry"})
	if _, err := m.RecordCompletion("1", &models.Submission{Content: "x.jpg", Kind: models.SubmissionFile}); err != nil {
		t.Fatal(err)
	}
	m.ArchiveCycle(nil)
	m.SetRecommendedTasks([]models.Recommendation{{Task: 3}})

	m.ResetAll()

	if len(state.Users) != 1 {
		t.Error("users must survive a reset")
	}
	if len(state.OldTaskCycles) != 0 || len(state.FeedbackHistory) != 0 {
		t.Error("histories must be cleared")
	}
	if state.UserSkills != nil || state.RecommendedTasks != nil {
		t.Error("skills and recommendation cache must be cleared")
	}
	for _, task := range state.Tasks {
		if task.Completed || task.Feedback != nil || task.Submission != nil {
			t.Errorf("task %s was not reset", task.ID)
		}
	}
	if state.Tasks[0].ID != "general-tag-1" {
		t.Error("task identity must survive a reset")
	}
}

func TestEndToEndSeedScenario(t *testing.T) {
	m := NewManager(NewState())

	if len(m.Tasks()) != 7 {
		t.Fatalf("seed catalog should have 7 tasks, got %d", len(m.Tasks()))
	}
	for _, task := range m.Tasks() {
		if task.Locked {
			t.Fatalf("seed task %s should be unlocked", task.ID)
		}
	}

	for _, ref := range []string{"1", "2", "3"} {
		if _, err := m.RecordCompletion(ref, nil); err != nil {
			t.Fatalf("completing %s: %v", ref, err)
		}
	}

	got := m.CompletedNumericIDs()
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("CompletedNumericIDs = %v, want [1 2 3]", got)
	}

	if !ShouldCollectFeedback(m.CompletedCount(), m.State().CurrentCycle, RouteTasks) {
		t.Error("three completions on cycle 0 must route to feedback")
	}
}

func TestAddUser_Validation(t *testing.T) {
	m := NewManager(NewState())

	tests := []struct {
		name    string
		user    models.User
		wantErr bool
	}{
		{
			name: "valid",
			user: models.User{Username: "ada", Country: "uk", MainLanguage: models.LangEnglish},
		},
		{
			name:    "short username",
			user:    models.User{Username: "a", Country: "uk", MainLanguage: models.LangEnglish},
			wantErr: true,
		},
		{
			name:    "unknown language",
			user:    models.User{Username: "ada", Country: "uk", MainLanguage: "klingon"},
			wantErr: true,
		},
		{
			name:    "invalid sex value",
			user:    models.User{Username: "ada", Country: "uk", Sex: "other", MainLanguage: models.LangEnglish},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.AddUser(tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("AddUser() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
