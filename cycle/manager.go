// Package cycle implements the task-cycle state machine: the active task
// list, completion and unlock handling, feedback collection, cycle
// archiving and the cycle counter. All mutation of the state tree goes
// through the Manager; callers never write fields directly.
package cycle

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/cycleworks/taskcycle/models"
	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when an operation references a task that is
// not part of the active cycle.
var ErrTaskNotFound = errors.New("task not found")

// ErrTaskLocked is returned when a completion is attempted on a task whose
// prerequisite has not been completed yet.
var ErrTaskLocked = errors.New("task is locked")

// EntryPoint records which flow variant the participant is progressing
// through. It selects the destination after feedback on the second cycle.
type EntryPoint string

const (
	EntryTasks        EntryPoint = "tasks"
	EntryRecommender1 EntryPoint = "recommender1"
	EntryRecommender2 EntryPoint = "recommender2"
)

// State is the full state tree of the survey tool. It is what the store
// persists as one snapshot and what the session export serializes.
type State struct {
	Users            []models.User           `json:"users"`
	Tasks            []models.Task           `json:"tasks"`
	OldTaskCycles    [][]models.Task         `json:"oldTaskCycles"`
	FeedbackHistory  []models.CycleFeedback  `json:"feedbackHistory"`
	UserSkills       []string                `json:"userSkills"`
	RecommendedTasks []models.Recommendation `json:"recommendedTasks"`
	PreferredTasks   []int                   `json:"preferredTasks"`
	EntryPoint       EntryPoint              `json:"entryPoint,omitempty"`
	CurrentCycle     int                     `json:"currentCycle"`
}

// NewState returns a fresh state tree with the seed catalog installed.
func NewState() *State {
	return &State{Tasks: models.SeedCatalog()}
}

// Manager owns a State and exposes the only mutation paths into it.
type Manager struct {
	state *State
}

// NewManager wraps the given state. A nil state starts a fresh session.
func NewManager(state *State) *Manager {
	if state == nil {
		state = NewState()
	}
	return &Manager{state: state}
}

// State returns the managed state tree for reading and persistence.
func (m *Manager) State() *State {
	return m.state
}

// findTask resolves a task reference against the active cycle. The
// reference may be the opaque id or the decimal numeric id.
func (m *Manager) findTask(ref string) (int, error) {
	for i := range m.state.Tasks {
		if m.state.Tasks[i].ID == ref {
			return i, nil
		}
	}
	if numID, err := strconv.Atoi(ref); err == nil {
		for i := range m.state.Tasks {
			if m.state.Tasks[i].NumID == numID {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("task %q: %w", ref, ErrTaskNotFound)
}

// Task returns a copy of the active task matching ref.
func (m *Manager) Task(ref string) (models.Task, error) {
	i, err := m.findTask(ref)
	if err != nil {
		return models.Task{}, err
	}
	return m.state.Tasks[i], nil
}

// Tasks returns a copy of the active task list.
func (m *Manager) Tasks() []models.Task {
	out := make([]models.Task, len(m.state.Tasks))
	copy(out, m.state.Tasks)
	return out
}

// AddUser appends a signup profile. The user list is append-only.
func (m *Manager) AddUser(user models.User) error {
	if err := models.ValidateStruct(user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	m.state.Users = append(m.state.Users, user)
	return nil
}

// SetUserSkills replaces the stored skill selection.
func (m *Manager) SetUserSkills(skills []string) {
	m.state.UserSkills = skills
}

// SetEntryPoint records the flow variant the participant entered through.
func (m *Manager) SetEntryPoint(entry EntryPoint) error {
	switch entry {
	case EntryTasks, EntryRecommender1, EntryRecommender2:
		m.state.EntryPoint = entry
		return nil
	default:
		return fmt.Errorf("unknown entry point %q", entry)
	}
}

// SetRecommendedTasks caches the most recent recommendation set.
func (m *Manager) SetRecommendedTasks(recs []models.Recommendation) {
	m.state.RecommendedTasks = recs
}

// SetCurrentCycle overrides the cycle counter. Normal progression goes
// through ArchiveCycle; this exists for session restarts.
func (m *Manager) SetCurrentCycle(cycle int) {
	m.state.CurrentCycle = cycle
}

// RecordCompletion marks the referenced task completed and attaches the
// submission, then runs the unlock cascade. Re-completing a task simply
// overwrites its submission. Locked tasks cannot be completed.
func (m *Manager) RecordCompletion(ref string, sub *models.Submission) (models.Task, error) {
	i, err := m.findTask(ref)
	if err != nil {
		return models.Task{}, err
	}
	task := &m.state.Tasks[i]
	if task.Locked {
		return models.Task{}, fmt.Errorf("task %q: %w", ref, ErrTaskLocked)
	}
	if sub != nil {
		if err := models.ValidateStruct(*sub); err != nil {
			return models.Task{}, fmt.Errorf("invalid submission: %w", err)
		}
	}
	task.Completed = true
	task.Submission = sub
	m.unlockDependents(*task)
	return *task, nil
}

// unlockDependents clears the locked flag on every task whose prerequisite
// is the just-completed task. The dependency is matched against both the
// numeric id and the opaque id; older snapshots referenced either. This is
// a single pass: a chain A->B->C needs B completed before C unlocks.
func (m *Manager) unlockDependents(done models.Task) {
	numID := strconv.Itoa(done.NumID)
	for i := range m.state.Tasks {
		t := &m.state.Tasks[i]
		if !t.Locked || t.DependsOn == "" {
			continue
		}
		if t.DependsOn == numID || t.DependsOn == done.ID {
			t.Locked = false
		}
	}
}

// AttachFeedback stores a comment and 1-5 rating on the referenced task.
func (m *Manager) AttachFeedback(ref string, fb models.Feedback) error {
	if err := models.ValidateStruct(fb); err != nil {
		return fmt.Errorf("invalid feedback: %w", err)
	}
	i, err := m.findTask(ref)
	if err != nil {
		return err
	}
	m.state.Tasks[i].Feedback = &fb
	return nil
}

// firstThreeUnlocked is the fixed cap on how many recommended tasks a
// participant can access per cycle.
const firstThreeUnlocked = 3

// ReplaceCatalog discards the active task list and installs defs as the
// new cycle's tasks. A task whose numeric id matches an outgoing task
// keeps that task's opaque id so history references stay stable; every
// installed task starts with completion, feedback and submission cleared.
//
// Locking: without a recommendation result each definition's authored
// locked flag is used verbatim. With one, only the first three recommended
// numeric ids are unlocked and everything else is locked, regardless of
// the authored flag.
func (m *Manager) ReplaceCatalog(defs []models.Task, rec *models.RecommendationResult) {
	existing := make(map[int]models.Task, len(m.state.Tasks))
	for _, t := range m.state.Tasks {
		existing[t.NumID] = t
	}

	unlocked := make(map[int]bool, firstThreeUnlocked)
	if rec != nil {
		for i, numID := range rec.RecommendedNumIDs() {
			if i >= firstThreeUnlocked {
				break
			}
			unlocked[numID] = true
		}
	}

	tasks := make([]models.Task, 0, len(defs))
	for _, def := range defs {
		t := def
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if old, ok := existing[t.NumID]; ok {
			t.ID = old.ID
		}
		t.Completed = false
		t.Feedback = nil
		t.Submission = nil
		if rec != nil {
			t.Locked = !unlocked[t.NumID]
		}
		tasks = append(tasks, t)
	}
	m.state.Tasks = tasks

	if rec != nil {
		m.state.RecommendedTasks = rec.Recommended
	}
}

// ArchiveCycle snapshots the active task list onto the cycle history,
// records the cycle's feedback, and advances the cycle counter. The
// counter progression is fixed: 0->1, 1->2, 2->3, anything else wraps to 1.
// Archiving the very first cycle also records the participant's first
// three completed numeric ids as their preferred tasks.
func (m *Manager) ArchiveCycle(general *models.Feedback) {
	archived := make([]models.Task, len(m.state.Tasks))
	for i, t := range m.state.Tasks {
		archived[i] = cloneTask(t)
	}
	m.state.OldTaskCycles = append(m.state.OldTaskCycles, archived)

	var taskFeedbacks []models.FeedbackEntry
	for _, t := range m.state.Tasks {
		if t.Feedback != nil {
			taskFeedbacks = append(taskFeedbacks, models.FeedbackEntry{
				TaskID:  t.ID,
				Comment: t.Feedback.Comment,
				Rating:  t.Feedback.Rating,
			})
		}
	}
	cf := models.CycleFeedback{TaskFeedbacks: taskFeedbacks}
	if general != nil {
		cf.GeneralFeedback = *general
	}
	m.state.FeedbackHistory = append(m.state.FeedbackHistory, cf)

	if m.state.CurrentCycle == 0 {
		var preferred []int
		for _, t := range m.state.Tasks {
			if t.Completed {
				preferred = append(preferred, t.NumID)
				if len(preferred) == firstThreeUnlocked {
					break
				}
			}
		}
		m.state.PreferredTasks = preferred
	}

	switch m.state.CurrentCycle {
	case 0:
		m.state.CurrentCycle = 1
	case 1:
		m.state.CurrentCycle = 2
	case 2:
		m.state.CurrentCycle = 3
	default:
		m.state.CurrentCycle = 1
	}
}

func cloneTask(t models.Task) models.Task {
	c := t
	c.AcceptedFormats = slices.Clone(t.AcceptedFormats)
	c.RequiredSkills = slices.Clone(t.RequiredSkills)
	if t.Submission != nil {
		sub := *t.Submission
		c.Submission = &sub
	}
	if t.Feedback != nil {
		fb := *t.Feedback
		c.Feedback = &fb
	}
	return c
}

// CompletedCount returns how many active tasks are completed. The stage
// router keys off this value.
func (m *Manager) CompletedCount() int {
	n := 0
	for _, t := range m.state.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// CompletedNumericIDs returns the de-duplicated numeric ids of every
// completed task across the active cycle and all archived cycles. These
// are the tasks the external recommender must exclude. The result is
// sorted; callers must not rely on any particular order.
func (m *Manager) CompletedNumericIDs() []int {
	seen := make(map[int]bool)
	for _, t := range m.state.Tasks {
		if t.Completed {
			seen[t.NumID] = true
		}
	}
	for _, old := range m.state.OldTaskCycles {
		for _, t := range old {
			if t.Completed {
				seen[t.NumID] = true
			}
		}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ResetAll starts the study over: cycle history, feedback history, skills,
// recommendation cache and preferred tasks are cleared, and every active
// task loses its completion, feedback and submission. Task identity and
// the user list survive.
func (m *Manager) ResetAll() {
	m.state.OldTaskCycles = nil
	m.state.FeedbackHistory = nil
	m.state.UserSkills = nil
	m.state.RecommendedTasks = nil
	m.state.PreferredTasks = nil
	for i := range m.state.Tasks {
		t := &m.state.Tasks[i]
		t.Completed = false
		t.Feedback = nil
		t.Submission = nil
	}
}

// Export assembles the end-of-session artifact from the current state.
func (m *Manager) Export(version string) models.SessionExport {
	hostname, _ := os.Hostname()
	return models.SessionExport{
		Users:            m.state.Users,
		Tasks:            m.Tasks(),
		OldTaskCycles:    m.state.OldTaskCycles,
		FeedbackHistory:  m.state.FeedbackHistory,
		RecommendedTasks: m.state.RecommendedTasks,
		UserSkills:       m.state.UserSkills,
		Timestamp:        time.Now().UTC(),
		Metadata: models.ExportMetadata{
			Hostname: hostname,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Version:  version,
		},
	}
}
