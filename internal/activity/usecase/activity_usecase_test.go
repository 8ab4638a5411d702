package usecase

import (
	"errors"
	"fmt"
	"testing"

	"activityhub-backend/internal/activity/domain"
	"activityhub-backend/internal/activity/repository"
)

// stubActivityRepo is an in-memory ActivityRepository for usecase tests
type stubActivityRepo struct {
	activities map[string]*domain.Activity
	nextID     int
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{activities: make(map[string]*domain.Activity)}
}

func (r *stubActivityRepo) Create(activity *domain.Activity) error {
	if activity.ID == "" {
		r.nextID++
		activity.ID = fmt.Sprintf("act-%d", r.nextID)
	}
	copied := *activity
	r.activities[activity.ID] = &copied
	return nil
}

func (r *stubActivityRepo) FindByID(id string) (*domain.Activity, error) {
	activity, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *activity
	return &copied, nil
}

func (r *stubActivityRepo) Find(filter repository.Filter) ([]*domain.Activity, int64, error) {
	var results []*domain.Activity
	for _, a := range r.activities {
		if filter.AssigneeID != "" && a.AssigneeID != filter.AssigneeID {
			continue
		}
		copied := *a
		results = append(results, &copied)
	}
	return results, int64(len(results)), nil
}

func (r *stubActivityRepo) Update(activity *domain.Activity) error {
	copied := *activity
	r.activities[activity.ID] = &copied
	return nil
}

func (r *stubActivityRepo) Delete(id string) error {
	delete(r.activities, id)
	return nil
}

func (r *stubActivityRepo) CountCompletedByAssignee(assigneeID string) (int64, error) {
	var count int64
	for _, a := range r.activities {
		if a.AssigneeID == assigneeID && a.Status == domain.StatusCompleted {
			count++
		}
	}
	return count, nil
}

type recordingSink struct {
	calls []string
}

func (s *recordingSink) ActivityCompleted(userID string, activity *domain.Activity) {
	s.calls = append(s.calls, activity.ID)
}

type recordingBroadcaster struct {
	events []string
}

func (b *recordingBroadcaster) Broadcast(event string, data interface{}) {
	b.events = append(b.events, event)
}

func seedActivity(t *testing.T, repo *stubActivityRepo, userID string, status domain.Status) *domain.Activity {
	t.Helper()
	activity := &domain.Activity{
		AssigneeID: userID,
		Title:      "Ship the release",
		Date:       "2025-10-25",
		Category:   domain.CategoryProject,
		Status:     status,
		Points:     20,
	}
	if err := repo.Create(activity); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return activity
}

func TestCreateActivity_DefaultsPointsByCategory(t *testing.T) {
	uc := NewActivityUsecase(newStubActivityRepo())

	activity, err := uc.CreateActivity("u1", CreateActivityRequest{
		Title:    "Hotfix prod outage",
		Date:     "2025-10-25",
		Category: "urgent",
	})
	if err != nil {
		t.Fatalf("CreateActivity failed: %v", err)
	}
	if activity.Points != 30 {
		t.Errorf("Expected 30 points for urgent, got %d", activity.Points)
	}
	if activity.Status != domain.StatusTodo {
		t.Errorf("Expected new activity in todo, got %s", activity.Status)
	}
}

func TestCreateActivity_RejectsBadDate(t *testing.T) {
	uc := NewActivityUsecase(newStubActivityRepo())

	_, err := uc.CreateActivity("u1", CreateActivityRequest{Title: "x", Date: "25-10-2025"})
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Expected ErrInvalidField for malformed date, got %v", err)
	}
}

func TestUpdateActivity_RejectsBadDateAndTime(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	activity := seedActivity(t, repo, "u1", domain.StatusTodo)

	badDate := "October 25"
	if _, err := uc.UpdateActivity("u1", activity.ID, ActivityUpdateRequest{Date: &badDate}); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Expected ErrInvalidField for malformed date, got %v", err)
	}

	badTime := "9am"
	if _, err := uc.UpdateActivity("u1", activity.ID, ActivityUpdateRequest{Time: &badTime}); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Expected ErrInvalidField for malformed time, got %v", err)
	}

	stored, _ := repo.FindByID(activity.ID)
	if stored.Date != "2025-10-25" || stored.Time != "" {
		t.Errorf("Rejected update must not change the record, got date=%q time=%q", stored.Date, stored.Time)
	}
}

func TestStart_RejectsForeignActivity(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	activity := seedActivity(t, repo, "owner", domain.StatusTodo)

	_, err := uc.Start("intruder", activity.ID)
	if err == nil || err.Error() != "unauthorized" {
		t.Fatalf("Expected unauthorized error, got %v", err)
	}

	saved, _ := repo.FindByID(activity.ID)
	if saved.Status != domain.StatusTodo {
		t.Error("Status must not change for a rejected caller")
	}
}

func TestStart_UnknownActivity(t *testing.T) {
	uc := NewActivityUsecase(newStubActivityRepo())

	_, err := uc.Start("u1", "missing")
	if err == nil || err.Error() != "activity not found" {
		t.Fatalf("Expected activity not found, got %v", err)
	}
}

func TestComplete_PersistsAndNotifiesSinkOnce(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	sink := &recordingSink{}
	uc.SetProgressSink(sink)

	activity := seedActivity(t, repo, "u1", domain.StatusInProgress)

	_, err := uc.Complete("u1", activity.ID, domain.Evidence{Type: domain.EvidenceText, Content: "done"})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	saved, _ := repo.FindByID(activity.ID)
	if saved.Status != domain.StatusCompleted {
		t.Errorf("Expected completed in store, got %s", saved.Status)
	}
	if len(sink.calls) != 1 {
		t.Fatalf("Expected exactly one sink call, got %d", len(sink.calls))
	}
}

func TestComplete_InvalidEvidenceLeavesStatusUntouched(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	sink := &recordingSink{}
	uc.SetProgressSink(sink)

	activity := seedActivity(t, repo, "u1", domain.StatusInProgress)

	_, err := uc.Complete("u1", activity.ID, domain.Evidence{Type: domain.EvidenceText, Content: "  "})
	if !errors.Is(err, domain.ErrEvidenceEmpty) {
		t.Fatalf("Expected ErrEvidenceEmpty, got %v", err)
	}

	saved, _ := repo.FindByID(activity.ID)
	if saved.Status != domain.StatusInProgress {
		t.Error("Rejected evidence must not cause a transition")
	}
	if len(sink.calls) != 0 {
		t.Error("Sink must not fire on a rejected completion")
	}
}

func TestComplete_FromTodoFails(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	activity := seedActivity(t, repo, "u1", domain.StatusTodo)

	_, err := uc.Complete("u1", activity.ID, domain.Evidence{Type: domain.EvidenceText, Content: "done"})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestPend_RequiresReason(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	activity := seedActivity(t, repo, "u1", domain.StatusInProgress)

	_, err := uc.Pend("u1", activity.ID, domain.Evidence{Type: domain.EvidenceText, Content: ""})
	if !errors.Is(err, domain.ErrEvidenceEmpty) {
		t.Fatalf("Expected ErrEvidenceEmpty, got %v", err)
	}

	updated, err := uc.Pend("u1", activity.ID, domain.Evidence{Type: domain.EvidenceText, Content: "waiting on API keys"})
	if err != nil {
		t.Fatalf("Pend failed: %v", err)
	}
	if updated.Status != domain.StatusPending {
		t.Errorf("Expected pending, got %s", updated.Status)
	}
}

func TestDeleteActivity_BroadcastsClosure(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)
	b := &recordingBroadcaster{}
	uc.SetBroadcaster(b)

	activity := seedActivity(t, repo, "u1", domain.StatusCompleted)

	if err := uc.DeleteActivity("u1", activity.ID); err != nil {
		t.Fatalf("DeleteActivity failed: %v", err)
	}
	if saved, _ := repo.FindByID(activity.ID); saved != nil {
		t.Error("Expected activity to be removed")
	}
	if len(b.events) != 1 || b.events[0] != "activity_deleted" {
		t.Fatalf("Expected one activity_deleted broadcast, got %v", b.events)
	}
}

func TestSearch_MatchesTitleAndRanks(t *testing.T) {
	repo := newStubActivityRepo()
	uc := NewActivityUsecase(repo)

	deploy := &domain.Activity{AssigneeID: "u1", Title: "Deploy staging", Date: "2025-10-25", Category: domain.CategoryProject}
	review := &domain.Activity{AssigneeID: "u1", Title: "Review budget sheet", Date: "2025-10-25", Category: domain.CategoryPersonal}
	foreign := &domain.Activity{AssigneeID: "u2", Title: "Deploy production", Date: "2025-10-25", Category: domain.CategoryProject}
	for _, a := range []*domain.Activity{deploy, review, foreign} {
		if err := repo.Create(a); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	results, err := uc.Search("u1", "deploy")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(results))
	}
	if results[0].Title != "Deploy staging" {
		t.Errorf("Expected own deploy activity, got %q", results[0].Title)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	uc := NewActivityUsecase(newStubActivityRepo())

	results, err := uc.Search("u1", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results for empty query, got %d", len(results))
	}
}
