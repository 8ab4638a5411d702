package domain

import (
	"errors"
	"testing"
)

func textEvidence(content string) *Evidence {
	return &Evidence{Type: EvidenceText, Content: content}
}

func TestStart_FromTodo(t *testing.T) {
	a := &Activity{Status: StatusTodo, Evidence: textEvidence("stale")}

	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if a.Status != StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", a.Status)
	}
	if a.Evidence != nil {
		t.Error("Expected prior evidence to be cleared on start")
	}
}

func TestStart_FromCompleted(t *testing.T) {
	a := &Activity{Status: StatusCompleted}

	err := a.Start()
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
	if a.Status != StatusCompleted {
		t.Error("Status must not change on a rejected transition")
	}
}

func TestStart_FromReopenKeepsOriginalEvidence(t *testing.T) {
	original := textEvidence("first completion")
	a := &Activity{Status: StatusReopen, Reopened: true, Evidence: original}

	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if a.Status != StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", a.Status)
	}
	if a.Evidence != original {
		t.Error("Starting a reopened activity must keep the first completion evidence")
	}
}

func TestComplete_FromInProgress(t *testing.T) {
	a := &Activity{Status: StatusInProgress}
	ev := textEvidence("deployed to staging")

	if err := a.Complete(ev); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if a.Status != StatusCompleted {
		t.Errorf("Expected status completed, got %s", a.Status)
	}
	if a.Evidence != ev {
		t.Error("Expected completion evidence to be stored")
	}
	if a.ReopenEvidence != nil {
		t.Error("ReopenEvidence must stay empty on a first completion")
	}
}

func TestComplete_FromTodo(t *testing.T) {
	a := &Activity{Status: StatusTodo}

	if err := a.Complete(textEvidence("x")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestComplete_WithoutEvidence(t *testing.T) {
	a := &Activity{Status: StatusInProgress}

	if err := a.Complete(nil); !errors.Is(err, ErrEvidenceEmpty) {
		t.Fatalf("Expected ErrEvidenceEmpty, got %v", err)
	}
	if a.Status != StatusInProgress {
		t.Error("Status must not change when evidence is missing")
	}
}

func TestPend_RecordsReason(t *testing.T) {
	a := &Activity{Status: StatusInProgress}
	ev := textEvidence("waiting on design review")

	if err := a.Pend(ev); err != nil {
		t.Fatalf("Pend failed: %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("Expected status pending, got %s", a.Status)
	}
	if a.Evidence != ev {
		t.Error("Expected pending reason to be stored as evidence")
	}
}

func TestResume_ClearsPendingReason(t *testing.T) {
	a := &Activity{Status: StatusPending, Evidence: textEvidence("blocked")}

	if err := a.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if a.Status != StatusInProgress {
		t.Errorf("Expected status in_progress, got %s", a.Status)
	}
	if a.Evidence != nil {
		t.Error("Expected pending reason to be cleared on resume")
	}
}

func TestBackToTodo_KeepsEvidence(t *testing.T) {
	a := &Activity{Status: StatusInProgress}

	if err := a.BackToTodo(); err != nil {
		t.Fatalf("BackToTodo failed: %v", err)
	}
	if a.Status != StatusTodo {
		t.Errorf("Expected status todo, got %s", a.Status)
	}
}

func TestReopen_SetsPermanentFlag(t *testing.T) {
	a := &Activity{Status: StatusCompleted, Evidence: textEvidence("first run")}

	if err := a.Reopen(); err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if a.Status != StatusReopen {
		t.Errorf("Expected status reopen, got %s", a.Status)
	}
	if !a.Reopened {
		t.Error("Expected reopened flag to be set")
	}
}

func TestReopen_FromInProgress(t *testing.T) {
	a := &Activity{Status: StatusInProgress}

	if err := a.Reopen(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestComplete_AfterReopenKeepsOriginalEvidence(t *testing.T) {
	original := textEvidence("first completion")
	a := &Activity{Status: StatusCompleted, Evidence: original}

	if err := a.Reopen(); err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	second := textEvidence("fixed the regression")
	if err := a.Complete(second); err != nil {
		t.Fatalf("Second Complete failed: %v", err)
	}

	if a.Evidence != original {
		t.Error("Original completion evidence must never be overwritten")
	}
	if a.ReopenEvidence != second {
		t.Error("Expected second completion to land in ReopenEvidence")
	}
	if a.Status != StatusCompleted {
		t.Errorf("Expected status completed, got %s", a.Status)
	}
}

func TestPendResume_AfterReopenKeepsOriginalEvidence(t *testing.T) {
	original := textEvidence("first completion proof")
	a := &Activity{Status: StatusCompleted, Evidence: original}

	if err := a.Reopen(); err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	reason := textEvidence("blocked on review")
	if err := a.Pend(reason); err != nil {
		t.Fatalf("Pend failed: %v", err)
	}
	if a.Evidence != original {
		t.Error("Pending a reopened activity must not touch the first completion evidence")
	}
	if a.ReopenEvidence != reason {
		t.Error("Expected the pending reason in the second evidence slot")
	}

	if err := a.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if a.Evidence != original {
		t.Error("Resuming a reopened activity must keep the first completion evidence")
	}
	if a.ReopenEvidence != nil {
		t.Error("Expected the pending reason to be cleared on resume")
	}
}

func TestDefaultPoints(t *testing.T) {
	cases := []struct {
		category Category
		want     int
	}{
		{CategoryUrgent, 30},
		{CategoryTeam, 25},
		{CategoryProject, 20},
		{CategoryPersonal, 10},
	}
	for _, c := range cases {
		if got := DefaultPoints(c.category); got != c.want {
			t.Errorf("DefaultPoints(%s) = %d, want %d", c.category, got, c.want)
		}
	}
}
