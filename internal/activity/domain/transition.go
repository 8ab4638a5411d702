package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is not legal from the
// activity's current status. The activity is never mutated in that case.
var ErrInvalidTransition = errors.New("invalid status transition")

func transitionError(op string, from Status) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, op, from)
}

// Start moves a fresh or reopened activity into in_progress. Evidence from a
// first completion is kept once the activity has been reopened; otherwise any
// stale evidence is cleared.
func (a *Activity) Start() error {
	if a.Status != StatusTodo && a.Status != StatusReopen {
		return transitionError("start", a.Status)
	}
	a.Status = StatusInProgress
	if !a.Reopened {
		a.Evidence = nil
	}
	return nil
}

// Complete finishes the activity with accepted evidence. Completing a reopened
// activity fills the second evidence slot; the original completion evidence is
// never overwritten.
func (a *Activity) Complete(ev *Evidence) error {
	if a.Status != StatusInProgress && a.Status != StatusReopen {
		return transitionError("complete", a.Status)
	}
	if ev == nil {
		return ErrEvidenceEmpty
	}
	if a.Reopened {
		a.ReopenEvidence = ev
	} else {
		a.Evidence = ev
	}
	a.Status = StatusCompleted
	return nil
}

// Pend parks an in-progress activity with a reason recorded as evidence.
// On a reopened activity the reason goes into the second slot so the first
// completion evidence stays intact.
func (a *Activity) Pend(ev *Evidence) error {
	if a.Status != StatusInProgress {
		return transitionError("pend", a.Status)
	}
	if ev == nil {
		return ErrEvidenceEmpty
	}
	if a.Reopened {
		a.ReopenEvidence = ev
	} else {
		a.Evidence = ev
	}
	a.Status = StatusPending
	return nil
}

// BackToTodo returns an in-progress activity to the backlog without touching evidence
func (a *Activity) BackToTodo() error {
	if a.Status != StatusInProgress {
		return transitionError("move back", a.Status)
	}
	a.Status = StatusTodo
	return nil
}

// Resume picks a pending activity back up and clears the pending reason,
// touching only the slot Pend wrote it to.
func (a *Activity) Resume() error {
	if a.Status != StatusPending {
		return transitionError("resume", a.Status)
	}
	a.Status = StatusInProgress
	if a.Reopened {
		a.ReopenEvidence = nil
	} else {
		a.Evidence = nil
	}
	return nil
}

// Reopen sends a completed activity back for rework. The reopened flag is
// permanent from here on so a later completion lands in the second evidence slot.
func (a *Activity) Reopen() error {
	if a.Status != StatusCompleted {
		return transitionError("reopen", a.Status)
	}
	a.Status = StatusReopen
	a.Reopened = true
	return nil
}
