package usecase

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"activityhub-backend/internal/activity/domain"
	"activityhub-backend/internal/activity/repository"
	"activityhub-backend/pkg/fuzzy"
)

// activityUsecase implements ActivityUsecase interface
type activityUsecase struct {
	activityRepo repository.ActivityRepository
	progressSink ProgressSink
	broadcaster  Broadcaster
}

// NewActivityUsecase creates a new instance of activityUsecase
func NewActivityUsecase(activityRepo repository.ActivityRepository) ActivityUsecase {
	return &activityUsecase{
		activityRepo: activityRepo,
	}
}

func (u *activityUsecase) SetProgressSink(sink ProgressSink) {
	u.progressSink = sink
}

func (u *activityUsecase) SetBroadcaster(b Broadcaster) {
	u.broadcaster = b
}

func (u *activityUsecase) CreateActivity(userID string, req CreateActivityRequest) (*domain.Activity, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidField)
	}
	if req.Time != "" {
		if _, err := time.Parse("15:04", req.Time); err != nil {
			return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidField)
		}
	}

	category := domain.ParseCategory(req.Category)
	points := req.Points
	if points <= 0 {
		points = domain.DefaultPoints(category)
	}

	activity := &domain.Activity{
		AssigneeID:  userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Category:    category,
		Status:      domain.StatusTodo,
		Points:      points,
	}

	if err := u.activityRepo.Create(activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (u *activityUsecase) GetActivityByID(activityID string) (*domain.Activity, error) {
	activity, err := u.activityRepo.FindByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, errors.New("activity not found")
	}
	return activity, nil
}

func (u *activityUsecase) ListActivities(filter repository.Filter) ([]*domain.Activity, int64, error) {
	return u.activityRepo.Find(filter)
}

// getOwned loads an activity and checks the caller is its assignee
func (u *activityUsecase) getOwned(userID, activityID string) (*domain.Activity, error) {
	activity, err := u.GetActivityByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity.AssigneeID != userID {
		return nil, errors.New("unauthorized")
	}
	return activity, nil
}

func (u *activityUsecase) UpdateActivity(userID, activityID string, updates ActivityUpdateRequest) (*domain.Activity, error) {
	activity, err := u.getOwned(userID, activityID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		activity.Title = *updates.Title
	}
	if updates.Description != nil {
		activity.Description = *updates.Description
	}
	if updates.Date != nil {
		if _, err := time.Parse("2006-01-02", *updates.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidField)
		}
		activity.Date = *updates.Date
	}
	if updates.Time != nil {
		if *updates.Time != "" {
			if _, err := time.Parse("15:04", *updates.Time); err != nil {
				return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidField)
			}
		}
		activity.Time = *updates.Time
	}
	if updates.Category != nil {
		activity.Category = domain.ParseCategory(*updates.Category)
	}

	if err := u.activityRepo.Update(activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// transition applies a state-machine operation and persists the result
func (u *activityUsecase) transition(userID, activityID string, op func(*domain.Activity) error) (*domain.Activity, error) {
	activity, err := u.getOwned(userID, activityID)
	if err != nil {
		return nil, err
	}

	if err := op(activity); err != nil {
		return nil, err
	}

	if err := u.activityRepo.Update(activity); err != nil {
		return nil, err
	}

	return activity, nil
}

func (u *activityUsecase) Start(userID, activityID string) (*domain.Activity, error) {
	return u.transition(userID, activityID, (*domain.Activity).Start)
}

func (u *activityUsecase) BackToTodo(userID, activityID string) (*domain.Activity, error) {
	return u.transition(userID, activityID, (*domain.Activity).BackToTodo)
}

func (u *activityUsecase) Resume(userID, activityID string) (*domain.Activity, error) {
	return u.transition(userID, activityID, (*domain.Activity).Resume)
}

func (u *activityUsecase) Reopen(userID, activityID string) (*domain.Activity, error) {
	return u.transition(userID, activityID, (*domain.Activity).Reopen)
}

func (u *activityUsecase) Complete(userID, activityID string, evidence domain.Evidence) (*domain.Activity, error) {
	// Evidence is validated before any lookup or mutation
	if err := evidence.Validate(); err != nil {
		return nil, err
	}

	activity, err := u.transition(userID, activityID, func(a *domain.Activity) error {
		return a.Complete(&evidence)
	})
	if err != nil {
		return nil, err
	}

	// Gamification runs after the activity row is saved, once per completion
	if u.progressSink != nil {
		u.progressSink.ActivityCompleted(userID, activity)
	}

	return activity, nil
}

func (u *activityUsecase) Pend(userID, activityID string, evidence domain.Evidence) (*domain.Activity, error) {
	if err := evidence.Validate(); err != nil {
		return nil, err
	}

	return u.transition(userID, activityID, func(a *domain.Activity) error {
		return a.Pend(&evidence)
	})
}

func (u *activityUsecase) DeleteActivity(userID, activityID string) error {
	activity, err := u.getOwned(userID, activityID)
	if err != nil {
		return err
	}

	if err := u.activityRepo.Delete(activity.ID); err != nil {
		return err
	}

	// Open detail views anywhere must close for a record that no longer exists
	if u.broadcaster != nil {
		u.broadcaster.Broadcast("activity_deleted", map[string]interface{}{
			"activity_id": activity.ID,
		})
	}

	return nil
}

func (u *activityUsecase) Search(userID, query string) ([]*domain.Activity, error) {
	if query == "" {
		return []*domain.Activity{}, nil
	}

	activities, _, err := u.activityRepo.Find(repository.Filter{AssigneeID: userID})
	if err != nil {
		return nil, err
	}

	type scored struct {
		activity *domain.Activity
		score    float64
	}

	var matches []scored
	for _, a := range activities {
		if !fuzzy.FuzzyMatchActivity(query, a.Title, a.Description, string(a.Category)) {
			continue
		}
		score := fuzzy.CalculateRelevanceScore(query, a.Title, a.Description, string(a.Category))
		matches = append(matches, scored{activity: a, score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]*domain.Activity, len(matches))
	for i, m := range matches {
		results[i] = m.activity
	}

	log.Printf("[ActivityUsecase] Search %q matched %d of %d activities", query, len(results), len(activities))
	return results, nil
}
