package usecase

import (
	"fmt"
	"log"

	activitydomain "activityhub-backend/internal/activity/domain"
	authdomain "activityhub-backend/internal/auth/domain"
	authrepo "activityhub-backend/internal/auth/repository"
	"activityhub-backend/internal/gamification/domain"
	"activityhub-backend/internal/gamification/repository"
)

type gamificationUsecase struct {
	profileRepo repository.ProfileRepository
	userRepo    authrepo.UserRepository
	counter     CompletedCounter
	notifier    Notifier
}

// NewGamificationUsecase creates a new gamification usecase
func NewGamificationUsecase(profileRepo repository.ProfileRepository, userRepo authrepo.UserRepository, counter CompletedCounter) GamificationUsecase {
	return &gamificationUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		counter:     counter,
	}
}

func (u *gamificationUsecase) SetNotifier(n Notifier) {
	u.notifier = n
}

func (u *gamificationUsecase) ApplyCompletion(userID string, activity *activitydomain.Activity) (*ProgressUpdate, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = domain.NewProfile(userID)
	}

	var notifications []ProgressNotification

	profile.Points += activity.Points
	notifications = append(notifications, ProgressNotification{
		Kind:    KindPoints,
		Message: fmt.Sprintf("+%d points for completing \"%s\"", activity.Points, activity.Title),
		Icon:    "✨",
	})

	if n, ok := levelUp(profile); ok {
		notifications = append(notifications, n)
	}

	completed, err := u.counter.CountCompletedByAssignee(userID)
	if err != nil {
		return nil, err
	}

	// Achievement predicates are evaluated against the state before any
	// reward is granted, so one unlock cannot satisfy another in the same pass.
	baselineLevel := profile.Level
	rewards := 0
	for _, a := range domain.Catalog {
		if profile.HasUnlocked(a.ID) {
			continue
		}
		if !a.Satisfied(completed, baselineLevel) {
			continue
		}
		profile.UnlockedAchievementIDs = append(profile.UnlockedAchievementIDs, a.ID)
		rewards += a.Reward
		notifications = append(notifications, ProgressNotification{
			Kind:    KindAchievement,
			Message: fmt.Sprintf("Achievement unlocked: %s (+%d points)", a.Title, a.Reward),
			Icon:    a.Icon,
		})
	}

	if rewards > 0 {
		profile.Points += rewards
		if n, ok := levelUp(profile); ok {
			notifications = append(notifications, n)
		}
	}

	if err := u.profileRepo.Save(profile); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		for _, n := range notifications {
			u.notifier.Notify(userID, n.Kind, n.Message, n.Icon)
		}
	}

	return &ProgressUpdate{Profile: profile, Notifications: notifications}, nil
}

// levelUp advances the level as far as the current points allow and, when at
// least one threshold was crossed, returns a single notification naming the
// final level reached.
func levelUp(profile *domain.Profile) (ProgressNotification, bool) {
	before := profile.Level
	for profile.Level < domain.MaxLevel {
		next, ok := domain.NextThreshold(profile.Level)
		if !ok || profile.Points < next {
			break
		}
		profile.Level++
	}
	if profile.Level == before {
		return ProgressNotification{}, false
	}
	return ProgressNotification{
		Kind:    KindLevelUp,
		Message: fmt.Sprintf("Level up! You reached level %d", profile.Level),
		Icon:    "🚀",
	}, true
}

func (u *gamificationUsecase) ActivityCompleted(userID string, activity *activitydomain.Activity) {
	if _, err := u.ApplyCompletion(userID, activity); err != nil {
		log.Printf("[Gamification] Failed to apply completion for user %s: %v", userID, err)
	}
}

func (u *gamificationUsecase) GetProfile(userID string) (*ProfileView, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = domain.NewProfile(userID)
	}

	completed, err := u.counter.CountCompletedByAssignee(userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{Profile: profile, CompletedCount: completed}
	if next, ok := domain.NextThreshold(profile.Level); ok {
		view.NextLevelPoints = next
	} else {
		view.AtMaxLevel = true
	}
	return view, nil
}

func (u *gamificationUsecase) ListAchievements(userID string) ([]AchievementView, error) {
	profile, err := u.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	views := make([]AchievementView, 0, len(domain.Catalog))
	for _, a := range domain.Catalog {
		views = append(views, AchievementView{
			Achievement: a,
			Unlocked:    profile != nil && profile.HasUnlocked(a.ID),
		})
	}
	return views, nil
}

func (u *gamificationUsecase) Leaderboard() ([]LeaderboardEntry, error) {
	profiles, err := u.profileRepo.ListByPoints()
	if err != nil {
		return nil, err
	}
	users, err := u.userRepo.ListAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*authdomain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	ranked := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		user, ok := byID[p.UserID]
		if !ok {
			continue
		}
		ranked[p.UserID] = true
		entries = append(entries, LeaderboardEntry{
			Rank:   len(entries) + 1,
			User:   user,
			Points: p.Points,
			Level:  p.Level,
		})
	}
	// members with no recorded progress still appear, at the bottom
	for _, user := range users {
		if ranked[user.ID] {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:   len(entries) + 1,
			User:   user,
			Points: 0,
			Level:  1,
		})
	}
	return entries, nil
}
