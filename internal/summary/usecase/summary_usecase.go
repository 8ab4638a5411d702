package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	activityrepo "activityhub-backend/internal/activity/repository"
	authrepo "activityhub-backend/internal/auth/repository"
	"activityhub-backend/internal/summary/domain"
	"activityhub-backend/internal/summary/repository"
	"activityhub-backend/pkg/ai"
	"activityhub-backend/pkg/markdown"

	"github.com/google/uuid"
)

// FallbackContent is returned when every AI provider fails; it is never cached
const FallbackContent = "Sorry, the summary could not be generated right now. Please try again later."

type summaryUsecase struct {
	summaryRepo  repository.SummaryRepository
	activityRepo activityrepo.ActivityRepository
	userRepo     authrepo.UserRepository
	summarizer   ai.SummarizerService
}

// NewSummaryUsecase creates a new summary usecase
func NewSummaryUsecase(
	summaryRepo repository.SummaryRepository,
	activityRepo activityrepo.ActivityRepository,
	userRepo authrepo.UserRepository,
	summarizer ai.SummarizerService,
) SummaryUsecase {
	return &summaryUsecase{
		summaryRepo:  summaryRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		summarizer:   summarizer,
	}
}

func (u *summaryUsecase) TeamDaily(ctx context.Context, date string, force bool) (*domain.Summary, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	if !force {
		cached, err := u.summaryRepo.Get(domain.ScopeTeamDaily, date, "")
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	users, err := u.userRepo.ListAll()
	if err != nil {
		return nil, err
	}
	activities, _, err := u.activityRepo.Find(activityrepo.Filter{Date: date})
	if err != nil {
		return nil, err
	}

	report := BuildTeamDailyReport(date, users, activities)
	return u.generate(ctx, domain.ScopeTeamDaily, date, "", TeamDailyPrompt(report))
}

func (u *summaryUsecase) MemberMonthly(ctx context.Context, memberID, month string, force bool) (*domain.Summary, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, errors.New("month must be YYYY-MM")
	}

	user, err := u.userRepo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if !force {
		cached, err := u.summaryRepo.Get(domain.ScopeMemberMonthly, month, memberID)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	activities, _, err := u.activityRepo.Find(activityrepo.Filter{AssigneeID: memberID, Month: month})
	if err != nil {
		return nil, err
	}

	report := BuildMemberMonthlyReport(month, user, activities)
	return u.generate(ctx, domain.ScopeMemberMonthly, month, memberID, MemberMonthlyPrompt(report))
}

// generate runs the model, sanitizes its markdown and caches the result.
// Provider failures degrade to a static message that is returned but not cached,
// so the next request retries generation.
func (u *summaryUsecase) generate(ctx context.Context, scope domain.Scope, period, subjectID, prompt string) (*domain.Summary, error) {
	summary := &domain.Summary{
		ID:          uuid.New().String(),
		Scope:       scope,
		Period:      period,
		SubjectID:   subjectID,
		GeneratedAt: time.Now(),
	}

	if u.summarizer == nil {
		summary.Content = FallbackContent
		summary.HTML = "<p>" + FallbackContent + "</p>"
		return summary, nil
	}

	content, err := u.summarizer.GenerateSummary(ctx, prompt)
	if err != nil {
		log.Printf("[Summary] AI generation failed for %s %s: %v", scope, period, err)
		summary.Content = FallbackContent
		summary.HTML = "<p>" + FallbackContent + "</p>"
		return summary, nil
	}

	html, err := markdown.RenderSanitized(content)
	if err != nil {
		log.Printf("[Summary] Markdown rendering failed for %s %s: %v", scope, period, err)
		html = ""
	}
	summary.Content = content
	summary.HTML = html

	if err := u.summaryRepo.Save(summary); err != nil {
		log.Printf("[Summary] Cache save failed for %s %s: %v", scope, period, err)
	}
	return summary, nil
}
