package usecase

import (
	"context"
	"log"
	"sync"

	"activityhub-backend/internal/summary/domain"
	"activityhub-backend/pkg/sse"
)

// SummaryJob represents a background request for one report
type SummaryJob struct {
	RequesterID string
	Scope       domain.Scope
	Period      string
	SubjectID   string // member for monthly reports, empty for team
	Force       bool
}

// SummaryWorkerService generates reports in the background and pushes the
// results to the requester over SSE.
type SummaryWorkerService struct {
	summaryUsecase SummaryUsecase
	sseManager     *sse.Manager
	jobQueue       chan SummaryJob
	workerWg       sync.WaitGroup
	workerCount    int
	started        bool
	mu             sync.Mutex
}

// NewSummaryWorkerService creates a new summary worker service
func NewSummaryWorkerService(summaryUsecase SummaryUsecase, sseManager *sse.Manager, workerCount int) *SummaryWorkerService {
	if workerCount <= 0 {
		workerCount = 2
	}

	return &SummaryWorkerService{
		summaryUsecase: summaryUsecase,
		sseManager:     sseManager,
		jobQueue:       make(chan SummaryJob, 100),
		workerCount:    workerCount,
	}
}

// Start starts the workers
func (s *SummaryWorkerService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	for i := 0; i < s.workerCount; i++ {
		s.workerWg.Add(1)
		go s.worker(i)
	}
	s.started = true
	log.Printf("[SummaryWorker] Started %d workers", s.workerCount)
}

// Stop stops all workers gracefully
func (s *SummaryWorkerService) Stop() {
	close(s.jobQueue)
	s.workerWg.Wait()
	log.Println("[SummaryWorker] All workers stopped")
}

// QueueJob adds a job to the queue; returns false when the queue is full
func (s *SummaryWorkerService) QueueJob(job SummaryJob) bool {
	select {
	case s.jobQueue <- job:
		return true
	default:
		return false
	}
}

func (s *SummaryWorkerService) worker(id int) {
	defer s.workerWg.Done()

	for job := range s.jobQueue {
		s.processJob(job)
	}

	log.Printf("[SummaryWorker] Worker %d stopped", id)
}

func (s *SummaryWorkerService) processJob(job SummaryJob) {
	ctx := context.Background()

	var (
		summary *domain.Summary
		err     error
	)
	switch job.Scope {
	case domain.ScopeTeamDaily:
		summary, err = s.summaryUsecase.TeamDaily(ctx, job.Period, job.Force)
	case domain.ScopeMemberMonthly:
		summary, err = s.summaryUsecase.MemberMonthly(ctx, job.SubjectID, job.Period, job.Force)
	default:
		log.Printf("[SummaryWorker] Unknown scope %q", job.Scope)
		return
	}
	if err != nil {
		log.Printf("[SummaryWorker] Failed to generate %s %s: %v", job.Scope, job.Period, err)
		s.sseManager.SendToUser(job.RequesterID, "summary_error", map[string]interface{}{
			"scope":  job.Scope,
			"period": job.Period,
			"error":  err.Error(),
		})
		return
	}

	s.sseManager.SendToUser(job.RequesterID, "summary_update", map[string]interface{}{
		"scope":   job.Scope,
		"period":  job.Period,
		"summary": summary,
	})
	log.Printf("[SummaryWorker] Generated %s summary for %s", job.Scope, job.Period)
}
