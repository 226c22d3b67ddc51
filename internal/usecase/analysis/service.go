package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/deepikamahendran/AI-Meeting-Summarizer/errors"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/entities"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/domain/repositories"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/infrastructure/cache"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/analyzer"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/config"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/jobcontext"
)

// Service orchestrates transcript analysis: the synchronous path used by
// ad-hoc requests and the background workers that process queued meetings
type Service interface {
	AnalyzeTranscript(ctx context.Context, transcript string, participants []string) (*entities.MeetingAnalysis, error)
	EnqueueMeeting(ctx context.Context, meeting *entities.Meeting) (*entities.AnalysisJob, error)
	GetMeetingAnalysis(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalysis, error)
	StartWorkerPool(ctx context.Context, workerCount int) error
	StopWorkerPool() error
}

type analysisService struct {
	meetingRepo  repositories.MeetingRepository
	analysisRepo repositories.AnalysisRepository
	jobRepo      repositories.AnalysisJobRepository
	analyzer     analyzer.Service
	cacheStore   cache.Store
	cfg          *config.Config
	logger       *zap.Logger

	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewService constructs a new analysis service
func NewService(
	meetingRepo repositories.MeetingRepository,
	analysisRepo repositories.AnalysisRepository,
	jobRepo repositories.AnalysisJobRepository,
	analyzerSvc analyzer.Service,
	cacheStore cache.Store,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &analysisService{
		meetingRepo:    meetingRepo,
		analysisRepo:   analysisRepo,
		jobRepo:        jobRepo,
		analyzer:       analyzerSvc,
		cacheStore:     cacheStore,
		cfg:            cfg,
		logger:         logger,
		workerStopChan: make(chan struct{}),
	}
}

// AnalyzeTranscript runs the analyzer synchronously, serving repeated
// requests for the same transcript and participants from cache
func (s *analysisService) AnalyzeTranscript(ctx context.Context, transcript string, participants []string) (*entities.MeetingAnalysis, error) {
	if err := s.validateTranscript(transcript); err != nil {
		return nil, err
	}

	key := analysisCacheKey(transcript, participants)
	if cached, ok, err := s.cacheStore.Get(ctx, key); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Analysis cache lookup failed", zap.Error(err))
		}
	} else if ok {
		var result entities.MeetingAnalysis
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			if s.logger != nil {
				s.logger.Info("✅ Analysis served from cache", zap.String("cache_key", key))
			}
			return &result, nil
		}
		// Corrupt entry, drop it and recompute
		s.cacheStore.Delete(ctx, key)
	}

	if err := s.applyProcessingDelay(ctx); err != nil {
		return nil, err
	}

	result := s.analyzer.Analyze(transcript, participants)

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cacheStore.Set(ctx, key, string(raw), s.cfg.Analysis.CacheTTL); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to cache analysis", zap.Error(err))
		}
	}

	return result, nil
}

// EnqueueMeeting stores a meeting and queues a background analysis job
func (s *analysisService) EnqueueMeeting(ctx context.Context, meeting *entities.Meeting) (*entities.AnalysisJob, error) {
	if err := s.validateTranscript(meeting.Transcript); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	job := entities.NewAnalysisJob(meeting.ID)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create analysis job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📋 Analysis job queued",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", meeting.ID.String()),
		)
	}

	return job, nil
}

// GetMeetingAnalysis returns the stored analysis for a meeting, reporting
// pending or failed job state when no result exists yet
func (s *analysisService) GetMeetingAnalysis(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingAnalysis, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return nil, apperrors.ErrMeetingNotFound(meetingID.String())
	}

	record, err := s.analysisRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if record == nil {
		job, err := s.jobRepo.FindByMeetingID(ctx, meetingID)
		if err != nil {
			return nil, fmt.Errorf("failed to get analysis job: %w", err)
		}
		if job != nil {
			switch job.Status {
			case entities.AnalysisJobStatusPending, entities.AnalysisJobStatusProcessing, entities.AnalysisJobStatusRetrying:
				return nil, apperrors.ErrAnalysisPending(meetingID.String())
			case entities.AnalysisJobStatusFailed:
				return nil, apperrors.ErrAnalysisFailed(fmt.Errorf("job %s failed", job.ID))
			}
		}
		return nil, apperrors.ErrAnalysisNotFound(meetingID.String())
	}

	return record.Analysis()
}

// StartWorkerPool starts background workers to process queued jobs
func (s *analysisService) StartWorkerPool(ctx context.Context, workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}

	s.isWorkerPoolRunning = true
	s.workerStopChan = make(chan struct{})

	if s.logger != nil {
		s.logger.Info("🚀 Starting analysis worker pool",
			zap.Int("worker_count", workerCount),
		)
	}

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.analysisWorker(ctx, i)
	}

	// Start cleanup routine for zombie jobs
	s.workerWg.Add(1)
	go s.cleanupZombieJobs(ctx)

	return nil
}

// StopWorkerPool gracefully stops all worker goroutines
func (s *analysisService) StopWorkerPool() error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool not running")
	}

	if s.logger != nil {
		s.logger.Info("🛑 Stopping analysis worker pool...")
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("✅ Analysis worker pool stopped")
	}

	return nil
}

// analysisWorker polls for pending jobs and processes them
func (s *analysisService) analysisWorker(parentCtx context.Context, workerID int) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(s.cfg.Worker.PollInterval)
	defer ticker.Stop()

	if s.logger != nil {
		s.logger.Info("👷 Analysis worker started",
			zap.Int("worker_id", workerID),
		)
	}

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("👷 Analysis worker stopping",
					zap.Int("worker_id", workerID),
				)
			}
			return

		case <-ticker.C:
			jobs, err := s.jobRepo.FindPending(parentCtx, 5)
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to poll jobs",
						zap.Int("worker_id", workerID),
						zap.Error(err),
					)
				}
				continue
			}

			for _, job := range jobs {
				// Atomically claim the job; only one worker succeeds when
				// several see the same pending row
				claimed, err := s.jobRepo.ClaimJob(parentCtx, job.ID,
					job.Status, entities.AnalysisJobStatusProcessing)
				if err != nil {
					if s.logger != nil {
						s.logger.Error("❌ Failed to claim job",
							zap.String("job_id", job.ID.String()),
							zap.Error(err),
						)
					}
					continue
				}
				if !claimed {
					if s.logger != nil {
						s.logger.Info("⏭️ Job already claimed by another worker",
							zap.String("job_id", job.ID.String()),
						)
					}
					continue
				}

				if s.logger != nil {
					s.logger.Info("👷 Worker claimed job",
						zap.Int("worker_id", workerID),
						zap.String("job_id", job.ID.String()),
						zap.String("meeting_id", job.MeetingID.String()),
					)
				}

				jobCtx, cancel := jobcontext.Begin(parentCtx, job.ID, workerID)
				err = jobcontext.Run(jobCtx, func(ctx context.Context) error {
					return s.processJob(ctx, job)
				})
				cancel()

				if err != nil {
					s.handleJobFailure(parentCtx, job, err)
				} else {
					job.MarkAsCompleted()
					if err := s.jobRepo.Update(parentCtx, job); err != nil && s.logger != nil {
						s.logger.Error("❌ Failed to mark job as completed",
							zap.String("job_id", job.ID.String()),
							zap.Error(err),
						)
					}
					if s.logger != nil {
						s.logger.Info("✅ Job completed successfully",
							zap.String("job_id", job.ID.String()),
						)
					}
				}
			}
		}
	}
}

// processJob analyzes the meeting transcript and stores the result
func (s *analysisService) processJob(ctx context.Context, job *entities.AnalysisJob) error {
	meeting, err := s.meetingRepo.FindByID(ctx, job.MeetingID)
	if err != nil {
		return fmt.Errorf("failed to get meeting: %w", err)
	}
	if meeting == nil {
		return fmt.Errorf("meeting not found: %s", job.MeetingID)
	}

	if err := s.applyProcessingDelay(ctx); err != nil {
		return err
	}

	result := s.analyzer.Analyze(meeting.Transcript, meeting.Participants)

	record, err := entities.NewAnalysisRecord(meeting.ID, result)
	if err != nil {
		return fmt.Errorf("failed to build analysis record: %w", err)
	}
	if err := s.analysisRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting analysis saved",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Int("action_items", len(result.ActionItems)),
			zap.Int("tasks", len(result.Tasks)),
			zap.Duration("took", jobcontext.Elapsed(ctx)),
		)
	}

	return nil
}

// handleJobFailure requeues retryable jobs and buries exhausted ones
func (s *analysisService) handleJobFailure(ctx context.Context, job *entities.AnalysisJob, jobErr error) {
	if s.logger != nil {
		s.logger.Error("❌ Job processing failed",
			zap.String("job_id", job.ID.String()),
			zap.Int("retry_count", job.RetryCount),
			zap.Error(jobErr),
		)
	}

	if job.RetryCount < job.MaxRetries {
		job.IncrementRetry(jobErr.Error())
		// Back to pending so any worker can pick it up again
		job.Status = entities.AnalysisJobStatusPending
	} else {
		job.MarkAsFailed(jobErr.Error())
	}

	if err := s.jobRepo.Update(ctx, job); err != nil && s.logger != nil {
		s.logger.Error("❌ Failed to update failed job",
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
	}
}

// cleanupZombieJobs resets jobs stuck in processing status
func (s *analysisService) cleanupZombieJobs(parentCtx context.Context) {
	defer s.workerWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return

		case <-ticker.C:
			cutoff := time.Now().Add(-s.cfg.Worker.ZombieTimeout)
			jobs, err := s.jobRepo.FindStuckJobs(parentCtx, cutoff)
			if err != nil {
				continue
			}

			for _, job := range jobs {
				if s.logger != nil {
					s.logger.Warn("🧹 Cleaning up zombie job",
						zap.String("job_id", job.ID.String()),
						zap.Time("updated_at", job.UpdatedAt),
					)
				}

				// Reset to pending for another attempt
				if _, err := s.jobRepo.ClaimJob(parentCtx, job.ID,
					entities.AnalysisJobStatusProcessing, entities.AnalysisJobStatusPending); err != nil {
					if s.logger != nil {
						s.logger.Error("❌ Failed to reset zombie job",
							zap.String("job_id", job.ID.String()),
							zap.Error(err),
						)
					}
				}
			}
		}
	}
}

// validateTranscript enforces the configured transcript length bounds
func (s *analysisService) validateTranscript(transcript string) error {
	length := len(strings.TrimSpace(transcript))
	if length < s.cfg.Analysis.MinTranscriptLength {
		return apperrors.ErrTranscriptTooShort(length, s.cfg.Analysis.MinTranscriptLength)
	}
	if length > s.cfg.Analysis.MaxTranscriptLength {
		return apperrors.ErrTranscriptTooLong(length, s.cfg.Analysis.MaxTranscriptLength)
	}
	return nil
}

// applyProcessingDelay waits out the configured cosmetic delay
func (s *analysisService) applyProcessingDelay(ctx context.Context) error {
	delay := s.cfg.Analysis.ProcessingDelay
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// analysisCacheKey derives a stable key from the analyzer inputs
func analysisCacheKey(transcript string, participants []string) string {
	h := sha256.New()
	h.Write([]byte(transcript))
	for _, p := range participants {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}
