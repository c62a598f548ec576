package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/core/services/judging"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService wires the judging orchestrator to persistence and rate
// limiting.
type SubmissionService struct {
	judge   judging.IJudgingService
	repo    secondary.SubmissionRepository
	limiter secondary.SubmitLimiter
	logger  primary.Logger
}

func NewSubmissionService(
	judge judging.IJudgingService,
	repo secondary.SubmissionRepository,
	limiter secondary.SubmitLimiter,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		judge:   judge,
		repo:    repo,
		limiter: limiter,
		logger:  logger,
	}
}

// Run implements ISubmissionService.
func (s *SubmissionService) Run(ctx context.Context, req *domain.ExecutionRequest) (*domain.RunSummary, error) {
	verdict, err := s.judge.Judge(ctx, req)
	if err != nil {
		return nil, err
	}
	return judging.BuildRunSummary(req.LanguageID, verdict), nil
}

// Submit implements ISubmissionService.
func (s *SubmissionService) Submit(ctx context.Context, userID, problemID string, req *domain.ExecutionRequest) (*domain.Submission, error) {
	if problemID == "" {
		return nil, errs.ProblemRequired
	}

	allowed, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		// Limiter trouble must not take judging down.
		s.logger.Warn("Submit limiter unavailable", "userId", userID, "error", err)
	} else if !allowed {
		return nil, errs.TooManySubmissions
	}

	verdict, err := s.judge.Judge(ctx, req)
	if err != nil {
		return nil, err
	}

	sub, err := s.buildRecord(userID, problemID, req, verdict)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Persist(ctx, sub, verdict.AllPassed)
	if err != nil {
		s.logger.Error("Failed to persist submission",
			"userId", userID,
			"problemId", problemID,
			"error", err)
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	s.logger.Info("Submission stored",
		"submissionId", stored.ID,
		"userId", userID,
		"problemId", problemID,
		"status", stored.Status)

	return stored, nil
}

// ListForUser implements ISubmissionService.
func (s *SubmissionService) ListForUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForUserAndProblem implements ISubmissionService.
func (s *SubmissionService) ListForUserAndProblem(ctx context.Context, userID, problemID string) ([]domain.Submission, error) {
	if problemID == "" {
		return nil, errs.ProblemRequired
	}
	return s.repo.ListByUserAndProblem(ctx, userID, problemID)
}

// CountForProblem implements ISubmissionService.
func (s *SubmissionService) CountForProblem(ctx context.Context, problemID string) (int, error) {
	if problemID == "" {
		return 0, errs.ProblemRequired
	}
	return s.repo.CountByProblem(ctx, problemID)
}

// buildRecord shapes a verdict into its persisted form.
func (s *SubmissionService) buildRecord(userID, problemID string, req *domain.ExecutionRequest, verdict *domain.Verdict) (*domain.Submission, error) {
	columns, err := judging.EncodeColumns(verdict.Results)
	if err != nil {
		return nil, err
	}

	sub := domain.NewSubmission(userID, problemID, req.SourceCode, domain.LanguageName(req.LanguageID))
	sub.Stdin = strings.Join(req.Stdin, "\n")
	sub.Stdout = columns.Stdout
	sub.Stderr = columns.Stderr
	sub.CompileOutput = columns.CompileOutput
	sub.Memory = columns.Memory
	sub.Time = columns.Time
	sub.Status = verdict.Status

	sub.TestCaseResults = make([]domain.TestCaseResultRecord, 0, len(verdict.Results))
	for _, r := range verdict.Results {
		record := domain.TestCaseResultRecord{
			ID:            uuid.New(),
			SubmissionID:  sub.ID,
			TestCase:      r.CaseIndex,
			Passed:        r.Passed,
			Stdout:        r.Stdout,
			Expected:      r.Expected,
			Stderr:        r.Stderr,
			CompileOutput: r.CompileOutput,
			Status:        r.Status,
		}
		if r.MemoryKB != nil {
			memory := judging.FormatMemory(*r.MemoryKB)
			record.Memory = &memory
		}
		if r.TimeSec != nil {
			t := judging.FormatTime(*r.TimeSec)
			record.Time = &t
		}
		sub.TestCaseResults = append(sub.TestCaseResults, record)
	}

	return sub, nil
}
