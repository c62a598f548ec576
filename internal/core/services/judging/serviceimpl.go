package judging

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/semaphore"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

var _ IJudgingService = (*JudgingService)(nil)

const defaultMaxInflight = 16

// JudgingService orchestrates one submission's judging round-trip.
type JudgingService struct {
	executor secondary.CodeExecutor
	logger   primary.Logger
	inflight *semaphore.Weighted
}

// NewJudgingService creates a new judging orchestrator. maxInflight bounds
// how many orchestrations may hold outbound judge calls at once.
func NewJudgingService(executor secondary.CodeExecutor, logger primary.Logger, maxInflight int64) *JudgingService {
	if maxInflight <= 0 {
		maxInflight = defaultMaxInflight
	}
	return &JudgingService{
		executor: executor,
		logger:   logger,
		inflight: semaphore.NewWeighted(maxInflight),
	}
}

// Judge implements IJudgingService.
func (s *JudgingService) Judge(ctx context.Context, req *domain.ExecutionRequest) (*domain.Verdict, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.inflight.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire judge slot: %w", err)
	}
	defer s.inflight.Release(1)

	items := make([]secondary.BatchItem, 0, len(req.Stdin))
	for _, stdin := range req.Stdin {
		items = append(items, secondary.BatchItem{
			SourceCode: req.SourceCode,
			LanguageID: req.LanguageID,
			Stdin:      stdin,
		})
	}

	tokens, err := s.executor.SubmitBatch(ctx, items)
	if err != nil {
		s.logger.Error("Batch submit failed", "cases", len(items), "error", err)
		return nil, err
	}

	results, err := s.executor.PollBatchResults(ctx, tokens)
	if err != nil {
		s.logger.Error("Batch poll failed", "cases", len(tokens), "error", err)
		return nil, err
	}

	// The judge contract returns results in submission order. Trust but
	// verify the length; misattributing case results would be worse than
	// failing the request.
	if len(results) != len(req.Stdin) {
		return nil, fmt.Errorf("%w: judged %d cases, expected %d",
			errs.MalformedJudgeResponse, len(results), len(req.Stdin))
	}

	verdict := &domain.Verdict{
		AllPassed: true,
		Results:   make([]domain.PerCaseResult, 0, len(results)),
	}
	for i, raw := range results {
		actual := ""
		if raw.Stdout != nil {
			actual = strings.TrimSpace(*raw.Stdout)
		}
		expected := strings.TrimSpace(req.ExpectedOutput[i])

		passed := actual == expected
		if !passed {
			verdict.AllPassed = false
		}

		verdict.Results = append(verdict.Results, domain.PerCaseResult{
			CaseIndex:     i + 1,
			Passed:        passed,
			Stdout:        actual,
			Expected:      expected,
			Stderr:        raw.Stderr,
			CompileOutput: raw.CompileOutput,
			Status:        raw.StatusDescription,
			MemoryKB:      raw.MemoryKB,
			TimeSec:       raw.TimeSec,
		})
	}

	verdict.Status = domain.VerdictWrongAnswer
	if verdict.AllPassed {
		verdict.Status = domain.VerdictAccepted
	}

	s.logger.Info("Submission judged",
		"cases", len(verdict.Results),
		"status", verdict.Status)

	return verdict, nil
}
