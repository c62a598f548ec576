package verify

import (
	"context"
	"fmt"
	"sort"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

var _ IVerifyService = (*VerifyService)(nil)

// VerifyService checks problems for internal consistency using the same
// batch submit/poll primitives as submission judging. Nothing is persisted
// here; the caller only stores the problem when verification returns nil.
type VerifyService struct {
	executor secondary.CodeExecutor
	logger   primary.Logger
}

func NewVerifyService(executor secondary.CodeExecutor, logger primary.Logger) *VerifyService {
	return &VerifyService{
		executor: executor,
		logger:   logger,
	}
}

// VerifyProblem implements IVerifyService.
func (s *VerifyService) VerifyProblem(ctx context.Context, testcases []domain.TestCaseSpec, referenceSolutions map[string]string) error {
	if len(testcases) == 0 {
		return errs.InvalidTestCases
	}
	if len(referenceSolutions) == 0 {
		return errs.ReferenceSolutionRequired
	}

	languages := make([]string, 0, len(referenceSolutions))
	for language := range referenceSolutions {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		if err := s.verifySolution(ctx, language, referenceSolutions[language], testcases); err != nil {
			return err
		}
	}

	return nil
}

func (s *VerifyService) verifySolution(ctx context.Context, language, sourceCode string, testcases []domain.TestCaseSpec) error {
	languageID, ok := domain.LanguageID(language)
	if !ok {
		return fmt.Errorf("%w: %s", errs.UnsupportedLanguage, language)
	}

	// Judge-side comparison: the declared output travels with the case, so
	// the judge reports Accepted only when the solution reproduces it.
	items := make([]secondary.BatchItem, 0, len(testcases))
	for _, tc := range testcases {
		expected := tc.ExpectedOutput
		items = append(items, secondary.BatchItem{
			SourceCode:     sourceCode,
			LanguageID:     languageID,
			Stdin:          tc.Input,
			ExpectedOutput: &expected,
		})
	}

	tokens, err := s.executor.SubmitBatch(ctx, items)
	if err != nil {
		return err
	}

	results, err := s.executor.PollBatchResults(ctx, tokens)
	if err != nil {
		return err
	}

	if len(results) != len(testcases) {
		return fmt.Errorf("%w: verified %d cases, expected %d",
			errs.MalformedJudgeResponse, len(results), len(testcases))
	}

	for i, result := range results {
		if result.Status != domain.JudgeStatusAccepted {
			s.logger.Warn("Reference solution rejected",
				"language", language,
				"testcase", i+1,
				"status", result.StatusDescription)
			return fmt.Errorf("%w: testcase %d failed for language %s (%s)",
				errs.ReferenceSolutionFailed, i+1, language, result.StatusDescription)
		}
	}

	s.logger.Info("Reference solution verified", "language", language, "cases", len(results))
	return nil
}
