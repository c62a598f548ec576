package verify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/leetlab-2025.net/internal/adapter/logging"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

// scriptedExecutor replays one result batch per submitted batch, in call
// order.
type scriptedExecutor struct {
	batches   [][]secondary.RawCaseResult
	submitted [][]secondary.BatchItem
	polls     int
}

func (s *scriptedExecutor) SubmitBatch(_ context.Context, items []secondary.BatchItem) ([]string, error) {
	s.submitted = append(s.submitted, items)
	tokens := make([]string, len(items))
	for i := range items {
		tokens[i] = fmt.Sprintf("token-%d-%d", len(s.submitted), i)
	}
	return tokens, nil
}

func (s *scriptedExecutor) PollBatchResults(context.Context, []string) ([]secondary.RawCaseResult, error) {
	batch := s.batches[s.polls]
	s.polls++
	return batch, nil
}

func statusResult(status domain.JudgeStatus) secondary.RawCaseResult {
	return secondary.RawCaseResult{Status: status, StatusDescription: status.String()}
}

var testcases = []domain.TestCaseSpec{
	{Input: "2 3", ExpectedOutput: "5"},
	{Input: "4 6", ExpectedOutput: "10"},
}

func TestVerifyProblemAllSolutionsPass(t *testing.T) {
	executor := &scriptedExecutor{
		batches: [][]secondary.RawCaseResult{
			{statusResult(domain.JudgeStatusAccepted), statusResult(domain.JudgeStatusAccepted)},
			{statusResult(domain.JudgeStatusAccepted), statusResult(domain.JudgeStatusAccepted)},
		},
	}
	svc := NewVerifyService(executor, logging.NewDevelopmentLogger())

	err := svc.VerifyProblem(context.Background(), testcases, map[string]string{
		"PYTHON": "print(sum(map(int, input().split())))",
		"JAVA":   "class Main {}",
	})

	require.NoError(t, err)
	require.Len(t, executor.submitted, 2, "one batch per language")

	// Languages are verified in sorted order, each case carrying its
	// declared output for judge-side comparison.
	assert.Equal(t, domain.LanguageIDJava, executor.submitted[0][0].LanguageID)
	assert.Equal(t, domain.LanguageIDPython, executor.submitted[1][0].LanguageID)
	require.NotNil(t, executor.submitted[0][0].ExpectedOutput)
	assert.Equal(t, "5", *executor.submitted[0][0].ExpectedOutput)
	require.NotNil(t, executor.submitted[0][1].ExpectedOutput)
	assert.Equal(t, "10", *executor.submitted[0][1].ExpectedOutput)
}

func TestVerifyProblemFailingCaseAborts(t *testing.T) {
	executor := &scriptedExecutor{
		batches: [][]secondary.RawCaseResult{
			{statusResult(domain.JudgeStatusAccepted), statusResult(domain.JudgeStatusWrongAnswer)},
		},
	}
	svc := NewVerifyService(executor, logging.NewDevelopmentLogger())

	err := svc.VerifyProblem(context.Background(), testcases, map[string]string{
		"JAVA":   "class Main {}",
		"PYTHON": "print(0)",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ReferenceSolutionFailed)
	assert.Contains(t, err.Error(), "testcase 2")
	assert.Contains(t, err.Error(), "JAVA")
	assert.Len(t, executor.submitted, 1, "remaining languages are skipped after a failure")
}

func TestVerifyProblemNonAcceptedStatusFails(t *testing.T) {
	executor := &scriptedExecutor{
		batches: [][]secondary.RawCaseResult{
			{statusResult(domain.JudgeStatusCompilationError), statusResult(domain.JudgeStatusAccepted)},
		},
	}
	svc := NewVerifyService(executor, logging.NewDevelopmentLogger())

	err := svc.VerifyProblem(context.Background(), testcases, map[string]string{"PYTHON": "x ="})

	assert.ErrorIs(t, err, errs.ReferenceSolutionFailed)
	assert.Contains(t, err.Error(), "Compilation Error")
}

func TestVerifyProblemValidation(t *testing.T) {
	svc := NewVerifyService(&scriptedExecutor{}, logging.NewDevelopmentLogger())
	ctx := context.Background()

	err := svc.VerifyProblem(ctx, nil, map[string]string{"PYTHON": "print(1)"})
	assert.ErrorIs(t, err, errs.InvalidTestCases)

	err = svc.VerifyProblem(ctx, testcases, nil)
	assert.ErrorIs(t, err, errs.ReferenceSolutionRequired)

	err = svc.VerifyProblem(ctx, testcases, map[string]string{"RUST": "fn main() {}"})
	assert.ErrorIs(t, err, errs.UnsupportedLanguage)
}
