package judging

import (
	"context"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// IJudgingService turns one execution request into a verdict. It is the
// single verdict-producing primitive shared by the run and submit paths.
type IJudgingService interface {
	// Judge validates the request, fans its test cases out to the external
	// judge as one batch, polls until every case is terminal and folds the
	// per-case outcomes into a verdict. A failing test case is a verdict,
	// not an error; only validation and judge-infrastructure failures
	// return errors.
	Judge(ctx context.Context, req *domain.ExecutionRequest) (*domain.Verdict, error)
}
