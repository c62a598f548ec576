package verify

import (
	"context"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// IVerifyService gates problem creation: a problem's declared test cases
// must be solvable by every one of its reference solutions before the
// problem may be stored.
type IVerifyService interface {
	// VerifyProblem runs each (language, source) reference solution against
	// the problem's own test cases, with the judge performing the output
	// comparison. The first failing case aborts with an error naming the
	// case index and language; nil means every solution passed every case.
	VerifyProblem(ctx context.Context, testcases []domain.TestCaseSpec, referenceSolutions map[string]string) error
}
