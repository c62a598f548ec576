package submission

import (
	"context"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// ISubmissionService exposes the two judging entry points and submission
// reads. Run and Submit share one verdict-producing orchestration; the only
// difference is whether the verdict is persisted.
type ISubmissionService interface {
	// Run judges the request and returns an ephemeral summary. Nothing is
	// stored.
	Run(ctx context.Context, req *domain.ExecutionRequest) (*domain.RunSummary, error)

	// Submit judges the request and persists the submission, its per-case
	// results and, on a fully passing verdict, the solved marker, all
	// atomically. Returns the stored submission with nested results.
	Submit(ctx context.Context, userID, problemID string, req *domain.ExecutionRequest) (*domain.Submission, error)

	// ListForUser returns the user's submissions, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.Submission, error)

	// ListForUserAndProblem returns the user's submissions for one problem,
	// newest first.
	ListForUserAndProblem(ctx context.Context, userID, problemID string) ([]domain.Submission, error)

	// CountForProblem returns how many submissions a problem has received.
	CountForProblem(ctx context.Context, problemID string) (int, error)
}
