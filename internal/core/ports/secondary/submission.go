package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// SubmissionRepository persists judged submissions and their derived state.
type SubmissionRepository interface {
	// Persist writes the submission row, its test case result rows and, when
	// solved is true, the create-or-no-op solved marker, all in one
	// transaction. It returns the stored submission re-read with its ordered
	// results.
	Persist(ctx context.Context, sub *domain.Submission, solved bool) (*domain.Submission, error)

	// GetByID returns a submission with its ordered test case results.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListByUser returns the user's submissions, newest first, without
	// test case rows.
	ListByUser(ctx context.Context, userID string) ([]domain.Submission, error)

	// ListByUserAndProblem returns the user's submissions for one problem,
	// newest first.
	ListByUserAndProblem(ctx context.Context, userID, problemID string) ([]domain.Submission, error)

	// CountByProblem returns the total number of submissions for a problem.
	CountByProblem(ctx context.Context, problemID string) (int, error)
}
