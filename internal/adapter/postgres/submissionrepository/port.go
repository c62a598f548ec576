// package submissionrepository is the PostgreSQL implementation of the
// submission persistence port.
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
	querybuilder "gitlab.com/leetlab-2025.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*submissionRepo)(nil)

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.SubmissionRepository {
	return &submissionRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// Persist writes the submission row, the solved marker (when solved) and the
// per-case result rows as one transaction, then re-reads the stored
// submission with its ordered results. A failure in any step rolls the whole
// write back; a submission row never exists without its result rows.
func (r *submissionRepo) Persist(ctx context.Context, sub *domain.Submission, solved bool) (*domain.Submission, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op once committed

	if err := r.insertSubmission(ctx, tx, sub); err != nil {
		r.logger.Error("Failed to insert submission", "submissionId", sub.ID, "error", err)
		return nil, err
	}

	if solved {
		if err := r.upsertSolvedMarker(ctx, tx, sub.UserID, sub.ProblemID); err != nil {
			r.logger.Error("Failed to upsert solved marker",
				"userId", sub.UserID,
				"problemId", sub.ProblemID,
				"error", err)
			return nil, err
		}
	}

	if err := r.insertTestCaseResults(ctx, tx, sub.TestCaseResults); err != nil {
		r.logger.Error("Failed to insert test case results", "submissionId", sub.ID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}

	return r.GetByID(ctx, sub.ID)
}

func (r *submissionRepo) insertSubmission(ctx context.Context, tx *sqlx.Tx, sub *domain.Submission) error {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			tbl.ID, tbl.UserID, tbl.ProblemID, tbl.SourceCode, tbl.Language,
			tbl.Stdin, tbl.Stdout, tbl.Stderr, tbl.CompileOutput,
			tbl.Status, tbl.Memory, tbl.Time, tbl.CreatedAt, tbl.UpdatedAt,
		).
		Into(tbl.TableName()).
		Values(
			sub.ID, sub.UserID, sub.ProblemID, sub.SourceCode, sub.Language,
			sub.Stdin, sub.Stdout, sub.Stderr, sub.CompileOutput,
			sub.Status, sub.Memory, sub.Time, sub.CreatedAt, sub.UpdatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// upsertSolvedMarker records the (user, problem) solved fact. Create-or-no-op:
// resubmitting a passing solution neither duplicates the row nor errors.
func (r *submissionRepo) upsertSolvedMarker(ctx context.Context, tx *sqlx.Tx, userID, problemID string) error {
	tbl := domain.GetSolvedMarkerTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.UserID, tbl.ProblemID).
		Into(tbl.TableName()).
		Values(userID, problemID).
		OnConflict(tbl.UserID, tbl.ProblemID).
		DoNothing().
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert solved marker: %w", err)
	}

	return nil
}

func (r *submissionRepo) insertTestCaseResults(ctx context.Context, tx *sqlx.Tx, records []domain.TestCaseResultRecord) error {
	if len(records) == 0 {
		return nil
	}

	tbl := domain.GetTestCaseResultTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			tbl.ID, tbl.SubmissionID, tbl.TestCase, tbl.Passed, tbl.Stdout,
			tbl.Expected, tbl.Stderr, tbl.CompileOutput, tbl.Status,
			tbl.Memory, tbl.Time,
		).
		Into(tbl.TableName())
	for _, rec := range records {
		qb = qb.Values(
			rec.ID, rec.SubmissionID, rec.TestCase, rec.Passed, rec.Stdout,
			rec.Expected, rec.Stderr, rec.CompileOutput, rec.Status,
			rec.Memory, rec.Time,
		)
	}

	query, args := qb.Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert test case results: %w", err)
	}

	return nil
}

// GetByID returns a submission with its results ordered by test case index.
func (r *submissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(submissionColumns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var sub domain.Submission
	if err := r.db.GetContext(ctx, &sub, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.SubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	results, err := r.getTestCaseResults(ctx, id)
	if err != nil {
		return nil, err
	}
	sub.TestCaseResults = results

	return &sub, nil
}

func (r *submissionRepo) getTestCaseResults(ctx context.Context, submissionID uuid.UUID) ([]domain.TestCaseResultRecord, error) {
	tbl := domain.GetTestCaseResultTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			tbl.ID, tbl.SubmissionID, tbl.TestCase, tbl.Passed, tbl.Stdout,
			tbl.Expected, tbl.Stderr, tbl.CompileOutput, tbl.Status,
			tbl.Memory, tbl.Time,
		).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.SubmissionID), submissionID).
		OrderBy(tbl.TestCase, true).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var results []domain.TestCaseResultRecord
	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get test case results: %w", err)
	}

	return results, nil
}

// ListByUser returns the user's submissions, newest first, without result
// rows.
func (r *submissionRepo) ListByUser(ctx context.Context, userID string) ([]domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(submissionColumns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		OrderBy(tbl.CreatedAt, false).
		Build()

	return r.listSubmissions(ctx, query, args)
}

// ListByUserAndProblem returns the user's submissions for one problem,
// newest first.
func (r *submissionRepo) ListByUserAndProblem(ctx context.Context, userID, problemID string) ([]domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(submissionColumns(tbl)...).
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.UserID), userID).
		And(fmt.Sprintf("%s = ?", tbl.ProblemID), problemID).
		OrderBy(tbl.CreatedAt, false).
		Build()

	return r.listSubmissions(ctx, query, args)
}

// CountByProblem returns the total number of submissions for a problem.
func (r *submissionRepo) CountByProblem(ctx context.Context, problemID string) (int, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select("COUNT(*)").
		From(tbl.TableName()).
		Where(fmt.Sprintf("%s = ?", tbl.ProblemID), problemID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	return count, nil
}

func (r *submissionRepo) listSubmissions(ctx context.Context, query string, args []interface{}) ([]domain.Submission, error) {
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var subs []domain.Submission
	if err := r.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return subs, nil
}

func submissionColumns(tbl domain.SubmissionTable) []string {
	return []string{
		tbl.ID, tbl.UserID, tbl.ProblemID, tbl.SourceCode, tbl.Language,
		tbl.Stdin, tbl.Stdout, tbl.Stderr, tbl.CompileOutput,
		tbl.Status, tbl.Memory, tbl.Time, tbl.CreatedAt, tbl.UpdatedAt,
	}
}
