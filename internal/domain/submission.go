package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a judged code submission as persisted. The stdout, stderr,
// compile_output, memory and time columns hold JSON-encoded arrays aligned by
// test case index; a column is nil when no case produced a value for it.
// Records are immutable once written.
type Submission struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        string    `db:"user_id" json:"userId"`
	ProblemID     string    `db:"problem_id" json:"problemId"`
	SourceCode    string    `db:"source_code" json:"sourceCode"`
	Language      string    `db:"language" json:"language"`
	Stdin         string    `db:"stdin" json:"stdin"` // newline-joined inputs
	Stdout        *string   `db:"stdout" json:"stdout"`
	Stderr        *string   `db:"stderr" json:"stderr"`
	CompileOutput *string   `db:"compile_output" json:"compileOutput"`
	Status        string    `db:"status" json:"status"`
	Memory        *string   `db:"memory" json:"memory"`
	Time          *string   `db:"time" json:"time"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	TestCaseResults []TestCaseResultRecord `db:"-" json:"testCases,omitempty"`
}

// NewSubmission builds the persisted form of a judged submission.
func NewSubmission(userID, problemID, sourceCode, language string) *Submission {
	now := time.Now()
	return &Submission{
		ID:         uuid.New(),
		UserID:     userID,
		ProblemID:  problemID,
		SourceCode: sourceCode,
		Language:   language,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TestCaseResultRecord is one per-case row owned by a submission. TestCase is
// the 1-based case index; rows for a submission always form the ordered
// sequence 1..K.
type TestCaseResultRecord struct {
	ID            uuid.UUID `db:"id" json:"id"`
	SubmissionID  uuid.UUID `db:"submission_id" json:"submissionId"`
	TestCase      int       `db:"test_case" json:"testCase"`
	Passed        bool      `db:"passed" json:"passed"`
	Stdout        string    `db:"stdout" json:"stdout"`
	Expected      string    `db:"expected" json:"expected"`
	Stderr        *string   `db:"stderr" json:"stderr"`
	CompileOutput *string   `db:"compile_output" json:"compileOutput"`
	Status        string    `db:"status" json:"status"`
	Memory        *string   `db:"memory" json:"memory"`
	Time          *string   `db:"time" json:"time"`
}

// SolvedMarker records that a user has fully solved a problem at least once.
// Written create-or-no-op alongside the triggering submission; never removed.
type SolvedMarker struct {
	UserID    string `db:"user_id" json:"userId"`
	ProblemID string `db:"problem_id" json:"problemId"`
}

type SubmissionTable struct {
	ID            string
	UserID        string
	ProblemID     string
	SourceCode    string
	Language      string
	Stdin         string
	Stdout        string
	Stderr        string
	CompileOutput string
	Status        string
	Memory        string
	Time          string
	CreatedAt     string
	UpdatedAt     string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:            "id",
		UserID:        "user_id",
		ProblemID:     "problem_id",
		SourceCode:    "source_code",
		Language:      "language",
		Stdin:         "stdin",
		Stdout:        "stdout",
		Stderr:        "stderr",
		CompileOutput: "compile_output",
		Status:        "status",
		Memory:        "memory",
		Time:          "time",
		CreatedAt:     "created_at",
		UpdatedAt:     "updated_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

type TestCaseResultTable struct {
	ID            string
	SubmissionID  string
	TestCase      string
	Passed        string
	Stdout        string
	Expected      string
	Stderr        string
	CompileOutput string
	Status        string
	Memory        string
	Time          string
}

func GetTestCaseResultTable() TestCaseResultTable {
	return TestCaseResultTable{
		ID:            "id",
		SubmissionID:  "submission_id",
		TestCase:      "test_case",
		Passed:        "passed",
		Stdout:        "stdout",
		Expected:      "expected",
		Stderr:        "stderr",
		CompileOutput: "compile_output",
		Status:        "status",
		Memory:        "memory",
		Time:          "time",
	}
}

func (TestCaseResultTable) TableName() string {
	return "test_case_results"
}

type SolvedMarkerTable struct {
	UserID    string
	ProblemID string
}

func GetSolvedMarkerTable() SolvedMarkerTable {
	return SolvedMarkerTable{
		UserID:    "user_id",
		ProblemID: "problem_id",
	}
}

func (SolvedMarkerTable) TableName() string {
	return "problems_solved"
}
