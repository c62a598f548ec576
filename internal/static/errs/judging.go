package errs

import "errors"

// Input validation failures, rejected before any network call.
var (
	SourceCodeRequired  = errors.New("source code is required")
	UnsupportedLanguage = errors.New("language is not supported")
	InvalidTestCases    = errors.New("stdin and expected output must be non-empty arrays of the same length")
)

// External judge failures. These are infrastructure errors, distinct from a
// failing verdict.
var (
	JudgeUnavailable       = errors.New("judge service unavailable")
	JudgeTimeout           = errors.New("judge service did not finish in time")
	MalformedJudgeResponse = errors.New("malformed judge response")
)

var (
	ProblemRequired           = errors.New("problem id is required")
	ReferenceSolutionRequired = errors.New("at least one reference solution is required")
	ReferenceSolutionFailed   = errors.New("reference solution failed")
	TooManySubmissions        = errors.New("too many submissions, slow down")
	SubmissionNotFound        = errors.New("submission not found")
	InternalError             = errors.New("internal error")
)
