package response

import (
	"errors"
	"net/http"

	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

// FromError maps a service error to its HTTP payload. Validation problems
// keep their descriptive message; infrastructure failures get a generic one
// so internal detail never leaks to callers.
func FromError(err error) ErrorMessage {
	code := statusForError(err)
	message := err.Error()
	if code >= http.StatusInternalServerError && !isJudgeError(err) {
		message = "Something went wrong, please try again"
	}
	return ErrorMessage{
		Message:    message,
		StatusCode: code,
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.SourceCodeRequired),
		errors.Is(err, errs.UnsupportedLanguage),
		errors.Is(err, errs.InvalidTestCases),
		errors.Is(err, errs.ProblemRequired),
		errors.Is(err, errs.ReferenceSolutionRequired),
		errors.Is(err, errs.ReferenceSolutionFailed):
		return http.StatusBadRequest
	case errors.Is(err, errs.SubmissionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.TooManySubmissions):
		return http.StatusTooManyRequests
	case errors.Is(err, errs.JudgeUnavailable),
		errors.Is(err, errs.MalformedJudgeResponse):
		return http.StatusBadGateway
	case errors.Is(err, errs.JudgeTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func isJudgeError(err error) bool {
	return errors.Is(err, errs.JudgeUnavailable) ||
		errors.Is(err, errs.JudgeTimeout) ||
		errors.Is(err, errs.MalformedJudgeResponse)
}
