package domain

// JudgeStatus is a judge-reported submission status, decoded once at the
// execution client boundary from the numeric status id.
type JudgeStatus int

const (
	JudgeStatusInQueue           JudgeStatus = 1
	JudgeStatusProcessing        JudgeStatus = 2
	JudgeStatusAccepted          JudgeStatus = 3
	JudgeStatusWrongAnswer       JudgeStatus = 4
	JudgeStatusTimeLimitExceeded JudgeStatus = 5
	JudgeStatusCompilationError  JudgeStatus = 6

	// 7..12 are the judge's per-signal runtime error variants.
	judgeStatusRuntimeErrorFirst JudgeStatus = 7
	judgeStatusRuntimeErrorLast  JudgeStatus = 12

	JudgeStatusInternalError   JudgeStatus = 13
	JudgeStatusExecFormatError JudgeStatus = 14
)

// Terminal reports whether the status marks a finished run. Anything that is
// not queued or processing is terminal, failures included.
func (s JudgeStatus) Terminal() bool {
	return s != JudgeStatusInQueue && s != JudgeStatusProcessing
}

// RuntimeError reports whether the status is one of the runtime error
// variants.
func (s JudgeStatus) RuntimeError() bool {
	return s >= judgeStatusRuntimeErrorFirst && s <= judgeStatusRuntimeErrorLast
}

func (s JudgeStatus) String() string {
	switch {
	case s == JudgeStatusInQueue:
		return "In Queue"
	case s == JudgeStatusProcessing:
		return "Processing"
	case s == JudgeStatusAccepted:
		return "Accepted"
	case s == JudgeStatusWrongAnswer:
		return "Wrong Answer"
	case s == JudgeStatusTimeLimitExceeded:
		return "Time Limit Exceeded"
	case s == JudgeStatusCompilationError:
		return "Compilation Error"
	case s.RuntimeError():
		return "Runtime Error"
	case s == JudgeStatusInternalError:
		return "Internal Error"
	case s == JudgeStatusExecFormatError:
		return "Exec Format Error"
	default:
		return "Unknown"
	}
}
