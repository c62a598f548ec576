package secondary

import "context"

// SubmitLimiter caps how many judged submissions a user may start per
// window. Implementations fail open: limiter backend trouble must not take
// judging down.
type SubmitLimiter interface {
	Allow(ctx context.Context, userID string) (bool, error)
}
