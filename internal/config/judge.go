package config

import "time"

// JudgeConfig configures the external judge client. The poll loop is bounded
// both by attempt count and by elapsed wall-clock time; MaxInflight caps how
// many orchestrations may hold judge calls concurrently.
type JudgeConfig struct {
	BaseURL         string
	APIKey          string
	PollInterval    time.Duration
	MaxPollAttempts int
	MaxPollElapsed  time.Duration
	MaxInflight     int64
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		BaseURL:         getEnv("JUDGE0_API_URI", "http://localhost:2358"),
		APIKey:          getEnv("JUDGE0_API_KEY", ""),
		PollInterval:    time.Duration(getIntEnv("JUDGE0_POLL_INTERVAL_SEC", 5)) * time.Second,
		MaxPollAttempts: getIntEnv("JUDGE0_MAX_POLL_ATTEMPTS", 24),
		MaxPollElapsed:  time.Duration(getIntEnv("JUDGE0_MAX_POLL_ELAPSED_SEC", 180)) * time.Second,
		MaxInflight:     int64(getIntEnv("JUDGE_MAX_INFLIGHT", 16)),
	}
}
