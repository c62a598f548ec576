package config

import "time"

// LimiterConfig caps judged submissions per user per fixed window.
type LimiterConfig struct {
	Limit  int
	Window time.Duration
}

func NewLimiterConfig() *LimiterConfig {
	return &LimiterConfig{
		Limit:  getIntEnv("SUBMIT_LIMIT", 10),
		Window: time.Duration(getIntEnv("SUBMIT_LIMIT_WINDOW_SEC", 60)) * time.Second,
	}
}
