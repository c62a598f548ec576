package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	DebugMode      bool
	HTTPPort       int
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	JudgeConfig    *JudgeConfig
	LimiterConfig  *LimiterConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPPort:       getIntEnv("HTTP_PORT", 8082),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		JudgeConfig:    NewJudgeConfig(),
		LimiterConfig:  NewLimiterConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}
