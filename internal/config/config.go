// Package config loads dftinfo defaults from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the analysis defaults. Command-line flags override them.
type Config struct {
	Signal     string  // cos, sin, step or noise
	Frequency  float64 // Hz, for cos and sin
	Samples    int
	SampleRate float64 // Hz
	StepStart  float64 // seconds
	StepLength float64 // seconds
	Seed       int64

	Graph    string // AMPLITUDE, AMPLITUDE_DB or PHASE
	Method   string // naive or fft
	Quadrant bool   // atan2 phases

	LogLevel string
	LogDev   bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Signal:     envStr("DFT_SIGNAL", "cos"),
		Frequency:  envFloat("DFT_FREQUENCY", 10),
		Samples:    envInt("DFT_SAMPLES", 320),
		SampleRate: envFloat("DFT_SAMPLE_RATE", 120),
		StepStart:  envFloat("DFT_STEP_START", 0.5),
		StepLength: envFloat("DFT_STEP_LENGTH", 1),
		Seed:       int64(envInt("DFT_SEED", 1)),

		Graph:    envStr("DFT_GRAPH", "AMPLITUDE"),
		Method:   envStr("DFT_METHOD", "naive"),
		Quadrant: envBool("DFT_QUADRANT_PHASE", false),

		LogLevel: envStr("DFT_LOG_LEVEL", "warn"),
		LogDev:   envBool("DFT_LOG_DEV", false),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
