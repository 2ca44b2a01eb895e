package config

import "testing"

var envVars = []string{
	"DFT_SIGNAL", "DFT_FREQUENCY", "DFT_SAMPLES", "DFT_SAMPLE_RATE",
	"DFT_STEP_START", "DFT_STEP_LENGTH", "DFT_SEED", "DFT_GRAPH",
	"DFT_METHOD", "DFT_QUADRANT_PHASE", "DFT_LOG_LEVEL", "DFT_LOG_DEV",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Signal != "cos" {
		t.Errorf("Signal = %q, want cos", cfg.Signal)
	}
	if cfg.Frequency != 10 {
		t.Errorf("Frequency = %v, want 10", cfg.Frequency)
	}
	if cfg.Samples != 320 {
		t.Errorf("Samples = %d, want 320", cfg.Samples)
	}
	if cfg.SampleRate != 120 {
		t.Errorf("SampleRate = %v, want 120", cfg.SampleRate)
	}
	if cfg.StepStart != 0.5 || cfg.StepLength != 1 {
		t.Errorf("Step = %v/%v, want 0.5/1", cfg.StepStart, cfg.StepLength)
	}
	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, want 1", cfg.Seed)
	}
	if cfg.Graph != "AMPLITUDE" {
		t.Errorf("Graph = %q, want AMPLITUDE", cfg.Graph)
	}
	if cfg.Method != "naive" {
		t.Errorf("Method = %q, want naive", cfg.Method)
	}
	if cfg.Quadrant {
		t.Error("Quadrant = true, want false")
	}
	if cfg.LogLevel != "warn" || cfg.LogDev {
		t.Errorf("log = %q/%v, want warn/false", cfg.LogLevel, cfg.LogDev)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DFT_SIGNAL", "step")
	t.Setenv("DFT_SAMPLES", "200")
	t.Setenv("DFT_SAMPLE_RATE", "100")
	t.Setenv("DFT_GRAPH", "PHASE")
	t.Setenv("DFT_QUADRANT_PHASE", "true")

	cfg := Load()

	if cfg.Signal != "step" {
		t.Errorf("Signal = %q, want step", cfg.Signal)
	}
	if cfg.Samples != 200 {
		t.Errorf("Samples = %d, want 200", cfg.Samples)
	}
	if cfg.SampleRate != 100 {
		t.Errorf("SampleRate = %v, want 100", cfg.SampleRate)
	}
	if cfg.Graph != "PHASE" {
		t.Errorf("Graph = %q, want PHASE", cfg.Graph)
	}
	if !cfg.Quadrant {
		t.Error("Quadrant = false, want true")
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DFT_SAMPLES", "many")
	t.Setenv("DFT_SAMPLE_RATE", "fast")
	t.Setenv("DFT_LOG_DEV", "maybe")

	cfg := Load()

	if cfg.Samples != 320 {
		t.Errorf("Samples = %d, want fallback 320", cfg.Samples)
	}
	if cfg.SampleRate != 120 {
		t.Errorf("SampleRate = %v, want fallback 120", cfg.SampleRate)
	}
	if cfg.LogDev {
		t.Error("LogDev = true, want fallback false")
	}
}
