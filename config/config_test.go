package config

import "testing"

func TestLoadLocal(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load(local) err=%v", err)
	}

	if got := cfg.GetRoundPrecision(); got != 2 {
		t.Errorf("GetRoundPrecision() = %d; want 2", got)
	}
	if got := cfg.GetDistanceMetric(); got != "euclidean" {
		t.Errorf("GetDistanceMetric() = %q; want euclidean", got)
	}
	if seed, ok := cfg.GetRandomSeed(); !ok || seed != 42 {
		t.Errorf("GetRandomSeed() = %d, %v; want 42, true", seed, ok)
	}
	if got := cfg.GetScatterCount(); got != 10 {
		t.Errorf("GetScatterCount() = %d; want 10", got)
	}
	xmin, ymin, xmax, ymax := cfg.GetScatterArea()
	if xmin != 0 || ymin != 0 || xmax != 100 || ymax != 50 {
		t.Errorf("GetScatterArea() = %v, %v, %v, %v; want 0, 0, 100, 50", xmin, ymin, xmax, ymax)
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q; want info", got)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROUND_PRECISION", "0")
	t.Setenv("DISTANCE_METRIC", "manhattan")
	t.Setenv("RANDOM_SEED", "7")
	t.Setenv("SCATTER_COUNT", "3")
	t.Setenv("SCATTER_AREA_XMAX", "7.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("Load(local) err=%v", err)
	}

	if got := cfg.GetRoundPrecision(); got != 0 {
		t.Errorf("GetRoundPrecision() = %d; want 0", got)
	}
	if got := cfg.GetDistanceMetric(); got != "manhattan" {
		t.Errorf("GetDistanceMetric() = %q; want manhattan", got)
	}
	if seed, ok := cfg.GetRandomSeed(); !ok || seed != 7 {
		t.Errorf("GetRandomSeed() = %d, %v; want 7, true", seed, ok)
	}
	if got := cfg.GetScatterCount(); got != 3 {
		t.Errorf("GetScatterCount() = %d; want 3", got)
	}
	if _, _, xmax, ymax := cfg.GetScatterArea(); xmax != 7.5 || ymax != 50 {
		t.Errorf("GetScatterArea() xmax, ymax = %v, %v; want 7.5, 50", xmax, ymax)
	}
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q; want debug", got)
	}
}

func TestMissingConfigFileUsesDefaults(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load(missing) err=%v", err)
	}

	if got := cfg.GetRoundPrecision(); got != defaultRoundPrecision {
		t.Errorf("GetRoundPrecision() = %d; want %d", got, defaultRoundPrecision)
	}
	if got := cfg.GetDistanceMetric(); got != defaultDistanceMetric {
		t.Errorf("GetDistanceMetric() = %q; want %q", got, defaultDistanceMetric)
	}
	if _, ok := cfg.GetRandomSeed(); ok {
		t.Error("GetRandomSeed() reported a seed without config")
	}
}
