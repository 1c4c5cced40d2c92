package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")

	contents := `
hash_size_mb = 128
check_termination_nodes = 4096
time_slice_fraction = 0.5
default_move_time = "3s"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HashSizeMB != 128 {
		t.Errorf("HashSizeMB = %d, want 128", cfg.HashSizeMB)
	}
	if cfg.CheckTerminationNodes != 4096 {
		t.Errorf("CheckTerminationNodes = %d, want 4096", cfg.CheckTerminationNodes)
	}
	if cfg.TimeSliceFraction != 0.5 {
		t.Errorf("TimeSliceFraction = %v, want 0.5", cfg.TimeSliceFraction)
	}
	if time.Duration(cfg.DefaultMoveTime) != 3*time.Second {
		t.Errorf("DefaultMoveTime = %v, want 3s", time.Duration(cfg.DefaultMoveTime))
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/engine.toml")
	if err == nil {
		t.Fatal("expected an error loading a nonexistent config file")
	}
}

func TestDefaultIsUsable(t *testing.T) {
	cfg := Default()
	if cfg.HashSizeMB <= 0 {
		t.Error("default HashSizeMB should be positive")
	}
	if cfg.CheckTerminationNodes <= 0 {
		t.Error("default CheckTerminationNodes should be positive")
	}
}
