package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.InputPath != "complete_data.xlsx" {
		t.Errorf("input_path = %q", c.InputPath)
	}
	if c.SnapshotPath != "cleaned_data.csv" {
		t.Errorf("snapshot_path = %q", c.SnapshotPath)
	}
	if c.ResultsDir != "results" {
		t.Errorf("results_dir = %q", c.ResultsDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NUTRISTAT_RESULTS_DIR", "out")
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ResultsDir != "out" {
		t.Errorf("results_dir = %q, want env override", c.ResultsDir)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutristat.yaml")
	want := &Global{
		InputPath:    "survey.xlsx",
		Sheet:        "Form Responses 1",
		SnapshotPath: "snap.csv",
		ResultsDir:   "res",
		SummaryPath:  "summary.txt",
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}
