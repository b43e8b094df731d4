package job

import (
	"bytes"
	"testing"
)

func TestRunDefaultConfig(t *testing.T) {
	j, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	var out bytes.Buffer
	j.SetOutput(&out)
	j.Run()

	want := "attempt 0\nattempt 1\nattempt 2\nsample: [0 2 4 6]\n"
	if out.String() != want {
		t.Errorf("Run output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunWithOffsetStage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Name = "shifted"
	cfg.Threshold = 3
	cfg.Factor = 10
	cfg.Delta = 1
	cfg.Retries = 0

	j, err := New(cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	var out bytes.Buffer
	j.SetOutput(&out)
	j.Run()

	want := "shifted: [1 11 21]\n"
	if out.String() != want {
		t.Errorf("Run output %q, want %q", out.String(), want)
	}
}

func TestRunZeroThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 0
	cfg.Retries = 0

	j, err := New(cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	var out bytes.Buffer
	j.SetOutput(&out)
	j.Run()

	if out.String() != "sample: []\n" {
		t.Errorf("Run output %q, want %q", out.String(), "sample: []\n")
	}
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "sample" || cfg.Threshold != 4 || cfg.Factor != 2 || cfg.Retries != DefaultRetries {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Mask != 0xAA || cfg.ChunkSize != 4 {
		t.Errorf("unexpected transform defaults: mask %#x chunk %d", cfg.Mask, cfg.ChunkSize)
	}
}
