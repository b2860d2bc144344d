package main

import (
	"strings"
	"testing"

	"github.com/mhertz/textlife/utils"
)

func TestPromptValues(t *testing.T) {
	limit, iterations, err := promptValues(strings.NewReader("23000 42"))
	if err != nil {
		t.Fatalf("promptValues failed: %v", err)
	}
	if limit != 23000 || iterations != 42 {
		t.Errorf("got limit=%d iterations=%d, want 23000 and 42", limit, iterations)
	}
}

func TestPromptValuesRejectsOutOfRangeLimit(t *testing.T) {
	if _, _, err := promptValues(strings.NewReader("99999 10")); err == nil {
		t.Error("expected an error for an out-of-range limit")
	}
}

func TestPromptValuesRejectsGarbage(t *testing.T) {
	if _, _, err := promptValues(strings.NewReader("lots of cells please")); err == nil {
		t.Error("expected an error for non-numeric input")
	}
}

func TestNewEngineBackendSelection(t *testing.T) {
	for _, tc := range []struct {
		name          string
		parallel, fft bool
	}{
		{"serial", false, false},
		{"parallel", true, false},
		{"fft", false, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			config := utils.DefaultConfig()
			config.UseParallel = tc.parallel
			config.UseFFT = tc.fft
			if newEngine(config) == nil {
				t.Fatal("newEngine returned nil")
			}
		})
	}
}
