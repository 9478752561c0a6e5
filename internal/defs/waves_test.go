package defs

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCurves(t *testing.T) {
	tuning := DefaultWaveTuning()
	tests := []struct {
		name  string
		curve Curve
		wave  int
		want  int
	}{
		{"line count wave 1", tuning.Line.Count, 1, 7},
		{"line count capped", tuning.Line.Count, 30, 14},
		{"arc per row wave 3", tuning.Arc.PerRow, 3, 5},
		{"arc per row capped", tuning.Arc.PerRow, 40, 10},
		{"dive per burst wave 6", tuning.Dive.PerBurst, 6, 5},
		{"dive per burst wave 8", tuning.Dive.PerBurst, 8, 5},
		{"dive per burst wave 9", tuning.Dive.PerBurst, 9, 6},
		{"pincer pairs wave 5", tuning.Pincer.Pairs, 5, 3},
	}
	for _, tt := range tests {
		if got := tt.curve.Count(tt.wave); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := tuning.Line.Speed.At(1); math.Abs(got-2.65) > 1e-9 {
		t.Errorf("line speed wave 1 = %v, want 2.65", got)
	}
	if got := tuning.Line.Speed.At(100); got != 6 {
		t.Errorf("line speed capped = %v, want 6", got)
	}
	if got := tuning.Dive.EntrySpeed.At(3); math.Abs(got-2.83) > 1e-9 {
		t.Errorf("dive entry speed wave 3 = %v, want 2.83", got)
	}
	if got := tuning.Dive.EntrySpeed.At(369); math.Abs(got-6.49) > 1e-9 {
		t.Errorf("dive entry speed wave 369 = %v, want 6.49", got)
	}
}

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultWaveTuning().Validate(); err != nil {
		t.Fatal(err)
	}
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waves.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWaveTuningOverrides(t *testing.T) {
	path := writeTuning(t, `
line:
  count: {base: 4, per_wave: 2, min: 4, max: 20}
dive:
  bursts: 2
`)
	tuning, err := LoadWaveTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := tuning.Line.Count.Count(3); got != 10 {
		t.Errorf("line count wave 3 = %d, want 10", got)
	}
	if tuning.Dive.Bursts != 2 {
		t.Errorf("dive bursts = %d, want 2", tuning.Dive.Bursts)
	}
	if tuning.Arc.Rows != 2 {
		t.Errorf("arc rows lost its default: %d", tuning.Arc.Rows)
	}
}

func TestLoadWaveTuningRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"min above max", "line:\n  count: {base: 1, per_wave: 0, min: 9, max: 3}\n", "greater than max"},
		{"zero rows", "arc:\n  rows: 0\n", "arc.rows"},
		{"bad delay range", "dive:\n  delay_min: 1\n  delay_max: 0.5\n", "delay range"},
		{"not yaml", "line: [\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWaveTuning(writeTuning(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestShippedTuningMatchesDefaults(t *testing.T) {
	tuning, err := LoadWaveTuning("../../configs/waves.yaml")
	if err != nil {
		t.Fatalf("shipped tuning: %v", err)
	}
	def := DefaultWaveTuning()
	for wave := 1; wave <= 30; wave++ {
		pairs := []struct {
			name      string
			got, want Curve
		}{
			{"line.count", tuning.Line.Count, def.Line.Count},
			{"arc.per_row", tuning.Arc.PerRow, def.Arc.PerRow},
			{"dive.per_burst", tuning.Dive.PerBurst, def.Dive.PerBurst},
			{"columns.columns", tuning.Columns.Columns, def.Columns.Columns},
			{"columns.rows", tuning.Columns.Rows, def.Columns.Rows},
			{"pincer.pairs", tuning.Pincer.Pairs, def.Pincer.Pairs},
		}
		for _, p := range pairs {
			if p.got.Count(wave) != p.want.Count(wave) {
				t.Errorf("%s wave %d: %d, built-in %d", p.name, wave, p.got.Count(wave), p.want.Count(wave))
			}
		}
	}
}
