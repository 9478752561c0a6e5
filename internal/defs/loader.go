// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWaveTuning reads wave tuning from a YAML file. Sections missing from the
// file keep their built-in values.
func LoadWaveTuning(path string) (WaveTuning, error) {
	tuning := DefaultWaveTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read wave tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("failed to parse wave tuning YAML: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid wave tuning: %w", err)
	}
	return tuning, nil
}

// Validate checks every curve and spacing for values the generators cannot use.
func (w WaveTuning) Validate() error {
	counts := map[string]Curve{
		"line.count":      w.Line.Count,
		"arc.per_row":     w.Arc.PerRow,
		"dive.per_burst":  w.Dive.PerBurst,
		"columns.columns": w.Columns.Columns,
		"columns.rows":    w.Columns.Rows,
		"pincer.pairs":    w.Pincer.Pairs,
	}
	for name, c := range counts {
		if err := c.validate(name); err != nil {
			return err
		}
		if c.Min < 1 {
			return fmt.Errorf("%s: min must be at least 1, got %v", name, c.Min)
		}
	}
	speeds := map[string]Curve{
		"line.speed":       w.Line.Speed,
		"arc.speed":        w.Arc.Speed,
		"dive.entry_speed": w.Dive.EntrySpeed,
		"columns.speed":    w.Columns.Speed,
		"pincer.speed":     w.Pincer.Speed,
	}
	for name, c := range speeds {
		if err := c.validate(name); err != nil {
			return err
		}
	}

	if w.Arc.Rows < 1 {
		return fmt.Errorf("arc.rows must be at least 1, got %d", w.Arc.Rows)
	}
	if w.Dive.Bursts < 1 {
		return fmt.Errorf("dive.bursts must be at least 1, got %d", w.Dive.Bursts)
	}
	if w.Dive.DelayMin < 0 || w.Dive.DelayMax < w.Dive.DelayMin {
		return fmt.Errorf("dive delay range [%v, %v] is invalid", w.Dive.DelayMin, w.Dive.DelayMax)
	}
	if w.Pincer.Radius <= 0 || w.Pincer.MinRadius <= 0 {
		return fmt.Errorf("pincer radius must be positive (radius %v, min %v)", w.Pincer.Radius, w.Pincer.MinRadius)
	}
	if w.Arc.RowDelay < 0 || w.Dive.BurstDelay < 0 || w.Pincer.PairDelay < 0 {
		return fmt.Errorf("delays between bursts must not be negative")
	}
	return nil
}

func (c Curve) validate(name string) error {
	if c.Min < 0 {
		return fmt.Errorf("%s: min must not be negative, got %v", name, c.Min)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%s: min %v is greater than max %v", name, c.Min, c.Max)
	}
	return nil
}
