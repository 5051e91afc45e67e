// Package headless runs the simulation without a window, driven by a
// scripted sequence of intents.
package headless

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/tilebrawl/shared/intent"
	"gopkg.in/yaml.v3"
)

// Step holds a set of intents for a number of ticks.
type Step struct {
	Intents []string `yaml:"intents"`
	Ticks   int      `yaml:"ticks"`
}

// Script is the YAML shape of an input script.
type Script struct {
	Steps []Step `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}
	return &s, nil
}

// Frames expands the script into one intent set per tick.
func (s *Script) Frames() ([]intent.Set, error) {
	var frames []intent.Set
	for i, step := range s.Steps {
		if step.Ticks <= 0 {
			return nil, fmt.Errorf("step %d: ticks must be positive, got %d", i, step.Ticks)
		}
		var set intent.Set
		for _, name := range step.Intents {
			a, err := intent.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			set = set.With(a)
		}
		for t := 0; t < step.Ticks; t++ {
			frames = append(frames, set)
		}
	}
	return frames, nil
}
