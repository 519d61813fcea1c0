// Package difficulty maps tower depth to the chunk bucket new rows are drawn
// from.
package difficulty

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

var (
	ErrNoSteps     = errors.New("difficulty: no steps")
	ErrEmptyBucket = errors.New("difficulty: empty bucket name")
)

// Selector picks a bucket for a chunk that will start at depth rows.
type Selector interface {
	Bucket(depth int) (string, error)
}

// Step switches to Bucket once depth reaches From.
type Step struct {
	From   int    `yaml:"from"`
	Bucket string `yaml:"bucket"`
}

// Steps is a step function over depth.
type Steps []Step

// NewSteps sorts a copy of steps by From.
func NewSteps(steps []Step) (Steps, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}
	out := append(Steps(nil), steps...)
	for _, s := range out {
		if strings.TrimSpace(s.Bucket) == "" {
			return nil, fmt.Errorf("%w (from %d)", ErrEmptyBucket, s.From)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out, nil
}

func (s Steps) Bucket(depth int) (string, error) {
	if len(s) == 0 {
		return "", ErrNoSteps
	}
	bucket := s[0].Bucket
	for _, step := range s[1:] {
		if depth < step.From {
			break
		}
		bucket = step.Bucket
	}
	return bucket, nil
}

// Script runs a tengo program with the global `depth` set and reads the
// global `bucket` back.
type Script struct {
	compiled *tengo.Compiled
}

func NewScript(src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("depth", 0)
	_ = script.Add("bucket", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("difficulty: compile script: %w", err)
	}
	return &Script{compiled: compiled}, nil
}

func (s *Script) Bucket(depth int) (string, error) {
	if s == nil || s.compiled == nil {
		return "", fmt.Errorf("difficulty: nil script")
	}
	if err := s.compiled.Set("depth", depth); err != nil {
		return "", err
	}
	if err := s.compiled.Set("bucket", ""); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", fmt.Errorf("difficulty: run script: %w", err)
	}
	bucket := strings.TrimSpace(s.compiled.Get("bucket").String())
	if bucket == "" {
		return "", fmt.Errorf("%w (depth %d)", ErrEmptyBucket, depth)
	}
	return bucket, nil
}
