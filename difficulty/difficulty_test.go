package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsBucket(t *testing.T) {
	steps, err := NewSteps([]Step{
		{From: 300, Bucket: "hard"},
		{From: 0, Bucket: "easy"},
		{From: 120, Bucket: "medium"},
	})
	require.NoError(t, err)

	cases := []struct {
		depth int
		want  string
	}{
		{-5, "easy"},
		{0, "easy"},
		{119, "easy"},
		{120, "medium"},
		{299, "medium"},
		{300, "hard"},
		{10000, "hard"},
	}
	for _, c := range cases {
		got, err := steps.Bucket(c.depth)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "depth %d", c.depth)
	}
}

func TestNewStepsValidation(t *testing.T) {
	_, err := NewSteps(nil)
	assert.ErrorIs(t, err, ErrNoSteps)

	_, err = NewSteps([]Step{{From: 0, Bucket: " "}})
	assert.ErrorIs(t, err, ErrEmptyBucket)
}

const curve = `
bucket = "easy"
if depth >= 50 {
	bucket = "medium"
}
if depth >= 100 {
	bucket = "hard"
}
`

func TestScriptBucket(t *testing.T) {
	s, err := NewScript([]byte(curve))
	require.NoError(t, err)

	for depth, want := range map[int]string{0: "easy", 49: "easy", 50: "medium", 100: "hard"} {
		got, err := s.Bucket(depth)
		require.NoError(t, err)
		assert.Equal(t, want, got, "depth %d", depth)
	}
}

func TestScriptErrors(t *testing.T) {
	_, err := NewScript([]byte(`bucket = (`))
	assert.Error(t, err)

	s, err := NewScript([]byte(`x := depth`))
	require.NoError(t, err)
	_, err = s.Bucket(3)
	assert.ErrorIs(t, err, ErrEmptyBucket)
}
