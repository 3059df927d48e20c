package survey

import (
	"testing"

	"github.com/InzamanCareem/TeamMate-System/types"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("scales the answer sum by four", func(t *testing.T) {
		score, err := Score([]string{"5", "5", "5", "5", "5"})

		require.NoError(t, err)
		require.Equal(t, 100, score)
	})

	t.Run("minimum answers produce the floor score", func(t *testing.T) {
		score, err := Score([]string{"1", "1", "1", "1", "1"})

		require.NoError(t, err)
		require.Equal(t, 20, score)
	})

	t.Run("mixed answers", func(t *testing.T) {
		score, err := Score([]string{"3", "4", "2", "5", "1"})

		require.NoError(t, err)
		require.Equal(t, 60, score)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		score, err := Score([]string{" 5", "5 ", " 5 ", "5", "5"})

		require.NoError(t, err)
		require.Equal(t, 100, score)
	})

	t.Run("rejects wrong answer count", func(t *testing.T) {
		_, err := Score([]string{"5", "5", "5"})

		require.Error(t, err)
	})

	t.Run("rejects non-numeric answers", func(t *testing.T) {
		_, err := Score([]string{"5", "five", "5", "5", "5"})

		require.Error(t, err)
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  types.PersonalityType
	}{
		{"maximum score is Leader", 100, types.PersonalityLeader},
		{"leader threshold inclusive", 90, types.PersonalityLeader},
		{"just below leader is Balanced", 89, types.PersonalityBalanced},
		{"balanced threshold inclusive", 70, types.PersonalityBalanced},
		{"just below balanced is Thinker", 69, types.PersonalityThinker},
		{"thinker threshold inclusive", 50, types.PersonalityThinker},
		{"just below thinker is unqualified", 49, types.PersonalityNone},
		{"floor score is unqualified", 20, types.PersonalityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.score))
		})
	}
}

func TestClassify_Qualified(t *testing.T) {
	require.True(t, Classify(90).Qualified())
	require.True(t, Classify(70).Qualified())
	require.True(t, Classify(50).Qualified())
	require.False(t, Classify(49).Qualified())
}
