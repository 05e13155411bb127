package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBadge(t *testing.T) {
	tests := []struct {
		score int
		want  BadgeLevel
	}{
		{0, BadgeNone},
		{69, BadgeNone},
		{70, BadgeBronze},
		{89, BadgeBronze},
		{90, BadgeSilver},
		{99, BadgeSilver},
		{100, BadgeGold},
	}

	for _, tt := range tests {
		badge, err := ResolveBadge(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.want, badge, "score %d", tt.score)
	}
}

func TestResolveBadge_OutOfRange(t *testing.T) {
	for _, score := range []int{-1, 101, 1000} {
		_, err := ResolveBadge(score)
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d", score)
	}
}
