package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandingForActiveIssues(t *testing.T) {
	tests := []struct {
		active int
		want   Standing
	}{
		{0, StandingNormal},
		{5, StandingNormal},
		{6, StandingSuspended},
		{10, StandingSuspended},
		{11, StandingRevoked},
		{50, StandingRevoked},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StandingForActiveIssues(tt.active), "active %d", tt.active)
	}
}

func TestStandingForActiveIssues_Monotonic(t *testing.T) {
	// Standing can only worsen as the active count grows.
	rank := map[Standing]int{StandingNormal: 0, StandingSuspended: 1, StandingRevoked: 2}

	prev := StandingForActiveIssues(0)
	for count := 1; count <= 30; count++ {
		current := StandingForActiveIssues(count)
		assert.GreaterOrEqual(t, rank[current], rank[prev], "count %d", count)
		prev = current
	}
}

func TestStandingRecoversWhenIssuesResolve(t *testing.T) {
	assert.Equal(t, StandingSuspended, StandingForActiveIssues(6))
	// Resolving one issue drops the count back under the threshold.
	assert.Equal(t, StandingNormal, StandingForActiveIssues(5))
}
