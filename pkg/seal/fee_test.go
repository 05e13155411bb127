package seal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRenewalFee(t *testing.T) {
	tests := []struct {
		employees int
		want      int64
	}{
		{1, 5000},
		{15, 5000},
		{20, 5000},
		{21, 25000},
		{35, 25000},
		{50, 25000},
		// Large companies fall back to the medium tier until large-tier
		// pricing is settled.
		{51, 25000},
		{200, 25000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRenewalFee(tt.employees), "employees %d", tt.employees)
	}
}
