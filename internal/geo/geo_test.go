package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		expected               float64
	}{
		{
			name: "same point",
			lat1: 10, lng1: 10, lat2: 10, lng2: 10,
			expected: 0,
		},
		{
			name: "one degree of longitude at the equator",
			lat1: 0, lng1: 0, lat2: 0, lng2: 1,
			expected: 111.19,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lng1: 0, lat2: 1, lng2: 0,
			expected: 111.19,
		},
		{
			name: "jakarta to surabaya",
			lat1: -6.2088, lng1: 106.8456, lat2: -7.2575, lng2: 112.7521,
			expected: 663.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expected, d, 1.0)
		})
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	d1 := HaversineKm(10, 10, 10, 10.001)
	d2 := HaversineKm(10, 10.001, 10, 10)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Greater(t, d1, 0.0)
	assert.Less(t, d1, 1.0)
}
