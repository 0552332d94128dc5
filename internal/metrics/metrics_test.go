package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{1.235, 1.24},
		{99.999, 100},
		{42.1, 42.1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in))
	}
}

func TestToGB(t *testing.T) {
	assert.Equal(t, 1.0, toGB(1<<30))
	assert.Equal(t, 0.5, toGB(1<<29))
	assert.Equal(t, 0.0, toGB(0))
}

func TestSampleDisk(t *testing.T) {
	sample, err := SampleDisk("/")
	require.NoError(t, err)

	assert.Greater(t, sample.TotalGB, 0.0)
	assert.GreaterOrEqual(t, sample.PercentUsed, 0.0)
	assert.LessOrEqual(t, sample.PercentUsed, 100.0)
	assert.LessOrEqual(t, sample.UsedGB, sample.TotalGB)
	assertTwoDecimals(t, sample.TotalGB, sample.UsedGB, sample.FreeGB, sample.PercentUsed)
}

func TestSampleDiskBadPath(t *testing.T) {
	_, err := SampleDisk("/definitely/not/a/mountpoint")
	assert.Error(t, err)
}

func TestSampleMemory(t *testing.T) {
	sample, err := SampleMemory()
	require.NoError(t, err)

	assert.Greater(t, sample.TotalGB, 0.0)
	assert.GreaterOrEqual(t, sample.PercentUsed, 0.0)
	assert.LessOrEqual(t, sample.PercentUsed, 100.0)
	assert.LessOrEqual(t, sample.AvailableGB, sample.TotalGB)
	assertTwoDecimals(t, sample.TotalGB, sample.AvailableGB, sample.UsedGB, sample.FreeGB, sample.PercentUsed)
}

func assertTwoDecimals(t *testing.T, values ...float64) {
	t.Helper()
	for _, v := range values {
		scaled := v * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6, "value %v has more than two decimals", v)
	}
}
