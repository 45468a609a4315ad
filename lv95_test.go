package lv03_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1-Byte/lv03"
)

func TestNewLV95(t *testing.T) {
	// Construction takes unshifted LV03-frame coordinates and applies the
	// frame offsets on success.
	p, err := lv03.NewLV95(199498.43, 600421.43, 542.8)
	require.NoError(t, err)
	assert.InDelta(t, 1199498.43, p.North, 1e-6)
	assert.InDelta(t, 2600421.43, p.East, 1e-6)
	assert.Equal(t, 542.8, p.Altitude)
}

func TestNewLV95Rejections(t *testing.T) {
	tests := []struct {
		name        string
		north, east float64
	}{
		{"below minimum extent", 60000.0, 600000.0},
		{"above maximum extent", 310000.0, 600000.0},
		{"axes swapped", 600000.0, 200000.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lv03.NewLV95(tt.north, tt.east, 500.0)
			assert.ErrorIs(t, err, lv03.ErrOutOfBounds)
		})
	}
}

func TestLV95ToWGS84(t *testing.T) {
	p03, err := lv03.NewLV03(199498.43, 600421.43, 542.8)
	require.NoError(t, err)

	// Both frames project to the same geographic point.
	direct := p03.ToWGS84()
	wgs := p03.ToLV95().ToWGS84()
	assert.InDelta(t, direct.Longitude, wgs.Longitude, 1e-9)
	assert.InDelta(t, direct.Latitude, wgs.Latitude, 1e-9)
	assert.InDelta(t, direct.Altitude, wgs.Altitude, 1e-9)
	assert.InDelta(t, 7.44417, wgs.Longitude, 0.001)
	assert.InDelta(t, 46.94658, wgs.Latitude, 0.001)
}

func TestLV95ShiftIsLossless(t *testing.T) {
	p, err := lv03.NewLV95(126100.0, 703700.0, 1203.0)
	require.NoError(t, err)
	assert.Equal(t, p, p.ToLV03().ToLV95())
}
