package lv03

// Offsets between the LV95 and LV03 frames. LV95 reuses the LV03 projection
// with constant offsets that keep easting and northing values distinct.
const (
	lv95NorthOffset = 1000000.0
	lv95EastOffset  = 2000000.0
)

// LV95 is a point in the current Swiss national coordinate system
// CH1903+/LV95. It denotes the same physical point as the corresponding LV03
// value, expressed in a frame shifted by +1000000 north and +2000000 east.
type LV95 struct {
	North    float64
	East     float64
	Altitude float64
}

// NewLV95 validates the coordinates as LV03 values after removing the frame
// offsets and returns the shifted point. Returns ErrOutOfBounds exactly when
// NewLV03 would for the unshifted coordinates.
func NewLV95(north, east, altitude float64) (LV95, error) {
	p, err := NewLV03(north, east, altitude)
	if err != nil {
		return LV95{}, err
	}
	return p.ToLV95(), nil
}

// ToLV03 shifts the point back into the LV03 frame. The shift is exact and
// lossless.
func (p LV95) ToLV03() LV03 {
	return LV03{
		North:    p.North - lv95NorthOffset,
		East:     p.East - lv95EastOffset,
		Altitude: p.Altitude,
	}
}

// ToWGS84 projects the point to WGS84 via the LV03 frame.
func (p LV95) ToWGS84() WGS84 {
	return p.ToLV03().ToWGS84()
}
