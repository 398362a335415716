// Package track holds the time-ordered vehicle path model and its CSV loader.
package track

import (
	"errors"
	"fmt"
)

// Channel identifies one row of a path. The order is a fixed contract shared
// by the loader and the scorer: longitude, latitude, bearing, speed.
type Channel int

const (
	Longitude Channel = iota
	Latitude
	Bearing
	Speed
)

const NumChannels = 4

var Channels = [NumChannels]Channel{Longitude, Latitude, Bearing, Speed}

var channelNames = [NumChannels]string{"longitude", "latitude", "bearing", "speed"}

func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return fmt.Sprintf("channel(%d)", int(c))
	}
	return channelNames[c]
}

// Columns is the CSV column layout, one entry per Record field.
var Columns = []string{
	"longitude_deg", "longitude_min",
	"latitude_deg", "latitude_min",
	"bearing_deg", "speed",
}

var ErrRaggedPath = errors.New("path channels have different lengths")

// Record is one raw CSV row before degrees and minutes are merged.
type Record struct {
	LongitudeDeg float64
	LongitudeMin float64
	LatitudeDeg  float64
	LatitudeMin  float64
	BearingDeg   float64
	Speed        float64
}

// Path is a time-ordered table of samples. Index i of every channel is sample i.
type Path struct {
	Longitude []float64 // decimal degrees
	Latitude  []float64 // decimal degrees
	Bearing   []float64 // degrees
	Speed     []float64 // units/sec
}

func NewPath(capacity int) *Path {
	return &Path{
		Longitude: make([]float64, 0, capacity),
		Latitude:  make([]float64, 0, capacity),
		Bearing:   make([]float64, 0, capacity),
		Speed:     make([]float64, 0, capacity),
	}
}

// Len returns the number of samples. Validate first if the path was built by hand.
func (p *Path) Len() int {
	return len(p.Longitude)
}

// Channel returns the backing slice for c.
func (p *Path) Channel(c Channel) []float64 {
	switch c {
	case Longitude:
		return p.Longitude
	case Latitude:
		return p.Latitude
	case Bearing:
		return p.Bearing
	case Speed:
		return p.Speed
	}
	return nil
}

// Add appends one sample.
func (p *Path) Add(longitude, latitude, bearing, speed float64) {
	p.Longitude = append(p.Longitude, longitude)
	p.Latitude = append(p.Latitude, latitude)
	p.Bearing = append(p.Bearing, bearing)
	p.Speed = append(p.Speed, speed)
}

func (p *Path) Validate() error {
	n := len(p.Longitude)
	for _, c := range Channels[1:] {
		if len(p.Channel(c)) != n {
			return fmt.Errorf("%w: longitude has %d samples, %s has %d", ErrRaggedPath, n, c, len(p.Channel(c)))
		}
	}
	return nil
}

func (p *Path) Clone() *Path {
	return &Path{
		Longitude: append([]float64(nil), p.Longitude...),
		Latitude:  append([]float64(nil), p.Latitude...),
		Bearing:   append([]float64(nil), p.Bearing...),
		Speed:     append([]float64(nil), p.Speed...),
	}
}

// Shift returns a copy of p with offsets[c] added to every sample of channel c.
func (p *Path) Shift(offsets [NumChannels]float64) *Path {
	shifted := p.Clone()
	for _, c := range Channels {
		values := shifted.Channel(c)
		for i := range values {
			values[i] += offsets[c]
		}
	}
	return shifted
}
