package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/stress-detector/internal/domain"
)

func TestNewGauge(t *testing.T) {
	g := NewGauge(domain.Gauge{Value: 50, Color: "#ffa502"}, 300)

	require.Len(t, g.Bands, 3)
	assert.Equal(t, "#e6ffed", g.Bands[0].Color)
	assert.True(t, strings.HasPrefix(g.Bands[0].Path, "M "))
	assert.Len(t, g.Ticks, 6)

	// A value of 50 points straight up.
	assert.InDelta(t, g.Center.X, g.Needle.X, 1e-6)
	assert.Less(t, g.Needle.Y, g.Center.Y)
}

func TestNewGauge_Extremes(t *testing.T) {
	low := NewGauge(domain.Gauge{Value: 0}, 200)
	assert.Less(t, low.Needle.X, low.Center.X)
	assert.InDelta(t, low.Center.Y, low.Needle.Y, 1e-6)

	high := NewGauge(domain.Gauge{Value: 150}, 200)
	assert.Greater(t, high.Needle.X, high.Center.X)
	assert.InDelta(t, high.Center.Y, high.Needle.Y, 1e-6)
}

func TestNewRadar(t *testing.T) {
	axes := []domain.RadarAxis{
		{Name: "Sleep Quality", Score: 100},
		{Name: "Study Balance", Score: 50},
		{Name: "Screen Time", Score: 0},
		{Name: "Exercise", Score: 75},
		{Name: "Social Support", Score: 100},
	}
	r := NewRadar(axes, 400)

	require.Len(t, r.Axes, 5)
	require.Len(t, r.Rings, len(RingSteps))

	// First axis points to 12 o'clock; a full score reaches the spoke end.
	first := r.Axes[0]
	assert.InDelta(t, r.Center.X, first.End.X, 1e-6)
	assert.InDelta(t, r.Center.Y-r.Radius, first.End.Y, 1e-6)
	assert.Equal(t, first.End, first.Value)

	// A zero score collapses onto the center.
	assert.Equal(t, r.Center, r.Axes[2].Value)

	// Half score sits halfway along the spoke.
	half := r.Axes[1]
	dist := math.Hypot(half.Value.X-r.Center.X, half.Value.Y-r.Center.Y)
	assert.InDelta(t, r.Radius/2, dist, 1e-6)

	assert.Len(t, strings.Fields(r.Profile), 5)
}

func TestNewRadar_Empty(t *testing.T) {
	r := NewRadar(nil, 300)
	assert.Empty(t, r.Axes)
	assert.Empty(t, r.Profile)
}
