// Package chart computes SVG geometry for the stress gauge and the
// wellness radar. Templates only draw what this package lays out.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/blaisecz/stress-detector/internal/domain"
)

// Point is an SVG user-space coordinate.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

// Band is a colored range on the gauge.
type Band struct {
	From, To float64
	Color    string
	Path     string
}

// Gauge is a half-circle dial opening downwards.
type Gauge struct {
	Width, Height float64
	Center        Point
	Radius        float64
	Value         int
	Color         string
	Bands         []Band
	ValuePath     string
	Needle        Point
	Ticks         []Tick
}

// Tick is a labelled mark on the gauge axis.
type Tick struct {
	Value int
	At    Point
}

// GaugeBands are the background ranges of the stress gauge.
var GaugeBands = []Band{
	{From: 0, To: 30, Color: "#e6ffed"},
	{From: 30, To: 70, Color: "#fff3cd"},
	{From: 70, To: 100, Color: "#ffe6e6"},
}

// NewGauge lays out a gauge for the given dial.
func NewGauge(g domain.Gauge, width float64) Gauge {
	radius := width * 0.4
	center := Point{X: width / 2, Y: radius + width*0.08}
	out := Gauge{
		Width:  width,
		Height: center.Y + width*0.12,
		Center: center,
		Radius: radius,
		Value:  g.Value,
		Color:  g.Color,
	}

	for _, b := range GaugeBands {
		b.Path = arcPath(center, radius, b.From, b.To)
		out.Bands = append(out.Bands, b)
	}
	out.ValuePath = arcPath(center, radius*0.78, 0, float64(clampValue(g.Value)))
	out.Needle = gaugePoint(center, radius*0.9, float64(clampValue(g.Value)))
	for v := 0; v <= 100; v += 20 {
		out.Ticks = append(out.Ticks, Tick{Value: v, At: gaugePoint(center, radius+14, float64(v))})
	}
	return out
}

// gaugePoint maps a 0-100 value onto the upper half circle, 0 on the left.
func gaugePoint(c Point, r, value float64) Point {
	angle := math.Pi * (1 - value/100)
	return Point{X: c.X + r*math.Cos(angle), Y: c.Y - r*math.Sin(angle)}
}

func arcPath(c Point, r, from, to float64) string {
	start := gaugePoint(c, r, from)
	end := gaugePoint(c, r, to)
	return fmt.Sprintf("M %s A %.2f %.2f 0 0 1 %s", start, r, r, end)
}

// Radar is a polar chart with one spoke per axis.
type Radar struct {
	Size    float64
	Center  Point
	Radius  float64
	Axes    []RadarSpoke
	Rings   []string
	Profile string
}

// RadarSpoke is one axis with its outer end, label anchor and data point.
type RadarSpoke struct {
	Name  string
	Score float64
	End   Point
	Label Point
	Value Point
}

// RingSteps are the grid levels drawn behind the profile.
var RingSteps = []float64{20, 40, 60, 80, 100}

// NewRadar lays out the axes clockwise starting at 12 o'clock.
func NewRadar(axes []domain.RadarAxis, size float64) Radar {
	center := Point{X: size / 2, Y: size / 2}
	radius := size * 0.34
	out := Radar{Size: size, Center: center, Radius: radius}
	if len(axes) == 0 {
		return out
	}

	profile := make([]Point, len(axes))
	for i, a := range axes {
		score := math.Max(0, math.Min(100, a.Score))
		out.Axes = append(out.Axes, RadarSpoke{
			Name:  a.Name,
			Score: a.Score,
			End:   radarPoint(center, radius, i, len(axes)),
			Label: radarPoint(center, radius+28, i, len(axes)),
			Value: radarPoint(center, radius*score/100, i, len(axes)),
		})
		profile[i] = out.Axes[i].Value
	}
	out.Profile = points(profile)

	for _, step := range RingSteps {
		ring := make([]Point, len(axes))
		for i := range axes {
			ring[i] = radarPoint(center, radius*step/100, i, len(axes))
		}
		out.Rings = append(out.Rings, points(ring))
	}
	return out
}

func radarPoint(c Point, r float64, i, n int) Point {
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	return Point{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

func points(ps []Point) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func clampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
