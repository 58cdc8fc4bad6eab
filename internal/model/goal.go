// Package model defines domain types for goalchaser goals.
package model

import (
	"strings"
	"time"
)

// Color is the cosmetic tag a goal is drawn with.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

// DefaultColor is used when a record has no color or an unknown one.
const DefaultColor = ColorBlue

// Colors lists every color tag in picker order.
var Colors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple}

// IsValid reports whether c is a known color tag.
func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue, ColorPurple:
		return true
	default:
		return false
	}
}

// ParseColor maps user input to a Color, falling back to DefaultColor.
func ParseColor(input string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(input)))
	if !c.IsValid() {
		return DefaultColor
	}
	return c
}

// Next returns the color after c in picker order, wrapping around.
func (c Color) Next() Color {
	for i, v := range Colors {
		if v == c {
			return Colors[(i+1)%len(Colors)]
		}
	}
	return DefaultColor
}

// Goal is one tracked goal. Days counts the taps still needed.
type Goal struct {
	ID         string
	Title      string
	Days       int
	Color      Color
	LastTapped *time.Time
}

// Completed reports whether the goal has no days left.
func (g Goal) Completed() bool {
	return g.Days == 0
}

// Active reports whether the goal still has days left.
func (g Goal) Active() bool {
	return g.Days > 0
}

// Clone returns a copy that shares no pointers with g.
func (g Goal) Clone() Goal {
	if g.LastTapped != nil {
		t := *g.LastTapped
		g.LastTapped = &t
	}
	return g
}
