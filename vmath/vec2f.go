package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in field units
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FDirection returns the unit vector of v as (cos θ, sin θ) with θ = atan2(y, x)
// Zero vector yields (1, 0), matching atan2(0, 0) = 0
func V2FDirection(v Vec2F) Vec2F {
	angle := math.Atan2(v.Y, v.X)
	return Vec2F{math.Cos(angle), math.Sin(angle)}
}

// WrapDegrees maps an angle in degrees into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
